// file: internals/features/classes/class_blocks/dto/class_block_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/classes/class_blocks/model"
	svc "codercamp_backend/internals/features/classes/class_blocks/service"

	"github.com/google/uuid"
)

type InstantiateRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	// block pertama timeline; nil = block published paling awal
	EntryBlockID *uuid.UUID `json:"entry_block_id"`
}

type OverrideStatusesRequest struct {
	Overrides []svc.StatusOverride `json:"overrides" validate:"required,min=1,dive"`
}

type ClassBlockResponse struct {
	ClassBlockID        uuid.UUID `json:"class_block_id"`
	ClassBlockClassID   uuid.UUID `json:"class_block_class_id"`
	ClassBlockBlockID   uuid.UUID `json:"class_block_block_id"`
	ClassBlockStartDate time.Time `json:"class_block_start_date"`
	ClassBlockEndDate   time.Time `json:"class_block_end_date"`
	ClassBlockStatus    string    `json:"class_block_status"`
}

func FromModel(cb m.ClassBlockModel) ClassBlockResponse {
	return ClassBlockResponse{
		ClassBlockID:        cb.ClassBlockID,
		ClassBlockClassID:   cb.ClassBlockClassID,
		ClassBlockBlockID:   cb.ClassBlockBlockID,
		ClassBlockStartDate: cb.ClassBlockStartDate,
		ClassBlockEndDate:   cb.ClassBlockEndDate,
		ClassBlockStatus:    cb.ClassBlockStatus,
	}
}

func FromModels(list []m.ClassBlockModel) []ClassBlockResponse {
	out := make([]ClassBlockResponse, 0, len(list))
	for _, cb := range list {
		out = append(out, FromModel(cb))
	}
	return out
}
