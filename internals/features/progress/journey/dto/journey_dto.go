// file: internals/features/progress/journey/dto/journey_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/progress/journey/model"

	"github.com/google/uuid"
)

type RecordCompletionRequest struct {
	CoderID uuid.UUID `json:"coder_id" validate:"required"`
	BlockID uuid.UUID `json:"block_id" validate:"required"`
}

// daftar final block selesai; journey ditimpa persis seperti ini
type BypassRequest struct {
	CoderID           uuid.UUID   `json:"coder_id" validate:"required"`
	CompletedBlockIDs []uuid.UUID `json:"completed_block_ids" validate:"required"`
}

type JourneyEntryResponse struct {
	BlockID     uuid.UUID  `json:"block_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromModels(list []m.CoderBlockProgressModel) []JourneyEntryResponse {
	out := make([]JourneyEntryResponse, 0, len(list))
	for _, r := range list {
		out = append(out, JourneyEntryResponse{
			BlockID:     r.CoderBlockProgressBlockID,
			Status:      r.CoderBlockProgressStatus,
			CompletedAt: r.CoderBlockProgressCompletedAt,
		})
	}
	return out
}
