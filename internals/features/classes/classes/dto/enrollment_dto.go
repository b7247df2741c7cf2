// file: internals/features/classes/classes/dto/enrollment_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/classes/classes/model"

	"github.com/google/uuid"
)

type EnrollRequest struct {
	EnrollmentCoderID uuid.UUID `json:"enrollment_coder_id" validate:"required"`
	// block awal journey; nil = block pertama level
	EnrollmentEntryBlockID *uuid.UUID `json:"enrollment_entry_block_id"`
}

func (r EnrollRequest) ToModel(classID uuid.UUID) m.EnrollmentModel {
	return m.EnrollmentModel{
		EnrollmentClassID:      classID,
		EnrollmentCoderID:      r.EnrollmentCoderID,
		EnrollmentStatus:       m.EnrollmentStatusActive,
		EnrollmentEntryBlockID: r.EnrollmentEntryBlockID,
	}
}

type EnrollmentResponse struct {
	EnrollmentID           uuid.UUID  `json:"enrollment_id"`
	EnrollmentClassID      uuid.UUID  `json:"enrollment_class_id"`
	EnrollmentCoderID      uuid.UUID  `json:"enrollment_coder_id"`
	EnrollmentStatus       string     `json:"enrollment_status"`
	EnrollmentEntryBlockID *uuid.UUID `json:"enrollment_entry_block_id,omitempty"`
	EnrollmentCreatedAt    time.Time  `json:"enrollment_created_at"`
}

func FromEnrollmentModel(em m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:           em.EnrollmentID,
		EnrollmentClassID:      em.EnrollmentClassID,
		EnrollmentCoderID:      em.EnrollmentCoderID,
		EnrollmentStatus:       em.EnrollmentStatus,
		EnrollmentEntryBlockID: em.EnrollmentEntryBlockID,
		EnrollmentCreatedAt:    em.EnrollmentCreatedAt,
	}
}

func FromEnrollmentModels(list []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, em := range list {
		out = append(out, FromEnrollmentModel(em))
	}
	return out
}
