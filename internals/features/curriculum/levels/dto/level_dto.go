// file: internals/features/curriculum/levels/dto/level_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/curriculum/levels/model"

	"github.com/google/uuid"
)

/* =========================
   Request DTO
   ========================= */

type CreateLevelRequest struct {
	LevelName        string  `json:"level_name" validate:"required,min=2,max=120"`
	LevelDescription *string `json:"level_description" validate:"omitempty"`
	LevelOrderIndex  *int    `json:"level_order_index" validate:"omitempty,gte=0"`
	LevelIsActive    *bool   `json:"level_is_active"`
}

func (r CreateLevelRequest) ToModel() m.LevelModel {
	lm := m.LevelModel{
		LevelName:        r.LevelName,
		LevelDescription: r.LevelDescription,
		LevelIsActive:    true,
	}
	if r.LevelOrderIndex != nil {
		lm.LevelOrderIndex = *r.LevelOrderIndex
	}
	if r.LevelIsActive != nil {
		lm.LevelIsActive = *r.LevelIsActive
	}
	return lm
}

// PATCH: semua field pointer, hanya yang dikirim yang diubah
type UpdateLevelRequest struct {
	LevelName        *string `json:"level_name" validate:"omitempty,min=2,max=120"`
	LevelDescription *string `json:"level_description"`
	LevelOrderIndex  *int    `json:"level_order_index" validate:"omitempty,gte=0"`
	LevelIsActive    *bool   `json:"level_is_active"`
}

func (r UpdateLevelRequest) Apply(lm *m.LevelModel) {
	if r.LevelName != nil {
		lm.LevelName = *r.LevelName
	}
	if r.LevelDescription != nil {
		lm.LevelDescription = r.LevelDescription
	}
	if r.LevelOrderIndex != nil {
		lm.LevelOrderIndex = *r.LevelOrderIndex
	}
	if r.LevelIsActive != nil {
		lm.LevelIsActive = *r.LevelIsActive
	}
}

/* =========================
   Response DTO
   ========================= */

type LevelResponse struct {
	LevelID          uuid.UUID `json:"level_id"`
	LevelName        string    `json:"level_name"`
	LevelDescription *string   `json:"level_description,omitempty"`
	LevelOrderIndex  int       `json:"level_order_index"`
	LevelIsActive    bool      `json:"level_is_active"`
	LevelCreatedAt   time.Time `json:"level_created_at"`
	LevelUpdatedAt   time.Time `json:"level_updated_at"`
}

func FromModel(lm m.LevelModel) LevelResponse {
	return LevelResponse{
		LevelID:          lm.LevelID,
		LevelName:        lm.LevelName,
		LevelDescription: lm.LevelDescription,
		LevelOrderIndex:  lm.LevelOrderIndex,
		LevelIsActive:    lm.LevelIsActive,
		LevelCreatedAt:   lm.LevelCreatedAt,
		LevelUpdatedAt:   lm.LevelUpdatedAt,
	}
}

func FromModels(list []m.LevelModel) []LevelResponse {
	out := make([]LevelResponse, 0, len(list))
	for _, lm := range list {
		out = append(out, FromModel(lm))
	}
	return out
}
