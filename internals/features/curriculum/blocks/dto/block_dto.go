// file: internals/features/curriculum/blocks/dto/block_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
)

/* =========================
   Block — Request DTO
   ========================= */

type CreateBlockRequest struct {
	BlockLevelID           uuid.UUID `json:"block_level_id" validate:"required"`
	BlockName              string    `json:"block_name" validate:"required,min=2,max=160"`
	BlockSummary           *string   `json:"block_summary"`
	BlockOrderIndex        *int      `json:"block_order_index" validate:"omitempty,gte=0"`
	BlockEstimatedSessions *int      `json:"block_estimated_sessions" validate:"omitempty,gte=1"`
	BlockIsPublished       *bool     `json:"block_is_published"`
}

func (r CreateBlockRequest) ToModel() m.BlockModel {
	bm := m.BlockModel{
		BlockLevelID:           r.BlockLevelID,
		BlockName:              r.BlockName,
		BlockSummary:           r.BlockSummary,
		BlockEstimatedSessions: r.BlockEstimatedSessions,
	}
	if r.BlockOrderIndex != nil {
		bm.BlockOrderIndex = *r.BlockOrderIndex
	}
	if r.BlockIsPublished != nil {
		bm.BlockIsPublished = *r.BlockIsPublished
	}
	return bm
}

type UpdateBlockRequest struct {
	BlockName              *string `json:"block_name" validate:"omitempty,min=2,max=160"`
	BlockSummary           *string `json:"block_summary"`
	BlockOrderIndex        *int    `json:"block_order_index" validate:"omitempty,gte=0"`
	BlockEstimatedSessions *int    `json:"block_estimated_sessions" validate:"omitempty,gte=1"`
	BlockIsPublished       *bool   `json:"block_is_published"`
}

func (r UpdateBlockRequest) Apply(bm *m.BlockModel) {
	if r.BlockName != nil {
		bm.BlockName = *r.BlockName
	}
	if r.BlockSummary != nil {
		bm.BlockSummary = r.BlockSummary
	}
	if r.BlockOrderIndex != nil {
		bm.BlockOrderIndex = *r.BlockOrderIndex
	}
	if r.BlockEstimatedSessions != nil {
		bm.BlockEstimatedSessions = r.BlockEstimatedSessions
	}
	if r.BlockIsPublished != nil {
		bm.BlockIsPublished = *r.BlockIsPublished
	}
}

/* =========================
   Block — Response DTO
   ========================= */

type BlockResponse struct {
	BlockID                uuid.UUID `json:"block_id"`
	BlockLevelID           uuid.UUID `json:"block_level_id"`
	BlockName              string    `json:"block_name"`
	BlockSummary           *string   `json:"block_summary,omitempty"`
	BlockOrderIndex        int       `json:"block_order_index"`
	BlockEstimatedSessions *int      `json:"block_estimated_sessions,omitempty"`
	BlockIsPublished       bool      `json:"block_is_published"`
	BlockNeedsPropagation  bool      `json:"block_needs_propagation"`
	BlockCreatedAt         time.Time `json:"block_created_at"`
	BlockUpdatedAt         time.Time `json:"block_updated_at"`
}

func FromBlockModel(bm m.BlockModel) BlockResponse {
	return BlockResponse{
		BlockID:                bm.BlockID,
		BlockLevelID:           bm.BlockLevelID,
		BlockName:              bm.BlockName,
		BlockSummary:           bm.BlockSummary,
		BlockOrderIndex:        bm.BlockOrderIndex,
		BlockEstimatedSessions: bm.BlockEstimatedSessions,
		BlockIsPublished:       bm.BlockIsPublished,
		BlockNeedsPropagation:  bm.BlockNeedsPropagation,
		BlockCreatedAt:         bm.BlockCreatedAt,
		BlockUpdatedAt:         bm.BlockUpdatedAt,
	}
}

func FromBlockModels(list []m.BlockModel) []BlockResponse {
	out := make([]BlockResponse, 0, len(list))
	for _, bm := range list {
		out = append(out, FromBlockModel(bm))
	}
	return out
}
