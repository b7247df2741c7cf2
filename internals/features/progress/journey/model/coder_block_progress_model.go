// file: internals/features/progress/journey/model/coder_block_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProgressStatusPending    = "PENDING"
	ProgressStatusInProgress = "IN_PROGRESS"
	ProgressStatusCompleted  = "COMPLETED"
)

// CoderBlockProgressModel: journey coder per block di satu level.
// Per (coder, level) selalu tepat satu baris IN_PROGRESS yaitu block
// pertama yang belum COMPLETED; sisanya PENDING.
type CoderBlockProgressModel struct {
	CoderBlockProgressID uuid.UUID `gorm:"column:coder_block_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"coder_block_progress_id"`

	CoderBlockProgressCoderID uuid.UUID `gorm:"column:coder_block_progress_coder_id;type:uuid;not null;uniqueIndex:uq_progress_coder_block" json:"coder_block_progress_coder_id"`
	CoderBlockProgressBlockID uuid.UUID `gorm:"column:coder_block_progress_block_id;type:uuid;not null;uniqueIndex:uq_progress_coder_block" json:"coder_block_progress_block_id"`
	CoderBlockProgressLevelID uuid.UUID `gorm:"column:coder_block_progress_level_id;type:uuid;not null;index" json:"coder_block_progress_level_id"`

	// Urutan journey per coder. Ditulis saat seed (sudah termasuk rotasi
	// entry block) dan dipakai semua pembacaan; BUKAN block_order_index.
	CoderBlockProgressJourneyOrder int `gorm:"column:coder_block_progress_journey_order;not null;default:0" json:"coder_block_progress_journey_order"`

	CoderBlockProgressStatus string `gorm:"column:coder_block_progress_status;type:varchar(20);not null;default:'PENDING'" json:"coder_block_progress_status"`

	CoderBlockProgressCompletedAt *time.Time `gorm:"column:coder_block_progress_completed_at;type:timestamptz" json:"coder_block_progress_completed_at,omitempty"`

	CoderBlockProgressCreatedAt time.Time      `gorm:"column:coder_block_progress_created_at;type:timestamptz;not null;autoCreateTime" json:"coder_block_progress_created_at"`
	CoderBlockProgressUpdatedAt time.Time      `gorm:"column:coder_block_progress_updated_at;type:timestamptz;not null;autoUpdateTime" json:"coder_block_progress_updated_at"`
	CoderBlockProgressDeletedAt gorm.DeletedAt `gorm:"column:coder_block_progress_deleted_at;index" json:"coder_block_progress_deleted_at,omitempty"`
}

func (CoderBlockProgressModel) TableName() string { return "coder_block_progress" }
