// file: internals/features/curriculum/blocks/model/block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockModel adalah template kurikulum per level. Block yang sudah
// published boleh dipakai kelas; urutan global memakai block_order_index.
type BlockModel struct {
	BlockID uuid.UUID `gorm:"column:block_id;type:uuid;default:gen_random_uuid();primaryKey" json:"block_id"`

	BlockLevelID uuid.UUID `gorm:"column:block_level_id;type:uuid;not null;index" json:"block_level_id"`

	BlockName    string  `gorm:"column:block_name;type:varchar(160);not null" json:"block_name"`
	BlockSummary *string `gorm:"column:block_summary;type:text" json:"block_summary,omitempty"`

	BlockOrderIndex int `gorm:"column:block_order_index;not null;default:0" json:"block_order_index"`

	// perkiraan jumlah sesi untuk menyelesaikan block ini; kalau NULL,
	// dihitung dari total part lesson template-nya
	BlockEstimatedSessions *int `gorm:"column:block_estimated_sessions" json:"block_estimated_sessions,omitempty"`

	BlockIsPublished bool `gorm:"column:block_is_published;not null;default:false" json:"block_is_published"`

	// TRUE setelah ada mutasi lesson template yang belum dipropagasi ke
	// kelas berjalan; dibersihkan saat propagate sukses tanpa kegagalan
	BlockNeedsPropagation bool `gorm:"column:block_needs_propagation;not null;default:false" json:"block_needs_propagation"`

	BlockCreatedAt time.Time      `gorm:"column:block_created_at;type:timestamptz;not null;autoCreateTime" json:"block_created_at"`
	BlockUpdatedAt time.Time      `gorm:"column:block_updated_at;type:timestamptz;not null;autoUpdateTime" json:"block_updated_at"`
	BlockDeletedAt gorm.DeletedAt `gorm:"column:block_deleted_at;index" json:"block_deleted_at,omitempty"`
}

func (BlockModel) TableName() string { return "blocks" }
