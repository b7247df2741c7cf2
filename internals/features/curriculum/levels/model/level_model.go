// file: internals/features/curriculum/levels/model/level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID uuid.UUID `gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_id"`

	LevelName        string  `gorm:"column:level_name;type:varchar(120);not null" json:"level_name"`
	LevelDescription *string `gorm:"column:level_description;type:text" json:"level_description,omitempty"`

	// urutan tampil antar level (bukan urutan block di dalam level)
	LevelOrderIndex int  `gorm:"column:level_order_index;not null;default:0" json:"level_order_index"`
	LevelIsActive   bool `gorm:"column:level_is_active;not null;default:true" json:"level_is_active"`

	LevelCreatedAt time.Time      `gorm:"column:level_created_at;type:timestamptz;not null;autoCreateTime" json:"level_created_at"`
	LevelUpdatedAt time.Time      `gorm:"column:level_updated_at;type:timestamptz;not null;autoUpdateTime" json:"level_updated_at"`
	LevelDeletedAt gorm.DeletedAt `gorm:"column:level_deleted_at;index" json:"level_deleted_at,omitempty"`
}

func (LevelModel) TableName() string { return "levels" }
