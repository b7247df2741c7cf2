// file: internals/features/classes/class_blocks/model/class_block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClassBlockStatusUpcoming  = "UPCOMING"
	ClassBlockStatusCurrent   = "CURRENT"
	ClassBlockStatusCompleted = "COMPLETED"
)

// ClassBlockModel adalah instan block template di timeline sebuah kelas.
// Rentang tanggal antar class block di kelas yang sama tidak boleh
// tumpang tindih; status mengikuti tanggal berjalan.
type ClassBlockModel struct {
	ClassBlockID uuid.UUID `gorm:"column:class_block_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_block_id"`

	ClassBlockClassID uuid.UUID `gorm:"column:class_block_class_id;type:uuid;not null;index" json:"class_block_class_id"`
	ClassBlockBlockID uuid.UUID `gorm:"column:class_block_block_id;type:uuid;not null;index" json:"class_block_block_id"`

	ClassBlockStartDate time.Time `gorm:"column:class_block_start_date;type:date;not null" json:"class_block_start_date"`
	ClassBlockEndDate   time.Time `gorm:"column:class_block_end_date;type:date;not null" json:"class_block_end_date"`

	ClassBlockStatus string `gorm:"column:class_block_status;type:varchar(20);not null;default:'UPCOMING'" json:"class_block_status"`

	ClassBlockCreatedAt time.Time      `gorm:"column:class_block_created_at;type:timestamptz;not null;autoCreateTime" json:"class_block_created_at"`
	ClassBlockUpdatedAt time.Time      `gorm:"column:class_block_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_block_updated_at"`
	ClassBlockDeletedAt gorm.DeletedAt `gorm:"column:class_block_deleted_at;index" json:"class_block_deleted_at,omitempty"`
}

func (ClassBlockModel) TableName() string { return "class_blocks" }
