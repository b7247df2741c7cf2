// file: internals/features/classes/classes/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusActive   = "ACTIVE"
	EnrollmentStatusInactive = "INACTIVE"
)

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentClassID uuid.UUID `gorm:"column:enrollment_class_id;type:uuid;not null;uniqueIndex:uq_enrollment_class_coder" json:"enrollment_class_id"`
	EnrollmentCoderID uuid.UUID `gorm:"column:enrollment_coder_id;type:uuid;not null;uniqueIndex:uq_enrollment_class_coder" json:"enrollment_coder_id"`

	EnrollmentStatus string `gorm:"column:enrollment_status;type:varchar(20);not null;default:'ACTIVE'" json:"enrollment_status"`

	// block template tempat coder mulai (untuk coder pindahan / masuk tengah jalan)
	EnrollmentEntryBlockID *uuid.UUID `gorm:"column:enrollment_entry_block_id;type:uuid" json:"enrollment_entry_block_id,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
