// file: internals/features/classes/class_lessons/model/class_lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassLessonModel adalah satu pertemuan materi di timeline kelas.
// Satu lesson template dengan part_count N melahirkan N baris di sini.
// session_id + unlock_at diisi oleh rebalancer; NULL = belum kebagian sesi.
type ClassLessonModel struct {
	ClassLessonID uuid.UUID `gorm:"column:class_lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_lesson_id"`

	ClassLessonClassBlockID uuid.UUID `gorm:"column:class_lesson_class_block_id;type:uuid;not null;index" json:"class_lesson_class_block_id"`
	ClassLessonTemplateID   uuid.UUID `gorm:"column:class_lesson_template_id;type:uuid;not null;index" json:"class_lesson_template_id"`

	ClassLessonTitle      string `gorm:"column:class_lesson_title;type:varchar(220);not null" json:"class_lesson_title"`
	ClassLessonOrderIndex int    `gorm:"column:class_lesson_order_index;not null;default:0" json:"class_lesson_order_index"`
	ClassLessonPartNumber int    `gorm:"column:class_lesson_part_number;not null;default:1" json:"class_lesson_part_number"`

	ClassLessonSessionID *uuid.UUID `gorm:"column:class_lesson_session_id;type:uuid;index" json:"class_lesson_session_id,omitempty"`
	ClassLessonUnlockAt  *time.Time `gorm:"column:class_lesson_unlock_at;type:timestamptz" json:"class_lesson_unlock_at,omitempty"`

	ClassLessonCreatedAt time.Time      `gorm:"column:class_lesson_created_at;type:timestamptz;not null;autoCreateTime" json:"class_lesson_created_at"`
	ClassLessonUpdatedAt time.Time      `gorm:"column:class_lesson_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_lesson_updated_at"`
	ClassLessonDeletedAt gorm.DeletedAt `gorm:"column:class_lesson_deleted_at;index" json:"class_lesson_deleted_at,omitempty"`
}

func (ClassLessonModel) TableName() string { return "class_lessons" }
