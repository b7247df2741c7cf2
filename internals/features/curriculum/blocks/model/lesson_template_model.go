// file: internals/features/curriculum/blocks/model/lesson_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonTemplateModel: materi di dalam sebuah block template.
// lesson_template_part_count = berapa pertemuan materi ini dibawakan;
// setiap part menjadi satu class lesson saat sync.
type LessonTemplateModel struct {
	LessonTemplateID uuid.UUID `gorm:"column:lesson_template_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_template_id"`

	LessonTemplateBlockID uuid.UUID `gorm:"column:lesson_template_block_id;type:uuid;not null;index" json:"lesson_template_block_id"`

	LessonTemplateTitle   string  `gorm:"column:lesson_template_title;type:varchar(200);not null" json:"lesson_template_title"`
	LessonTemplateSummary *string `gorm:"column:lesson_template_summary;type:text" json:"lesson_template_summary,omitempty"`

	LessonTemplateOrderIndex int `gorm:"column:lesson_template_order_index;not null;default:0" json:"lesson_template_order_index"`
	LessonTemplatePartCount  int `gorm:"column:lesson_template_part_count;not null;default:1" json:"lesson_template_part_count"`

	LessonTemplateSlideURL    *string `gorm:"column:lesson_template_slide_url;type:text" json:"lesson_template_slide_url,omitempty"`
	LessonTemplateExampleURL  *string `gorm:"column:lesson_template_example_url;type:text" json:"lesson_template_example_url,omitempty"`
	LessonTemplateExampleKey  *string `gorm:"column:lesson_template_example_key;type:text" json:"lesson_template_example_key,omitempty"`
	LessonTemplateMakeUpNotes *string `gorm:"column:lesson_template_make_up_notes;type:text" json:"lesson_template_make_up_notes,omitempty"`

	LessonTemplateCreatedAt time.Time      `gorm:"column:lesson_template_created_at;type:timestamptz;not null;autoCreateTime" json:"lesson_template_created_at"`
	LessonTemplateUpdatedAt time.Time      `gorm:"column:lesson_template_updated_at;type:timestamptz;not null;autoUpdateTime" json:"lesson_template_updated_at"`
	LessonTemplateDeletedAt gorm.DeletedAt `gorm:"column:lesson_template_deleted_at;index" json:"lesson_template_deleted_at,omitempty"`
}

func (LessonTemplateModel) TableName() string { return "lesson_templates" }
