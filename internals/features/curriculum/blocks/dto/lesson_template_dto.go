// file: internals/features/curriculum/blocks/dto/lesson_template_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
)

type CreateLessonTemplateRequest struct {
	LessonTemplateBlockID     uuid.UUID `json:"lesson_template_block_id" validate:"required"`
	LessonTemplateTitle       string    `json:"lesson_template_title" validate:"required,min=2,max=200"`
	LessonTemplateSummary     *string   `json:"lesson_template_summary"`
	LessonTemplateOrderIndex  *int      `json:"lesson_template_order_index" validate:"omitempty,gte=0"`
	LessonTemplatePartCount   *int      `json:"lesson_template_part_count" validate:"omitempty,gte=1,lte=20"`
	LessonTemplateSlideURL    *string   `json:"lesson_template_slide_url" validate:"omitempty,url"`
	LessonTemplateMakeUpNotes *string   `json:"lesson_template_make_up_notes"`
}

func (r CreateLessonTemplateRequest) ToModel() m.LessonTemplateModel {
	tm := m.LessonTemplateModel{
		LessonTemplateBlockID:     r.LessonTemplateBlockID,
		LessonTemplateTitle:       r.LessonTemplateTitle,
		LessonTemplateSummary:     r.LessonTemplateSummary,
		LessonTemplatePartCount:   1,
		LessonTemplateSlideURL:    r.LessonTemplateSlideURL,
		LessonTemplateMakeUpNotes: r.LessonTemplateMakeUpNotes,
	}
	if r.LessonTemplateOrderIndex != nil {
		tm.LessonTemplateOrderIndex = *r.LessonTemplateOrderIndex
	}
	if r.LessonTemplatePartCount != nil {
		tm.LessonTemplatePartCount = *r.LessonTemplatePartCount
	}
	return tm
}

type UpdateLessonTemplateRequest struct {
	LessonTemplateTitle       *string `json:"lesson_template_title" validate:"omitempty,min=2,max=200"`
	LessonTemplateSummary     *string `json:"lesson_template_summary"`
	LessonTemplateOrderIndex  *int    `json:"lesson_template_order_index" validate:"omitempty,gte=0"`
	LessonTemplatePartCount   *int    `json:"lesson_template_part_count" validate:"omitempty,gte=1,lte=20"`
	LessonTemplateSlideURL    *string `json:"lesson_template_slide_url" validate:"omitempty,url"`
	LessonTemplateMakeUpNotes *string `json:"lesson_template_make_up_notes"`
}

func (r UpdateLessonTemplateRequest) Apply(tm *m.LessonTemplateModel) {
	if r.LessonTemplateTitle != nil {
		tm.LessonTemplateTitle = *r.LessonTemplateTitle
	}
	if r.LessonTemplateSummary != nil {
		tm.LessonTemplateSummary = r.LessonTemplateSummary
	}
	if r.LessonTemplateOrderIndex != nil {
		tm.LessonTemplateOrderIndex = *r.LessonTemplateOrderIndex
	}
	if r.LessonTemplatePartCount != nil {
		tm.LessonTemplatePartCount = *r.LessonTemplatePartCount
	}
	if r.LessonTemplateSlideURL != nil {
		tm.LessonTemplateSlideURL = r.LessonTemplateSlideURL
	}
	if r.LessonTemplateMakeUpNotes != nil {
		tm.LessonTemplateMakeUpNotes = r.LessonTemplateMakeUpNotes
	}
}

type LessonTemplateResponse struct {
	LessonTemplateID          uuid.UUID `json:"lesson_template_id"`
	LessonTemplateBlockID     uuid.UUID `json:"lesson_template_block_id"`
	LessonTemplateTitle       string    `json:"lesson_template_title"`
	LessonTemplateSummary     *string   `json:"lesson_template_summary,omitempty"`
	LessonTemplateOrderIndex  int       `json:"lesson_template_order_index"`
	LessonTemplatePartCount   int       `json:"lesson_template_part_count"`
	LessonTemplateSlideURL    *string   `json:"lesson_template_slide_url,omitempty"`
	LessonTemplateExampleURL  *string   `json:"lesson_template_example_url,omitempty"`
	LessonTemplateMakeUpNotes *string   `json:"lesson_template_make_up_notes,omitempty"`
	LessonTemplateCreatedAt   time.Time `json:"lesson_template_created_at"`
	LessonTemplateUpdatedAt   time.Time `json:"lesson_template_updated_at"`
}

func FromLessonTemplateModel(tm m.LessonTemplateModel) LessonTemplateResponse {
	return LessonTemplateResponse{
		LessonTemplateID:          tm.LessonTemplateID,
		LessonTemplateBlockID:     tm.LessonTemplateBlockID,
		LessonTemplateTitle:       tm.LessonTemplateTitle,
		LessonTemplateSummary:     tm.LessonTemplateSummary,
		LessonTemplateOrderIndex:  tm.LessonTemplateOrderIndex,
		LessonTemplatePartCount:   tm.LessonTemplatePartCount,
		LessonTemplateSlideURL:    tm.LessonTemplateSlideURL,
		LessonTemplateExampleURL:  tm.LessonTemplateExampleURL,
		LessonTemplateMakeUpNotes: tm.LessonTemplateMakeUpNotes,
		LessonTemplateCreatedAt:   tm.LessonTemplateCreatedAt,
		LessonTemplateUpdatedAt:   tm.LessonTemplateUpdatedAt,
	}
}

func FromLessonTemplateModels(list []m.LessonTemplateModel) []LessonTemplateResponse {
	out := make([]LessonTemplateResponse, 0, len(list))
	for _, tm := range list {
		out = append(out, FromLessonTemplateModel(tm))
	}
	return out
}
