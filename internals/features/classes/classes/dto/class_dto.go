// file: internals/features/classes/classes/dto/class_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/classes/classes/model"
	"codercamp_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =========================
   Request DTO
   ========================= */

type CreateClassRequest struct {
	ClassName    string     `json:"class_name" validate:"required,min=2,max=160"`
	ClassType    *string    `json:"class_type" validate:"omitempty,oneof=WEEKLY PRIVATE"`
	ClassCoachID uuid.UUID  `json:"class_coach_id" validate:"required"`
	ClassLevelID *uuid.UUID `json:"class_level_id"`

	// kode hari SU..SA
	ClassScheduleDays []string `json:"class_schedule_days" validate:"omitempty,min=1,dive,oneof=SU MO TU WE TH FR SA"`
	// "HH:MM" atau "HH:MM:SS"
	ClassScheduleTime *string `json:"class_schedule_time"`

	ClassStartDate *string `json:"class_start_date" validate:"omitempty,datetime=2006-01-02"`
	ClassEndDate   *string `json:"class_end_date" validate:"omitempty,datetime=2006-01-02"`

	ClassMeetingLink *string `json:"class_meeting_link" validate:"omitempty,url"`

	// true = langsung susun timeline (sesi + block + lesson)
	AutoPlan bool `json:"auto_plan"`
}

func (r CreateClassRequest) ToModel() (m.ClassModel, error) {
	cm := m.ClassModel{
		ClassName:        r.ClassName,
		ClassType:        m.ClassTypeWeekly,
		ClassCoachID:     r.ClassCoachID,
		ClassLevelID:     r.ClassLevelID,
		ClassMeetingLink: r.ClassMeetingLink,
		ClassIsActive:    true,
	}
	if r.ClassType != nil {
		cm.ClassType = *r.ClassType
	}
	if len(r.ClassScheduleDays) > 0 {
		cm.ClassScheduleDays = pq.StringArray(r.ClassScheduleDays)
	}
	if r.ClassScheduleTime != nil {
		tod, err := dbtime.Parse(*r.ClassScheduleTime)
		if err != nil {
			return cm, err
		}
		cm.ClassScheduleTime = &tod
	}
	if r.ClassStartDate != nil {
		t, err := time.Parse("2006-01-02", *r.ClassStartDate)
		if err != nil {
			return cm, err
		}
		cm.ClassStartDate = &t
	}
	if r.ClassEndDate != nil {
		t, err := time.Parse("2006-01-02", *r.ClassEndDate)
		if err != nil {
			return cm, err
		}
		cm.ClassEndDate = &t
	}
	return cm, nil
}

type UpdateClassRequest struct {
	ClassName         *string    `json:"class_name" validate:"omitempty,min=2,max=160"`
	ClassCoachID      *uuid.UUID `json:"class_coach_id"`
	ClassLevelID      *uuid.UUID `json:"class_level_id"`
	ClassScheduleDays []string   `json:"class_schedule_days" validate:"omitempty,min=1,dive,oneof=SU MO TU WE TH FR SA"`
	ClassScheduleTime *string    `json:"class_schedule_time"`
	ClassStartDate    *string    `json:"class_start_date" validate:"omitempty,datetime=2006-01-02"`
	ClassEndDate      *string    `json:"class_end_date" validate:"omitempty,datetime=2006-01-02"`
	ClassMeetingLink  *string    `json:"class_meeting_link" validate:"omitempty,url"`
	ClassIsActive     *bool      `json:"class_is_active"`
}

func (r UpdateClassRequest) Apply(cm *m.ClassModel) error {
	if r.ClassName != nil {
		cm.ClassName = *r.ClassName
	}
	if r.ClassCoachID != nil {
		cm.ClassCoachID = *r.ClassCoachID
	}
	if r.ClassLevelID != nil {
		cm.ClassLevelID = r.ClassLevelID
	}
	if len(r.ClassScheduleDays) > 0 {
		cm.ClassScheduleDays = pq.StringArray(r.ClassScheduleDays)
	}
	if r.ClassScheduleTime != nil {
		tod, err := dbtime.Parse(*r.ClassScheduleTime)
		if err != nil {
			return err
		}
		cm.ClassScheduleTime = &tod
	}
	if r.ClassStartDate != nil {
		t, err := time.Parse("2006-01-02", *r.ClassStartDate)
		if err != nil {
			return err
		}
		cm.ClassStartDate = &t
	}
	if r.ClassEndDate != nil {
		t, err := time.Parse("2006-01-02", *r.ClassEndDate)
		if err != nil {
			return err
		}
		cm.ClassEndDate = &t
	}
	if r.ClassMeetingLink != nil {
		cm.ClassMeetingLink = r.ClassMeetingLink
	}
	if r.ClassIsActive != nil {
		cm.ClassIsActive = *r.ClassIsActive
	}
	return nil
}

/* =========================
   Response DTO
   ========================= */

type ClassResponse struct {
	ClassID              uuid.UUID  `json:"class_id"`
	ClassName            string     `json:"class_name"`
	ClassType            string     `json:"class_type"`
	ClassCoachID         uuid.UUID  `json:"class_coach_id"`
	ClassLevelID         *uuid.UUID `json:"class_level_id,omitempty"`
	ClassScheduleDays    []string   `json:"class_schedule_days"`
	ClassScheduleTime    *string    `json:"class_schedule_time,omitempty"`
	ClassStartDate       *time.Time `json:"class_start_date,omitempty"`
	ClassEndDate         *time.Time `json:"class_end_date,omitempty"`
	ClassMeetingLink     *string    `json:"class_meeting_link,omitempty"`
	ClassTimelineVersion int64      `json:"class_timeline_version"`
	ClassIsActive        bool       `json:"class_is_active"`
	ClassCreatedAt       time.Time  `json:"class_created_at"`
	ClassUpdatedAt       time.Time  `json:"class_updated_at"`
}

func FromModel(cm m.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:              cm.ClassID,
		ClassName:            cm.ClassName,
		ClassType:            cm.ClassType,
		ClassCoachID:         cm.ClassCoachID,
		ClassLevelID:         cm.ClassLevelID,
		ClassScheduleDays:    []string(cm.ClassScheduleDays),
		ClassStartDate:       cm.ClassStartDate,
		ClassEndDate:         cm.ClassEndDate,
		ClassMeetingLink:     cm.ClassMeetingLink,
		ClassTimelineVersion: cm.ClassTimelineVersion,
		ClassIsActive:        cm.ClassIsActive,
		ClassCreatedAt:       cm.ClassCreatedAt,
		ClassUpdatedAt:       cm.ClassUpdatedAt,
	}
	if cm.ClassScheduleTime != nil {
		s := cm.ClassScheduleTime.String()
		resp.ClassScheduleTime = &s
	}
	return resp
}

func FromModels(list []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, FromModel(cm))
	}
	return out
}
