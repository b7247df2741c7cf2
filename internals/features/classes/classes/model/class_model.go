// file: internals/features/classes/classes/model/class_model.go
package model

import (
	"time"

	"codercamp_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ClassTypeWeekly  = "WEEKLY"
	ClassTypePrivate = "PRIVATE"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName    string     `gorm:"column:class_name;type:varchar(160);not null" json:"class_name"`
	ClassType    string     `gorm:"column:class_type;type:varchar(20);not null;default:'WEEKLY'" json:"class_type"`
	ClassCoachID uuid.UUID  `gorm:"column:class_coach_id;type:uuid;not null;index" json:"class_coach_id"`
	ClassLevelID *uuid.UUID `gorm:"column:class_level_id;type:uuid;index" json:"class_level_id,omitempty"`

	// jadwal mingguan: kode hari SU..SA + jam lokal
	ClassScheduleDays pq.StringArray `gorm:"column:class_schedule_days;type:text[]" json:"class_schedule_days"`
	ClassScheduleTime *dbtime.Tod    `gorm:"column:class_schedule_time;type:time" json:"class_schedule_time,omitempty"`

	ClassStartDate *time.Time `gorm:"column:class_start_date;type:date" json:"class_start_date,omitempty"`
	ClassEndDate   *time.Time `gorm:"column:class_end_date;type:date" json:"class_end_date,omitempty"`

	ClassMeetingLink *string `gorm:"column:class_meeting_link;type:text" json:"class_meeting_link,omitempty"`

	// naik setiap rebalance; dipakai sebagai optimistic guard supaya
	// dua rebalance paralel tidak saling menimpa
	ClassTimelineVersion int64 `gorm:"column:class_timeline_version;not null;default:0" json:"class_timeline_version"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
