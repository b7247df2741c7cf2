// file: internals/features/classes/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SessionStatusScheduled = "SCHEDULED"
	SessionStatusCompleted = "COMPLETED"
	SessionStatusCancelled = "CANCELLED"
)

// SessionModel adalah satu pertemuan terjadwal milik kelas.
// Sesi tidak pernah dihapus: pembatalan lewat status CANCELLED supaya
// histori kehadiran tetap utuh (tidak ada kolom deleted_at di sini).
// Unik per (class_id, starts_at) supaya generate ulang idempotent.
type SessionModel struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`

	SessionClassID uuid.UUID `gorm:"column:session_class_id;type:uuid;not null;uniqueIndex:uq_session_class_starts_at" json:"session_class_id"`

	SessionStartsAt time.Time `gorm:"column:session_starts_at;type:timestamptz;not null;uniqueIndex:uq_session_class_starts_at" json:"session_starts_at"`

	SessionStatus string `gorm:"column:session_status;type:varchar(20);not null;default:'SCHEDULED'" json:"session_status"`

	// coach pengganti khusus sesi ini (kalau ada)
	SessionSubstituteCoachID *uuid.UUID `gorm:"column:session_substitute_coach_id;type:uuid" json:"session_substitute_coach_id,omitempty"`

	// link meeting snapshot saat generate; tidak ikut berubah kalau
	// link default kelas diganti belakangan
	SessionLinkSnapshot *string `gorm:"column:session_link_snapshot;type:text" json:"session_link_snapshot,omitempty"`

	// parameter recurrence yang melahirkan sesi ini (audit)
	SessionGenerationSnapshot datatypes.JSONMap `gorm:"column:session_generation_snapshot;type:jsonb" json:"session_generation_snapshot,omitempty"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;type:timestamptz;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;type:timestamptz;not null;autoUpdateTime" json:"session_updated_at"`
}

func (SessionModel) TableName() string { return "sessions" }
