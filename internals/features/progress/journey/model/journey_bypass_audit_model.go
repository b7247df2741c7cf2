// file: internals/features/progress/journey/model/journey_bypass_audit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jejak bypass admin: siapa menimpa journey siapa, dan daftar block
// yang ditandai selesai. Baris ini append-only.
type JourneyBypassAuditModel struct {
	JourneyBypassAuditID uuid.UUID `gorm:"column:journey_bypass_audit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"journey_bypass_audit_id"`

	JourneyBypassAuditClassID uuid.UUID `gorm:"column:journey_bypass_audit_class_id;type:uuid;not null;index" json:"journey_bypass_audit_class_id"`
	JourneyBypassAuditCoderID uuid.UUID `gorm:"column:journey_bypass_audit_coder_id;type:uuid;not null;index" json:"journey_bypass_audit_coder_id"`
	JourneyBypassAuditActorID uuid.UUID `gorm:"column:journey_bypass_audit_actor_id;type:uuid;not null" json:"journey_bypass_audit_actor_id"`

	JourneyBypassAuditPayload datatypes.JSONMap `gorm:"column:journey_bypass_audit_payload;type:jsonb" json:"journey_bypass_audit_payload"`

	JourneyBypassAuditCreatedAt time.Time `gorm:"column:journey_bypass_audit_created_at;type:timestamptz;not null;autoCreateTime" json:"journey_bypass_audit_created_at"`
}

func (JourneyBypassAuditModel) TableName() string { return "journey_bypass_audits" }
