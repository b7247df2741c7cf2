// file: internals/features/classes/sessions/dto/session_dto.go
package dto

import (
	"time"

	m "codercamp_backend/internals/features/classes/sessions/model"

	"github.com/google/uuid"
)

/* =========================
   Request DTO
   ========================= */

type GenerateSessionsRequest struct {
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	MeetingLink *string `json:"meeting_link" validate:"omitempty,url"`
}

// mutasi status / coach pengganti / link satu sesi
type UpdateSessionRequest struct {
	SessionStatus            *string    `json:"session_status" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
	SessionSubstituteCoachID *uuid.UUID `json:"session_substitute_coach_id"`
	ClearSubstitute          bool       `json:"clear_substitute"`
	SessionLinkSnapshot      *string    `json:"session_link_snapshot" validate:"omitempty,url"`
}

func (r UpdateSessionRequest) Apply(sm *m.SessionModel) {
	if r.SessionStatus != nil {
		sm.SessionStatus = *r.SessionStatus
	}
	if r.ClearSubstitute {
		sm.SessionSubstituteCoachID = nil
	} else if r.SessionSubstituteCoachID != nil {
		sm.SessionSubstituteCoachID = r.SessionSubstituteCoachID
	}
	if r.SessionLinkSnapshot != nil {
		sm.SessionLinkSnapshot = r.SessionLinkSnapshot
	}
}

/* =========================
   Response DTO
   ========================= */

type SessionResponse struct {
	SessionID                uuid.UUID  `json:"session_id"`
	SessionClassID           uuid.UUID  `json:"session_class_id"`
	SessionStartsAt          time.Time  `json:"session_starts_at"`
	SessionStatus            string     `json:"session_status"`
	SessionSubstituteCoachID *uuid.UUID `json:"session_substitute_coach_id,omitempty"`
	SessionLinkSnapshot      *string    `json:"session_link_snapshot,omitempty"`
}

func FromModel(sm m.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:                sm.SessionID,
		SessionClassID:           sm.SessionClassID,
		SessionStartsAt:          sm.SessionStartsAt,
		SessionStatus:            sm.SessionStatus,
		SessionSubstituteCoachID: sm.SessionSubstituteCoachID,
		SessionLinkSnapshot:      sm.SessionLinkSnapshot,
	}
}

func FromModels(list []m.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, sm := range list {
		out = append(out, FromModel(sm))
	}
	return out
}
