// file: internals/features/classes/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cbService "codercamp_backend/internals/features/classes/class_blocks/service"
	lessonService "codercamp_backend/internals/features/classes/class_lessons/service"
	d "codercamp_backend/internals/features/classes/sessions/dto"
	m "codercamp_backend/internals/features/classes/sessions/model"
	svc "codercamp_backend/internals/features/classes/sessions/service"
	helper "codercamp_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s wajib diisi", name)
	}
	return uuid.Parse(idStr)
}

func mapPGError(err error) (int, string) {
	type pgSQLErr interface {
		SQLState() string
		Error() string
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* ========================= Generate ========================= */

func (ctl *SessionController) Generate(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.GenerateSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	gen := svc.NewGenerator(ctl.DB)
	res, err := gen.GenerateForClass(c.Context(), svc.GenerateRequest{
		ClassID:     classID,
		StartDate:   start,
		EndDate:     end,
		MeetingLink: req.MeetingLink,
	}, svc.GenerateOptions{})
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrClassNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrScheduleIncomplete):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	// sesi baru menggeser peta lesson→sesi
	if res.Inserted > 0 {
		if _, rbErr := lessonService.NewRebalancer(ctl.DB).Rebalance(c.Context(), classID); rbErr != nil {
			log.Printf("[SESSIONS.Generate] rebalance error kelas=%s: %v", classID, rbErr)
		}
	}

	return helper.JsonCreated(c, "Sesi digenerate", res)
}

/* ========================= List ========================= */

func (ctl *SessionController) ListByClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.SessionModel{}).
		Where("session_class_id = ?", classID)
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("session_status = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		if t, perr := time.Parse("2006-01-02", v); perr == nil {
			q = q.Where("session_starts_at >= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.SessionModel
	if err := q.
		Order("session_starts_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= Patch =========================
   Perubahan status CANCELLED/SCHEDULED menggeser pemetaan
   lesson→sesi, jadi rebalance + recompute status block ikut jalan.
*/

func (ctl *SessionController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Sesi tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	oldStatus := existing.SessionStatus
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	statusChanged := existing.SessionStatus != oldStatus
	if statusChanged {
		if _, rbErr := lessonService.NewRebalancer(ctl.DB).Rebalance(c.Context(), existing.SessionClassID); rbErr != nil {
			log.Printf("[SESSIONS.Patch] rebalance error kelas=%s: %v", existing.SessionClassID, rbErr)
		}
		inst := cbService.NewInstantiator(ctl.DB)
		if rcErr := inst.RecomputeStatuses(c.Context(), existing.SessionClassID, time.Now()); rcErr != nil {
			log.Printf("[SESSIONS.Patch] recompute status error kelas=%s: %v", existing.SessionClassID, rcErr)
		}
	}

	return helper.JsonUpdated(c, "Sesi diperbarui", d.FromModel(existing))
}
