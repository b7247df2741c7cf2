// file: internals/features/progress/journey/controller/journey_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "codercamp_backend/internals/features/progress/journey/dto"
	svc "codercamp_backend/internals/features/progress/journey/service"
	helper "codercamp_backend/internals/helpers"
	helperAuth "codercamp_backend/internals/helpers/auth"
)

type JourneyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *JourneyController {
	return &JourneyController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s wajib diisi", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= GetMine (coder) ========================= */

func (ctl *JourneyController) GetMine(c *fiber.Ctx) error {
	coderID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	levelID, err := parseUUIDParam(c, "level_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	rows, err := svc.NewTracker(ctl.DB).GetJourney(c.Context(), coderID, levelID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Journey belum dibentuk untuk level ini")
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}

/* ========================= GetByCoder (coach/admin) ========================= */

func (ctl *JourneyController) GetByCoder(c *fiber.Ctx) error {
	coderID, err := parseUUIDParam(c, "coder_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	levelID, err := parseUUIDParam(c, "level_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	rows, err := svc.NewTracker(ctl.DB).GetJourney(c.Context(), coderID, levelID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Journey belum dibentuk untuk level ini")
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}

/* ========================= RecordCompletion (coach) ========================= */

func (ctl *JourneyController) RecordCompletion(c *fiber.Ctx) error {
	var req d.RecordCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	already, err := svc.NewTracker(ctl.DB).RecordCompletion(c.Context(), req.CoderID, req.BlockID)
	if err != nil {
		if errors.Is(err, svc.ErrJourneyNotSeeded) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Completion dicatat", fiber.Map{
		"coder_id":         req.CoderID,
		"block_id":         req.BlockID,
		"already_recorded": already,
	})
}

/* ========================= Bypass (admin) =========================
   Menimpa penuh: block di luar daftar kehilangan status selesainya.
*/

func (ctl *JourneyController) Bypass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.BypassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	if err := svc.NewTracker(ctl.DB).BypassOverride(c.Context(), classID, req.CoderID, actorID, req.CompletedBlockIDs); err != nil {
		switch {
		case errors.Is(err, svc.ErrClassNotFound), errors.Is(err, svc.ErrJourneyNotSeeded):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrClassNoLevel), errors.Is(err, svc.ErrBlockNotInLevel):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonUpdated(c, "Journey di-override", fiber.Map{
		"class_id":        classID,
		"coder_id":        req.CoderID,
		"completed_count": len(req.CompletedBlockIDs),
	})
}
