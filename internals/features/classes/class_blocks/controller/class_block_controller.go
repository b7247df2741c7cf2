// file: internals/features/classes/class_blocks/controller/class_block_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "codercamp_backend/internals/features/classes/class_blocks/dto"
	m "codercamp_backend/internals/features/classes/class_blocks/model"
	svc "codercamp_backend/internals/features/classes/class_blocks/service"
	helper "codercamp_backend/internals/helpers"
)

type ClassBlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassBlockController {
	return &ClassBlockController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s wajib diisi", name)
	}
	return uuid.Parse(idStr)
}

func writePGError(c *fiber.Ctx, err error) error {
	type pgSQLErr interface {
		SQLState() string
		Error() string
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Data duplikat (unique violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* ========================= Instantiate ========================= */

func (ctl *ClassBlockController) Instantiate(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.InstantiateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)

	inst := svc.NewInstantiator(ctl.DB)
	blocks, err := inst.Instantiate(c.Context(), svc.InstantiateRequest{
		ClassID:      classID,
		StartDate:    start,
		EntryBlockID: req.EntryBlockID,
	})
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrClassNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrTimelineExists):
			return helper.JsonError(c, http.StatusConflict, err.Error())
		case errors.Is(err, svc.ErrClassNoLevel),
			errors.Is(err, svc.ErrNoPublishedBlocks),
			errors.Is(err, svc.ErrBlockNotInLevel):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonCreated(c, "Timeline block dibentuk", d.FromModels(blocks))
}

/* ========================= List ========================= */

func (ctl *ClassBlockController) ListByClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.ClassBlockModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_block_class_id = ?", classID).
		Order("class_block_start_date ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}

/* ========================= Recompute =========================
   Dipanggil scheduler harian atau manual oleh admin/coach setelah
   koreksi tanggal.
*/

func (ctl *ClassBlockController) Recompute(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	inst := svc.NewInstantiator(ctl.DB)
	if err := inst.RecomputeStatuses(c.Context(), classID, time.Now()); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.ClassBlockModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_block_class_id = ?", classID).
		Order("class_block_start_date ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Status block diselaraskan", d.FromModels(rows))
}

/* ========================= Override Statuses ========================= */

func (ctl *ClassBlockController) OverrideStatuses(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.OverrideStatusesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	inst := svc.NewInstantiator(ctl.DB)
	if err := inst.OverrideStatuses(c.Context(), classID, req.Overrides); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	return helper.JsonUpdated(c, "Status block di-override", fiber.Map{
		"class_id": classID,
		"count":    len(req.Overrides),
	})
}
