// file: internals/features/classes/class_lessons/controller/class_lesson_controller.go
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

	m "codercamp_backend/internals/features/classes/class_lessons/model"
	svc "codercamp_backend/internals/features/classes/class_lessons/service"
	helper "codercamp_backend/internals/helpers"
)

type ClassLessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassLessonController {
	return &ClassLessonController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s wajib diisi", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= List ========================= */

func (ctl *ClassLessonController) ListByBlock(c *fiber.Ctx) error {
	classBlockID, err := parseUUIDParam(c, "class_block_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.ClassLessonModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_lesson_class_block_id = ?", classBlockID).
		Order("class_lesson_order_index ASC, class_lesson_id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctl *ClassLessonController) ListByClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.ClassLessonModel
	if err := ctl.DB.WithContext(c.Context()).Raw(`
		SELECT cl.*
		FROM class_lessons cl
		JOIN class_blocks cb ON cb.class_block_id = cl.class_lesson_class_block_id
		JOIN blocks b        ON b.block_id = cb.class_block_block_id
		WHERE cb.class_block_class_id = ?
		  AND cl.class_lesson_deleted_at IS NULL
		  AND cb.class_block_deleted_at IS NULL
		ORDER BY b.block_order_index ASC, cl.class_lesson_order_index ASC, cl.class_lesson_id ASC
	`, classID).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ========================= Sync ========================= */

func (ctl *ClassLessonController) SyncBlock(c *fiber.Ctx) error {
	classBlockID, err := parseUUIDParam(c, "class_block_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := svc.NewSynchronizer(ctl.DB).SyncBlock(c.Context(), classBlockID)
	if err != nil {
		if errors.Is(err, svc.ErrClassBlockNotFound) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Struktur lesson disinkronkan", res)
}

func (ctl *ClassLessonController) SyncClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	results, err := svc.NewSynchronizer(ctl.DB).SyncClass(c.Context(), classID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Struktur lesson kelas disinkronkan", results)
}

/* ========================= Rebalance ========================= */

func (ctl *ClassLessonController) Rebalance(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := svc.NewRebalancer(ctl.DB).Rebalance(c.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrClassNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrStaleTimeline):
			return helper.JsonError(c, http.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonOK(c, "Timeline di-rebalance", res)
}
