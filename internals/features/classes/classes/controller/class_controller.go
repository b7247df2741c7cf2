// file: internals/features/classes/classes/controller/class_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cbService "codercamp_backend/internals/features/classes/class_blocks/service"
	d "codercamp_backend/internals/features/classes/classes/dto"
	m "codercamp_backend/internals/features/classes/classes/model"
	helper "codercamp_backend/internals/helpers"
	helperAuth "codercamp_backend/internals/helpers/auth"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
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

// coach hanya boleh menyentuh kelasnya sendiri; admin bebas
func guardCoachOwnsClass(c *fiber.Ctx, cls *m.ClassModel) error {
	if helperAuth.IsAdmin(c) {
		return nil
	}
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	if cls.ClassCoachID != uid {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak: bukan coach kelas ini")
	}
	return nil
}

/* ========================= Create ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	cm, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&cm).Error; err != nil {
		return writePGError(c, err)
	}

	resp := fiber.Map{"class": d.FromModel(cm)}

	if req.AutoPlan {
		inst := cbService.NewInstantiator(ctl.DB)
		planned, planErr := inst.AutoPlan(c.Context(), cm.ClassID)
		resp["auto_planned"] = planned
		if planErr != nil {
			// kelas tetap terbuat; timeline bisa diulang manual
			log.Printf("[CLASS.Create] AutoPlan error kelas=%s: %v", cm.ClassID, planErr)
			resp["auto_plan_warning"] = planErr.Error()
		}
	}

	return helper.JsonCreated(c, "Kelas dibuat", resp)
}

/* ========================= Patch ========================= */

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return writePGError(c, err)
	}
	if err := guardCoachOwnsClass(c, &existing); err != nil {
		return err
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas diperbarui", d.FromModel(existing))
}

/* ========================= Delete (soft) ========================= */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&m.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas dihapus", fiber.Map{"class_id": id})
}

/* ========================= Get & List ========================= */

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var cm m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&cm, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModel(cm))
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ClassModel{})
	if v := strings.TrimSpace(c.Query("coach_id")); v != "" {
		coachID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "coach_id tidak valid")
		}
		q = q.Where("class_coach_id = ?", coachID)
	}
	if v := strings.TrimSpace(c.Query("level_id")); v != "" {
		levelID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("class_level_id = ?", levelID)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		q = q.Where("class_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassModel
	if err := q.
		Order("class_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= ListMine (coach) ========================= */

func (ctl *ClassController) ListMine(c *fiber.Ctx) error {
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var rows []m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_coach_id = ? AND class_is_active = TRUE", uid).
		Order("class_created_at DESC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}
