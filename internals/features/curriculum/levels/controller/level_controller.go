// file: internals/features/curriculum/levels/controller/level_controller.go
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

	d "codercamp_backend/internals/features/curriculum/levels/dto"
	m "codercamp_backend/internals/features/curriculum/levels/model"
	helper "codercamp_backend/internals/helpers"
)

type LevelController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LevelController {
	return &LevelController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s wajib diisi", name)
	}
	return uuid.Parse(idStr)
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation, 23505 = unique_violation
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

/* ========================= Create ========================= */

func (ctl *LevelController) Create(c *fiber.Ctx) error {
	var req d.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	lm := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&lm).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Level dibuat", d.FromModel(lm))
}

/* ========================= Patch ========================= */

func (ctl *LevelController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LevelModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Level tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Level diperbarui", d.FromModel(existing))
}

/* ========================= Delete (soft) ========================= */

func (ctl *LevelController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&m.LevelModel{}, "level_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Level tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Level dihapus", fiber.Map{"level_id": id})
}

/* ========================= Get & List ========================= */

func (ctl *LevelController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var lm m.LevelModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&lm, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Level tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModel(lm))
}

func (ctl *LevelController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.LevelModel{})
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		q = q.Where("level_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.LevelModel
	if err := q.
		Order("level_order_index ASC, level_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
