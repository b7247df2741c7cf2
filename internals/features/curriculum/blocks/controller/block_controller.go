// file: internals/features/curriculum/blocks/controller/block_controller.go
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

	lessonService "codercamp_backend/internals/features/classes/class_lessons/service"
	d "codercamp_backend/internals/features/curriculum/blocks/dto"
	m "codercamp_backend/internals/features/curriculum/blocks/model"
	helper "codercamp_backend/internals/helpers"
)

type BlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BlockController {
	return &BlockController{DB: db, Validate: v}
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

/* ========================= Create ========================= */

func (ctl *BlockController) Create(c *fiber.Ctx) error {
	var req d.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	bm := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&bm).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Block dibuat", d.FromBlockModel(bm))
}

/* ========================= Patch ========================= */

func (ctl *BlockController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "block_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateBlockRequest
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
	return helper.JsonUpdated(c, "Block diperbarui", d.FromBlockModel(existing))
}

/* ========================= Delete (soft) ========================= */

func (ctl *BlockController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&m.BlockModel{}, "block_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Block dihapus", fiber.Map{"block_id": id})
}

/* ========================= Get & List ========================= */

func (ctl *BlockController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var bm m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&bm, "block_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromBlockModel(bm))
}

func (ctl *BlockController) ListByLevel(c *fiber.Ctx) error {
	levelID, err := parseUUIDParam(c, "level_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.BlockModel{}).
		Where("block_level_id = ?", levelID)
	if v := strings.TrimSpace(c.Query("published")); v != "" {
		q = q.Where("block_is_published = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.BlockModel
	if err := q.
		Order("block_order_index ASC, block_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.FromBlockModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= Propagate =========================
   Perubahan struktur template tidak otomatis menjalar; admin memicu
   lewat endpoint ini supaya beban sync+rebalance banyak kelas terkontrol.
*/

func (ctl *BlockController) Propagate(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var bm m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&bm, "block_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
		}
		return writePGError(c, err)
	}

	prop := lessonService.NewPropagator(ctl.DB)
	report, err := prop.PropagateTemplateChange(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Propagasi selesai", report)
}
