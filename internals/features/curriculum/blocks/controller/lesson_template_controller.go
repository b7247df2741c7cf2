// file: internals/features/curriculum/blocks/controller/lesson_template_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "codercamp_backend/internals/features/curriculum/blocks/dto"
	m "codercamp_backend/internals/features/curriculum/blocks/model"
	helper "codercamp_backend/internals/helpers"
	ossHelper "codercamp_backend/internals/helpers/oss"
)

type LessonTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonTemplate(db *gorm.DB, v *validator.Validate) *LessonTemplateController {
	return &LessonTemplateController{DB: db, Validate: v}
}

// Setiap mutasi lesson template menandai block induknya perlu propagasi.
// Sync ke kelas berjalan tetap lewat endpoint propagate eksplisit;
// flag ini cuma sinyal ke admin bahwa kelas bisa jadi basi.
func (ctl *LessonTemplateController) markBlockNeedsPropagation(c *fiber.Ctx, blockID uuid.UUID) {
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.BlockModel{}).
		Where("block_id = ?", blockID).
		Update("block_needs_propagation", true).Error; err != nil {
		log.Printf("[LESSON_TEMPLATE] ⚠️ gagal tandai block %s perlu propagasi: %v", blockID, err)
	}
}

/* ========================= Create ========================= */

func (ctl *LessonTemplateController) Create(c *fiber.Ctx) error {
	var req d.CreateLessonTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	tm := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&tm).Error; err != nil {
		return writePGError(c, err)
	}
	ctl.markBlockNeedsPropagation(c, tm.LessonTemplateBlockID)
	return helper.JsonCreated(c, "Lesson template dibuat", d.FromLessonTemplateModel(tm))
}

/* ========================= Patch ========================= */

func (ctl *LessonTemplateController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LessonTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "lesson_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Lesson template tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateLessonTemplateRequest
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
	ctl.markBlockNeedsPropagation(c, existing.LessonTemplateBlockID)
	return helper.JsonUpdated(c, "Lesson template diperbarui", d.FromLessonTemplateModel(existing))
}

/* ========================= Delete (soft) ========================= */

func (ctl *LessonTemplateController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LessonTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "lesson_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Lesson template tidak ditemukan")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).
		Delete(&m.LessonTemplateModel{}, "lesson_template_id = ?", id).Error; err != nil {
		return writePGError(c, err)
	}
	ctl.markBlockNeedsPropagation(c, existing.LessonTemplateBlockID)
	return helper.JsonDeleted(c, "Lesson template dihapus", fiber.Map{"lesson_template_id": id})
}

/* ========================= List ========================= */

func (ctl *LessonTemplateController) ListByBlock(c *fiber.Ctx) error {
	blockID, err := parseUUIDParam(c, "block_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.LessonTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("lesson_template_block_id = ?", blockID).
		Order("lesson_template_order_index ASC, lesson_template_id ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromLessonTemplateModels(rows))
}

/* ========================= Upload Example =========================
   multipart "file" → dikonversi WebP → OSS. Key lama dihapus supaya
   bucket tidak menumpuk sampah.
*/

func (ctl *LessonTemplateController) UploadExample(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.LessonTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&existing, "lesson_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Lesson template tidak ditemukan")
		}
		return writePGError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "field 'file' wajib diisi")
	}

	url, key, err := ossHelper.UploadLessonAsset("lesson-examples", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, "upload gagal: "+err.Error())
	}

	oldKey := existing.LessonTemplateExampleKey
	existing.LessonTemplateExampleURL = &url
	existing.LessonTemplateExampleKey = &key
	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if delErr := ossHelper.DeleteObject(*oldKey); delErr != nil {
			log.Printf("[LESSON_TEMPLATE] ⚠️ gagal hapus objek lama %s: %v", *oldKey, delErr)
		}
	}

	return helper.JsonUpdated(c, "Contoh materi diunggah", fiber.Map{
		"lesson_template_id":          existing.LessonTemplateID,
		"lesson_template_example_url": url,
	})
}
