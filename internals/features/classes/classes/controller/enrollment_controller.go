// file: internals/features/classes/classes/controller/enrollment_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "codercamp_backend/internals/features/classes/classes/dto"
	m "codercamp_backend/internals/features/classes/classes/model"
	journeyService "codercamp_backend/internals/features/progress/journey/service"
	helper "codercamp_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollment(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: v}
}

/* ========================= Enroll =========================
   Enrollment langsung membentuk journey coder di level kelas,
   dirotasi ke entry block kalau coder masuk tengah jalan.
*/

func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var cls m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	em := req.ToModel(classID)
	if err := ctl.DB.WithContext(c.Context()).Create(&em).Error; err != nil {
		return writePGError(c, err)
	}

	if cls.ClassLevelID != nil {
		tracker := journeyService.NewTracker(ctl.DB)
		if err := tracker.SeedJourney(c.Context(), em.EnrollmentCoderID, *cls.ClassLevelID, req.EnrollmentEntryBlockID); err != nil {
			if errors.Is(err, journeyService.ErrBlockNotInLevel) {
				return helper.JsonError(c, http.StatusBadRequest, err.Error())
			}
			return helper.JsonError(c, http.StatusInternalServerError, "seed journey: "+err.Error())
		}
	}

	return helper.JsonCreated(c, "Coder terdaftar", d.FromEnrollmentModel(em))
}

/* ========================= Unenroll ========================= */

func (ctl *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	coderID, err := parseUUIDParam(c, "coder_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.EnrollmentModel{}).
		Where("enrollment_class_id = ? AND enrollment_coder_id = ? AND enrollment_status = ?",
			classID, coderID, m.EnrollmentStatusActive).
		Update("enrollment_status", m.EnrollmentStatusInactive)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Enrollment aktif tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Coder dikeluarkan dari kelas", fiber.Map{
		"class_id": classID,
		"coder_id": coderID,
	})
}

/* ========================= List ========================= */

func (ctl *EnrollmentController) ListByClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_class_id = ?", classID).
		Order("enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromEnrollmentModels(rows))
}
