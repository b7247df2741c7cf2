// file: internals/features/classes/class_blocks/service/auto_plan_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	classModel "codercamp_backend/internals/features/classes/classes/model"
	sessService "codercamp_backend/internals/features/classes/sessions/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoPlan menyiapkan timeline lengkap kelas WEEKLY yang baru dibuat:
// generate sesi untuk seluruh rentang rangkaian block lalu instantiate
// timeline block-nya. Dilewati (bukan error) kalau kelas bukan WEEKLY,
// belum punya level / jadwal, atau sudah punya timeline.
func (s *Instantiator) AutoPlan(ctx context.Context, classID uuid.UUID) (planned bool, err error) {
	var cls classModel.ClassModel
	if err := s.DB.WithContext(ctx).
		First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrClassNotFound
		}
		return false, err
	}
	if cls.ClassType != classModel.ClassTypeWeekly ||
		cls.ClassLevelID == nil ||
		cls.ClassStartDate == nil ||
		len(cls.ClassScheduleDays) == 0 ||
		cls.ClassScheduleTime == nil {
		log.Printf("[AUTO_PLAN] kelas=%s belum memenuhi syarat, lewati", classID)
		return false, nil
	}

	var existing int64
	if err := s.DB.WithContext(ctx).
		Model(&cbModel.ClassBlockModel{}).
		Where("class_block_class_id = ?", classID).
		Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	blocks, err := s.Instantiate(ctx, InstantiateRequest{
		ClassID:   classID,
		StartDate: *cls.ClassStartDate,
	})
	if err != nil {
		return false, err
	}

	// sesi dibuat menutup seluruh rangkaian block
	end := blocks[len(blocks)-1].ClassBlockEndDate
	gen := sessService.NewGenerator(s.DB)
	if _, err := gen.GenerateForClass(ctx, sessService.GenerateRequest{
		ClassID:   classID,
		StartDate: *cls.ClassStartDate,
		EndDate:   end,
	}, sessService.GenerateOptions{Location: time.Local}); err != nil {
		return true, fmt.Errorf("generate sesi auto plan: %w", err)
	}

	// sesi baru saja muncul; tata ulang penugasan lesson
	if _, err := s.reb.Rebalance(ctx, classID); err != nil {
		return true, err
	}
	return true, nil
}
