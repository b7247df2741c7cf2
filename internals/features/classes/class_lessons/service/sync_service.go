// file: internals/features/classes/class_lessons/service/sync_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	clModel "codercamp_backend/internals/features/classes/class_lessons/model"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClassBlockNotFound = errors.New("class block tidak ditemukan")

// spasi order index antar lesson template supaya part-part satu template
// tetap berkelompok tanpa perlu renumber template lain
const orderIndexStride = 1000

type Synchronizer struct {
	DB *gorm.DB
}

func NewSynchronizer(db *gorm.DB) *Synchronizer { return &Synchronizer{DB: db} }

type RenameOp struct {
	ClassLessonID uuid.UUID
	NewTitle      string
	NewPart       int
	NewOrderIndex int
}

// SyncPlan adalah diff struktur: apa yang harus dibuat, dihapus, dan
// di-rename supaya class lessons cocok dengan part count template.
type SyncPlan struct {
	Creates []clModel.ClassLessonModel
	Deletes []uuid.UUID
	Renames []RenameOp
}

func (p SyncPlan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Deletes) == 0 && len(p.Renames) == 0
}

type SyncResult struct {
	ClassBlockID uuid.UUID `json:"class_block_id"`
	Created      int       `json:"created"`
	Deleted      int       `json:"deleted"`
	Renamed      int       `json:"renamed"`
	Skipped      bool      `json:"skipped"`
}

// PartTitle membentuk judul part. Suffix hanya dipakai saat target > 1;
// judul yang sudah bersuffix tidak pernah di-suffix ulang karena judul
// selalu dibentuk dari judul template, bukan dari judul lama.
func PartTitle(base string, part, target int) string {
	if target <= 1 {
		return base
	}
	return fmt.Sprintf("%s (Part %d)", base, part)
}

// BuildSyncPlan menghitung diff murni tanpa IO. existing boleh berisi
// lesson dari template yang sudah dihapus; mereka ikut masuk Deletes.
func BuildSyncPlan(classBlockID uuid.UUID, templates []currModel.LessonTemplateModel, existing []clModel.ClassLessonModel) SyncPlan {
	var plan SyncPlan

	byTemplate := make(map[uuid.UUID][]clModel.ClassLessonModel)
	for _, cl := range existing {
		byTemplate[cl.ClassLessonTemplateID] = append(byTemplate[cl.ClassLessonTemplateID], cl)
	}
	known := make(map[uuid.UUID]bool, len(templates))

	for _, tpl := range templates {
		known[tpl.LessonTemplateID] = true
		target := tpl.LessonTemplatePartCount
		if target < 1 {
			target = 1
		}

		instances := byTemplate[tpl.LessonTemplateID]
		// tie-break stabil: part number lalu id, supaya "ekor" yang
		// dihapus selalu sama di run manapun
		sort.Slice(instances, func(i, j int) bool {
			if instances[i].ClassLessonPartNumber != instances[j].ClassLessonPartNumber {
				return instances[i].ClassLessonPartNumber < instances[j].ClassLessonPartNumber
			}
			return instances[i].ClassLessonID.String() < instances[j].ClassLessonID.String()
		})

		if len(instances) > target {
			for _, extra := range instances[target:] {
				plan.Deletes = append(plan.Deletes, extra.ClassLessonID)
			}
			instances = instances[:target]
		}

		for i, inst := range instances {
			part := i + 1
			want := PartTitle(tpl.LessonTemplateTitle, part, target)
			// order index ikut template: admin bisa menggeser urutan
			// template, dan rebalance sort global pakai kolom ini
			wantOrder := tpl.LessonTemplateOrderIndex*orderIndexStride + part
			if inst.ClassLessonTitle != want || inst.ClassLessonPartNumber != part || inst.ClassLessonOrderIndex != wantOrder {
				plan.Renames = append(plan.Renames, RenameOp{
					ClassLessonID: inst.ClassLessonID,
					NewTitle:      want,
					NewPart:       part,
					NewOrderIndex: wantOrder,
				})
			}
		}

		for part := len(instances) + 1; part <= target; part++ {
			plan.Creates = append(plan.Creates, clModel.ClassLessonModel{
				ClassLessonClassBlockID: classBlockID,
				ClassLessonTemplateID:   tpl.LessonTemplateID,
				ClassLessonTitle:        PartTitle(tpl.LessonTemplateTitle, part, target),
				ClassLessonOrderIndex:   tpl.LessonTemplateOrderIndex*orderIndexStride + part,
				ClassLessonPartNumber:   part,
			})
		}
	}

	// lesson yatim: templatenya sudah tidak ada
	for tplID, instances := range byTemplate {
		if known[tplID] {
			continue
		}
		for _, inst := range instances {
			plan.Deletes = append(plan.Deletes, inst.ClassLessonID)
		}
	}

	return plan
}

// SyncBlock menyamakan class lessons sebuah class block dengan struktur
// template-nya. Block COMPLETED dilewati: timeline yang sudah lewat
// adalah arsip, bukan cermin template.
func (s *Synchronizer) SyncBlock(ctx context.Context, classBlockID uuid.UUID) (SyncResult, error) {
	res := SyncResult{ClassBlockID: classBlockID}

	var cb cbModel.ClassBlockModel
	if err := s.DB.WithContext(ctx).
		First(&cb, "class_block_id = ?", classBlockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrClassBlockNotFound
		}
		return res, err
	}
	if cb.ClassBlockStatus == cbModel.ClassBlockStatusCompleted {
		res.Skipped = true
		return res, nil
	}

	var templates []currModel.LessonTemplateModel
	if err := s.DB.WithContext(ctx).
		Where("lesson_template_block_id = ?", cb.ClassBlockBlockID).
		Order("lesson_template_order_index ASC, lesson_template_id ASC").
		Find(&templates).Error; err != nil {
		return res, err
	}

	var existing []clModel.ClassLessonModel
	if err := s.DB.WithContext(ctx).
		Where("class_lesson_class_block_id = ?", classBlockID).
		Find(&existing).Error; err != nil {
		return res, err
	}

	plan := BuildSyncPlan(classBlockID, templates, existing)
	if plan.Empty() {
		return res, nil
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(plan.Creates) > 0 {
			if err := tx.Create(&plan.Creates).Error; err != nil {
				return fmt.Errorf("buat lesson: %w", err)
			}
		}
		if len(plan.Deletes) > 0 {
			if err := tx.
				Where("class_lesson_id IN ?", plan.Deletes).
				Delete(&clModel.ClassLessonModel{}).Error; err != nil {
				return fmt.Errorf("hapus lesson: %w", err)
			}
		}
		for _, r := range plan.Renames {
			if err := tx.Model(&clModel.ClassLessonModel{}).
				Where("class_lesson_id = ?", r.ClassLessonID).
				Updates(map[string]interface{}{
					"class_lesson_title":       r.NewTitle,
					"class_lesson_part_number": r.NewPart,
					"class_lesson_order_index": r.NewOrderIndex,
				}).Error; err != nil {
				return fmt.Errorf("rename lesson: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Created = len(plan.Creates)
	res.Deleted = len(plan.Deletes)
	res.Renamed = len(plan.Renames)
	log.Printf("[LESSONS] sync block=%s created=%d deleted=%d renamed=%d",
		classBlockID, res.Created, res.Deleted, res.Renamed)
	return res, nil
}

// SyncClass menjalankan sync untuk semua class block kelas yang belum
// COMPLETED, urut timeline.
func (s *Synchronizer) SyncClass(ctx context.Context, classID uuid.UUID) ([]SyncResult, error) {
	var blocks []cbModel.ClassBlockModel
	if err := s.DB.WithContext(ctx).
		Where("class_block_class_id = ? AND class_block_status <> ?", classID, cbModel.ClassBlockStatusCompleted).
		Order("class_block_start_date ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(blocks))
	for _, cb := range blocks {
		r, err := s.SyncBlock(ctx, cb.ClassBlockID)
		if err != nil {
			return results, fmt.Errorf("sync block %s: %w", cb.ClassBlockID, err)
		}
		results = append(results, r)
	}
	return results, nil
}
