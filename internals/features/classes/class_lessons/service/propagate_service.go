// file: internals/features/classes/class_lessons/service/propagate_service.go
package service

import (
	"context"
	"fmt"
	"log"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Propagator struct {
	DB   *gorm.DB
	sync *Synchronizer
	reb  *Rebalancer
}

func NewPropagator(db *gorm.DB) *Propagator {
	return &Propagator{DB: db, sync: NewSynchronizer(db), reb: NewRebalancer(db)}
}

type PropagationFailure struct {
	ClassID uuid.UUID `json:"class_id"`
	Stage   string    `json:"stage"` // "sync" | "rebalance"
	Message string    `json:"message"`
}

type PropagationReport struct {
	BlockID          uuid.UUID            `json:"block_id"`
	ClassesAffected  int                  `json:"classes_affected"`
	ClassesSucceeded int                  `json:"classes_succeeded"`
	Failures         []PropagationFailure `json:"failures"`
}

// PropagateTemplateChange menyebarkan perubahan struktur sebuah block
// template ke semua kelas yang block-nya masih berjalan atau belum mulai
// (CURRENT / UPCOMING). Kelas yang gagal dicatat di report, tidak
// menghentikan kelas lain.
func (p *Propagator) PropagateTemplateChange(ctx context.Context, blockID uuid.UUID) (PropagationReport, error) {
	report := PropagationReport{BlockID: blockID}

	var classIDs []uuid.UUID
	if err := p.DB.WithContext(ctx).
		Model(&cbModel.ClassBlockModel{}).
		Distinct("class_block_class_id").
		Where("class_block_block_id = ? AND class_block_status IN ?",
			blockID,
			[]string{cbModel.ClassBlockStatusCurrent, cbModel.ClassBlockStatusUpcoming}).
		Pluck("class_block_class_id", &classIDs).Error; err != nil {
		return report, fmt.Errorf("cari kelas terdampak: %w", err)
	}
	report.ClassesAffected = len(classIDs)

	for _, classID := range classIDs {
		if _, err := p.sync.SyncClass(ctx, classID); err != nil {
			report.Failures = append(report.Failures, PropagationFailure{
				ClassID: classID, Stage: "sync", Message: err.Error(),
			})
			continue
		}
		if _, err := p.reb.Rebalance(ctx, classID); err != nil {
			report.Failures = append(report.Failures, PropagationFailure{
				ClassID: classID, Stage: "rebalance", Message: err.Error(),
			})
			continue
		}
		report.ClassesSucceeded++
	}

	// flag dirty baru dibersihkan kalau semua kelas berhasil; kalau ada
	// yang gagal, block tetap ditandai supaya admin mengulang propagasi
	if len(report.Failures) == 0 {
		if err := p.DB.WithContext(ctx).
			Model(&currModel.BlockModel{}).
			Where("block_id = ?", blockID).
			Update("block_needs_propagation", false).Error; err != nil {
			return report, fmt.Errorf("bersihkan flag propagasi: %w", err)
		}
	}

	log.Printf("[PROPAGATE] block=%s kelas=%d sukses=%d gagal=%d",
		blockID, report.ClassesAffected, report.ClassesSucceeded, len(report.Failures))
	return report, nil
}
