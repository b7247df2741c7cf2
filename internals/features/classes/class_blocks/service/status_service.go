// file: internals/features/classes/class_blocks/service/status_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	journeyService "codercamp_backend/internals/features/progress/journey/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DesiredStatus menentukan status sebuah class block pada tanggal asOf.
// Perbandingan pakai tanggal kalender, bukan jam.
func DesiredStatus(startDate, endDate, asOf time.Time) string {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	s, e, a := day(startDate), day(endDate), day(asOf)
	switch {
	case a.After(e):
		return cbModel.ClassBlockStatusCompleted
	case a.Before(s):
		return cbModel.ClassBlockStatusUpcoming
	default:
		return cbModel.ClassBlockStatusCurrent
	}
}

// PartitionStatuses menghitung status untuk deretan block yang sudah urut
// tanggal mulai. Paling banyak satu CURRENT: kalau rentang tumpang tindih
// (data lama yang belum dibereskan), yang menang adalah block paling awal
// dan sisanya dipaksa UPCOMING.
func PartitionStatuses(blocks []cbModel.ClassBlockModel, asOf time.Time) []string {
	out := make([]string, len(blocks))
	currentTaken := false
	for i, b := range blocks {
		st := DesiredStatus(b.ClassBlockStartDate, b.ClassBlockEndDate, asOf)
		if st == cbModel.ClassBlockStatusCurrent {
			if currentTaken {
				st = cbModel.ClassBlockStatusUpcoming
			}
			currentTaken = true
		}
		out[i] = st
	}
	return out
}

type StatusRecomputeResult struct {
	ClassID   uuid.UUID `json:"class_id"`
	Changed   int       `json:"changed"`
	Completed int       `json:"completed"` // block yang baru saja jadi COMPLETED
}

// RecomputeStatuses menyelaraskan status class block sebuah kelas dengan
// tanggal berjalan. Block yang baru bertransisi ke COMPLETED memicu
// pencatatan completion journey untuk semua coder aktif di kelas.
func (s *Instantiator) RecomputeStatuses(ctx context.Context, classID uuid.UUID, asOf time.Time) error {
	var blocks []cbModel.ClassBlockModel
	if err := s.DB.WithContext(ctx).
		Where("class_block_class_id = ?", classID).
		Order("class_block_start_date ASC, class_block_id ASC").
		Find(&blocks).Error; err != nil {
		return err
	}
	if len(blocks) == 0 {
		return nil
	}

	desired := PartitionStatuses(blocks, asOf)
	tracker := journeyService.NewTracker(s.DB)

	res := StatusRecomputeResult{ClassID: classID}
	for i, b := range blocks {
		if desired[i] == b.ClassBlockStatus {
			continue
		}
		if err := s.DB.WithContext(ctx).
			Model(&cbModel.ClassBlockModel{}).
			Where("class_block_id = ?", b.ClassBlockID).
			Update("class_block_status", desired[i]).Error; err != nil {
			return fmt.Errorf("update status block %s: %w", b.ClassBlockID, err)
		}
		res.Changed++

		if desired[i] == cbModel.ClassBlockStatusCompleted {
			res.Completed++
			if err := tracker.MarkBlockCompletedForClass(ctx, classID, b.ClassBlockBlockID); err != nil {
				return fmt.Errorf("journey completion block %s: %w", b.ClassBlockBlockID, err)
			}
		}
	}

	if res.Changed > 0 {
		log.Printf("[CLASS_BLOCKS] recompute kelas=%s changed=%d completed=%d", classID, res.Changed, res.Completed)
	}
	return nil
}

// OverrideStatuses: koreksi manual massal oleh admin (mis. kelas libur
// panjang), tiap entri diset apa adanya tanpa aturan tanggal.
type StatusOverride struct {
	ClassBlockID uuid.UUID `json:"class_block_id" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=UPCOMING CURRENT COMPLETED"`
}

func (s *Instantiator) OverrideStatuses(ctx context.Context, classID uuid.UUID, overrides []StatusOverride) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range overrides {
			r := tx.Model(&cbModel.ClassBlockModel{}).
				Where("class_block_id = ? AND class_block_class_id = ?", o.ClassBlockID, classID).
				Update("class_block_status", o.Status)
			if r.Error != nil {
				return r.Error
			}
			if r.RowsAffected == 0 {
				return fmt.Errorf("class block %s bukan milik kelas ini", o.ClassBlockID)
			}
		}
		return nil
	})
}
