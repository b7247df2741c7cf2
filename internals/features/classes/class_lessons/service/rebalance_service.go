// file: internals/features/classes/class_lessons/service/rebalance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	classModel "codercamp_backend/internals/features/classes/classes/model"
	sessModel "codercamp_backend/internals/features/classes/sessions/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStaleTimeline = errors.New("timeline kelas berubah di tengah rebalance, coba lagi")
	ErrClassNotFound = errors.New("kelas tidak ditemukan")
)

// ukuran batch update; rebalance komit per batch, gagal di tengah
// meninggalkan batch yang sudah komit apa adanya (akan dikoreksi run berikut)
const rebalanceBatchSize = 50

type Rebalancer struct {
	DB *gorm.DB
}

func NewRebalancer(db *gorm.DB) *Rebalancer { return &Rebalancer{DB: db} }

// LessonOrderRow: proyeksi minimal yang dibutuhkan pengurut global.
type LessonOrderRow struct {
	ClassLessonID    uuid.UUID `gorm:"column:class_lesson_id"`
	BlockOrderIndex  int       `gorm:"column:block_order_index"`
	LessonOrderIndex int       `gorm:"column:lesson_order_index"`
}

// AssignmentSlot: hasil penempatan satu lesson. Assigned=false berarti
// lesson kebagian "overflow" (sesi habis) dan kolom targetnya NULL.
type AssignmentSlot struct {
	Assigned  bool
	SessionID uuid.UUID
	UnlockAt  time.Time
}

type Assignment struct {
	ClassLessonID uuid.UUID
	Slot          AssignmentSlot
}

// SortCurriculumOrder mengurutkan lesson pada urutan kurikulum global:
// order index block, lalu order index lesson, lalu id sebagai tie-break
// supaya hasil deterministik walau ada order index kembar.
func SortCurriculumOrder(rows []LessonOrderRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BlockOrderIndex != rows[j].BlockOrderIndex {
			return rows[i].BlockOrderIndex < rows[j].BlockOrderIndex
		}
		if rows[i].LessonOrderIndex != rows[j].LessonOrderIndex {
			return rows[i].LessonOrderIndex < rows[j].LessonOrderIndex
		}
		return rows[i].ClassLessonID.String() < rows[j].ClassLessonID.String()
	})
}

// BuildAssignments memetakan lesson ke-K ke sesi non-cancelled ke-K.
// rows harus sudah diurutkan; sessions harus non-cancelled dan urut waktu.
// unlock_at = waktu mulai sesi yang kebagian.
func BuildAssignments(rows []LessonOrderRow, sessions []sessModel.SessionModel) []Assignment {
	out := make([]Assignment, 0, len(rows))
	for i, r := range rows {
		a := Assignment{ClassLessonID: r.ClassLessonID}
		if i < len(sessions) {
			a.Slot = AssignmentSlot{
				Assigned:  true,
				SessionID: sessions[i].SessionID,
				UnlockAt:  sessions[i].SessionStartsAt,
			}
		}
		out = append(out, a)
	}
	return out
}

type RebalanceResult struct {
	ClassID    uuid.UUID `json:"class_id"`
	Lessons    int       `json:"lessons"`
	Assigned   int       `json:"assigned"`
	Unassigned int       `json:"unassigned"`
	NewVersion int64     `json:"new_version"`
}

// Rebalance menata ulang seluruh penugasan lesson→sesi sebuah kelas dari
// nol. Versi timeline kelas dinaikkan di awal dengan guard optimistik:
// kalau versi sudah bergeser (rebalance lain menyela), run ini berhenti
// dengan ErrStaleTimeline dan tidak menulis apa-apa lagi.
func (r *Rebalancer) Rebalance(ctx context.Context, classID uuid.UUID) (RebalanceResult, error) {
	res := RebalanceResult{ClassID: classID}

	var cls classModel.ClassModel
	if err := r.DB.WithContext(ctx).
		First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrClassNotFound
		}
		return res, err
	}

	var rows []LessonOrderRow
	if err := r.DB.WithContext(ctx).Raw(`
		SELECT cl.class_lesson_id,
		       b.block_order_index      AS block_order_index,
		       cl.class_lesson_order_index AS lesson_order_index
		FROM class_lessons cl
		JOIN class_blocks cb ON cb.class_block_id = cl.class_lesson_class_block_id
		JOIN blocks b        ON b.block_id = cb.class_block_block_id
		WHERE cb.class_block_class_id = ?
		  AND cl.class_lesson_deleted_at IS NULL
		  AND cb.class_block_deleted_at IS NULL
	`, classID).Scan(&rows).Error; err != nil {
		return res, fmt.Errorf("muat urutan lesson: %w", err)
	}
	SortCurriculumOrder(rows)

	var sessions []sessModel.SessionModel
	if err := r.DB.WithContext(ctx).
		Where("session_class_id = ? AND session_status <> ?", classID, sessModel.SessionStatusCancelled).
		Order("session_starts_at ASC").
		Find(&sessions).Error; err != nil {
		return res, fmt.Errorf("muat sesi: %w", err)
	}

	assignments := BuildAssignments(rows, sessions)

	// guard optimistik: naikkan versi hanya kalau masih versi yang kita baca
	bump := r.DB.WithContext(ctx).Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_timeline_version = ?", classID, cls.ClassTimelineVersion).
		Update("class_timeline_version", cls.ClassTimelineVersion+1)
	if bump.Error != nil {
		return res, bump.Error
	}
	if bump.RowsAffected == 0 {
		return res, ErrStaleTimeline
	}
	res.NewVersion = cls.ClassTimelineVersion + 1

	for start := 0; start < len(assignments); start += rebalanceBatchSize {
		end := start + rebalanceBatchSize
		if end > len(assignments) {
			end = len(assignments)
		}
		if err := r.applyBatch(ctx, assignments[start:end]); err != nil {
			return res, fmt.Errorf("batch lesson %d..%d: %w", start, end-1, err)
		}
	}

	res.Lessons = len(assignments)
	for _, a := range assignments {
		if a.Slot.Assigned {
			res.Assigned++
		}
	}
	res.Unassigned = res.Lessons - res.Assigned

	log.Printf("[REBALANCE] kelas=%s lessons=%d assigned=%d unassigned=%d versi=%d",
		classID, res.Lessons, res.Assigned, res.Unassigned, res.NewVersion)
	return res, nil
}

func (r *Rebalancer) applyBatch(ctx context.Context, batch []Assignment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range batch {
			upd := map[string]interface{}{
				"class_lesson_session_id": nil,
				"class_lesson_unlock_at":  nil,
			}
			if a.Slot.Assigned {
				upd["class_lesson_session_id"] = a.Slot.SessionID
				upd["class_lesson_unlock_at"] = a.Slot.UnlockAt
			}
			if err := tx.Table("class_lessons").
				Where("class_lesson_id = ?", a.ClassLessonID).
				Updates(upd).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
