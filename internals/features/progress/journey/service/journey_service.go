// file: internals/features/progress/journey/service/journey_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	classModel "codercamp_backend/internals/features/classes/classes/model"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"
	"codercamp_backend/internals/features/progress/journey/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrJourneyNotSeeded = errors.New("journey coder belum dibentuk untuk level ini")
	ErrClassNotFound    = errors.New("kelas tidak ditemukan")
	ErrClassNoLevel     = errors.New("kelas belum punya level")
	ErrBlockNotInLevel  = errors.New("block bukan bagian dari level journey")
)

type Tracker struct {
	DB *gorm.DB
}

func NewTracker(db *gorm.DB) *Tracker { return &Tracker{DB: db} }

// JourneyEntry: satu langkah journey dalam urutan kurikulum.
type JourneyEntry struct {
	BlockID     uuid.UUID
	Status      string
	CompletedAt *time.Time
}

// JourneyUpdate: perubahan status yang harus dipersist.
type JourneyUpdate struct {
	BlockID     uuid.UUID
	Status      string
	CompletedAt *time.Time
	ClearDone   bool // set completed_at = NULL
}

// RecomputeJourney menghitung ulang seluruh status dari himpunan block
// yang dianggap selesai. Ini fungsi murni; entries harus urut kurikulum.
// Invariannya: block selesai = COMPLETED, block belum-selesai paling awal
// = IN_PROGRESS, sisanya PENDING.
func RecomputeJourney(entries []JourneyEntry, completed map[uuid.UUID]bool, now time.Time) []JourneyUpdate {
	var updates []JourneyUpdate
	pointerPlaced := false

	for _, e := range entries {
		var want string
		switch {
		case completed[e.BlockID]:
			want = model.ProgressStatusCompleted
		case !pointerPlaced:
			want = model.ProgressStatusInProgress
			pointerPlaced = true
		default:
			want = model.ProgressStatusPending
		}

		if want == e.Status && (want != model.ProgressStatusCompleted || e.CompletedAt != nil) {
			continue
		}

		u := JourneyUpdate{BlockID: e.BlockID, Status: want}
		switch want {
		case model.ProgressStatusCompleted:
			if e.CompletedAt != nil {
				t := *e.CompletedAt
				u.CompletedAt = &t
			} else {
				t := now
				u.CompletedAt = &t
			}
		default:
			if e.CompletedAt != nil {
				u.ClearDone = true
			}
		}
		updates = append(updates, u)
	}
	return updates
}

// rotateToEntry memutar urutan block supaya journey mulai dari entry
// block; block sebelum entry pindah ke ekor.
func rotateToEntry(blocks []currModel.BlockModel, entryBlockID uuid.UUID) ([]currModel.BlockModel, error) {
	for i, b := range blocks {
		if b.BlockID == entryBlockID {
			return append(append([]currModel.BlockModel{}, blocks[i:]...), blocks[:i]...), nil
		}
	}
	return nil, ErrBlockNotInLevel
}

func completedSet(entries []JourneyEntry) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool)
	for _, e := range entries {
		if e.Status == model.ProgressStatusCompleted {
			set[e.BlockID] = true
		}
	}
	return set
}

// SeedJourney membentuk baris progress untuk semua block published di
// level, dirotasi supaya journey mulai dari entry block (untuk coder
// yang masuk tengah jalan). Idempotent: kalau journey level ini sudah
// ada, tidak menulis apa-apa.
func (t *Tracker) SeedJourney(ctx context.Context, coderID, levelID uuid.UUID, entryBlockID *uuid.UUID) error {
	blocks, err := t.publishedBlocks(ctx, levelID)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return nil
	}

	ordered := blocks
	if entryBlockID != nil {
		ordered, err = rotateToEntry(blocks, *entryBlockID)
		if err != nil {
			return err
		}
	}

	var count int64
	if err := t.DB.WithContext(ctx).
		Model(&model.CoderBlockProgressModel{}).
		Where("coder_block_progress_coder_id = ? AND coder_block_progress_level_id = ?", coderID, levelID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]model.CoderBlockProgressModel, 0, len(ordered))
	for i, b := range ordered {
		status := model.ProgressStatusPending
		if i == 0 {
			status = model.ProgressStatusInProgress
		}
		rows = append(rows, model.CoderBlockProgressModel{
			CoderBlockProgressCoderID:      coderID,
			CoderBlockProgressBlockID:      b.BlockID,
			CoderBlockProgressLevelID:      levelID,
			CoderBlockProgressJourneyOrder: i + 1,
			CoderBlockProgressStatus:       status,
		})
	}
	if err := t.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed journey: %w", err)
	}
	log.Printf("[JOURNEY] seed coder=%s level=%s blocks=%d", coderID, levelID, len(rows))
	return nil
}

// RecordCompletion menandai satu block selesai untuk seorang coder dan
// menggeser pointer IN_PROGRESS. Idempotent: panggilan kedua untuk block
// yang sama mengembalikan alreadyRecorded=true tanpa menulis.
func (t *Tracker) RecordCompletion(ctx context.Context, coderID, blockID uuid.UUID) (alreadyRecorded bool, err error) {
	var row model.CoderBlockProgressModel
	if err := t.DB.WithContext(ctx).
		First(&row, "coder_block_progress_coder_id = ? AND coder_block_progress_block_id = ?", coderID, blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrJourneyNotSeeded
		}
		return false, err
	}
	if row.CoderBlockProgressStatus == model.ProgressStatusCompleted {
		return true, nil
	}

	entries, err := t.loadEntries(ctx, coderID, row.CoderBlockProgressLevelID)
	if err != nil {
		return false, err
	}
	done := completedSet(entries)
	done[blockID] = true

	updates := RecomputeJourney(entries, done, time.Now())
	if err := t.applyUpdates(ctx, coderID, row.CoderBlockProgressLevelID, updates); err != nil {
		return false, err
	}
	return false, nil
}

// BypassOverride menimpa journey seorang coder menjadi persis himpunan
// block selesai yang diberikan admin — termasuk MENGHAPUS status selesai
// dari block yang tidak ada di daftar.
func (t *Tracker) BypassOverride(ctx context.Context, classID, coderID, actorID uuid.UUID, completedBlockIDs []uuid.UUID) error {
	var cls classModel.ClassModel
	if err := t.DB.WithContext(ctx).
		First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	if cls.ClassLevelID == nil {
		return ErrClassNoLevel
	}

	entries, err := t.loadEntries(ctx, coderID, *cls.ClassLevelID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrJourneyNotSeeded
	}

	inLevel := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		inLevel[e.BlockID] = true
	}
	done := make(map[uuid.UUID]bool, len(completedBlockIDs))
	for _, id := range completedBlockIDs {
		if !inLevel[id] {
			return ErrBlockNotInLevel
		}
		done[id] = true
	}

	updates := RecomputeJourney(entries, done, time.Now())
	if err := t.applyUpdates(ctx, coderID, *cls.ClassLevelID, updates); err != nil {
		return err
	}

	completedStr := make([]interface{}, 0, len(completedBlockIDs))
	for _, id := range completedBlockIDs {
		completedStr = append(completedStr, id.String())
	}
	audit := model.JourneyBypassAuditModel{
		JourneyBypassAuditClassID: classID,
		JourneyBypassAuditCoderID: coderID,
		JourneyBypassAuditActorID: actorID,
		JourneyBypassAuditPayload: datatypes.JSONMap{
			"completed_block_ids": completedStr,
			"updates":             len(updates),
		},
	}
	if err := t.DB.WithContext(ctx).Create(&audit).Error; err != nil {
		return fmt.Errorf("catat audit bypass: %w", err)
	}
	log.Printf("[JOURNEY] bypass coder=%s kelas=%s selesai=%d updates=%d oleh=%s",
		coderID, classID, len(completedBlockIDs), len(updates), actorID)
	return nil
}

// MarkBlockCompletedForClass dipanggil saat sebuah class block lewat
// tanggal akhirnya: semua coder aktif di kelas dapat completion block itu.
func (t *Tracker) MarkBlockCompletedForClass(ctx context.Context, classID, blockID uuid.UUID) error {
	var coderIDs []uuid.UUID
	if err := t.DB.WithContext(ctx).
		Model(&classModel.EnrollmentModel{}).
		Where("enrollment_class_id = ? AND enrollment_status = ?", classID, classModel.EnrollmentStatusActive).
		Pluck("enrollment_coder_id", &coderIDs).Error; err != nil {
		return err
	}
	for _, coderID := range coderIDs {
		if _, err := t.RecordCompletion(ctx, coderID, blockID); err != nil {
			if errors.Is(err, ErrJourneyNotSeeded) {
				log.Printf("[JOURNEY] ⚠️ coder=%s belum punya journey, lewati", coderID)
				continue
			}
			return fmt.Errorf("coder %s: %w", coderID, err)
		}
	}
	return nil
}

// GetJourney mengembalikan journey coder untuk satu level, urut journey
// (hasil rotasi entry block saat seed — bukan block_order_index).
func (t *Tracker) GetJourney(ctx context.Context, coderID, levelID uuid.UUID) ([]model.CoderBlockProgressModel, error) {
	var rows []model.CoderBlockProgressModel
	err := t.DB.WithContext(ctx).
		Where("coder_block_progress_coder_id = ? AND coder_block_progress_level_id = ?", coderID, levelID).
		Order("coder_block_progress_journey_order ASC, coder_block_progress_block_id ASC").
		Find(&rows).Error
	return rows, err
}

func (t *Tracker) publishedBlocks(ctx context.Context, levelID uuid.UUID) ([]currModel.BlockModel, error) {
	var blocks []currModel.BlockModel
	err := t.DB.WithContext(ctx).
		Where("block_level_id = ? AND block_is_published = TRUE", levelID).
		Order("block_order_index ASC, block_id ASC").
		Find(&blocks).Error
	return blocks, err
}

func (t *Tracker) loadEntries(ctx context.Context, coderID, levelID uuid.UUID) ([]JourneyEntry, error) {
	rows, err := t.GetJourney(ctx, coderID, levelID)
	if err != nil {
		return nil, err
	}
	entries := make([]JourneyEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, JourneyEntry{
			BlockID:     r.CoderBlockProgressBlockID,
			Status:      r.CoderBlockProgressStatus,
			CompletedAt: r.CoderBlockProgressCompletedAt,
		})
	}
	return entries, nil
}

func (t *Tracker) applyUpdates(ctx context.Context, coderID, levelID uuid.UUID, updates []JourneyUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			vals := map[string]interface{}{
				"coder_block_progress_status": u.Status,
			}
			if u.CompletedAt != nil {
				vals["coder_block_progress_completed_at"] = *u.CompletedAt
			} else if u.ClearDone {
				vals["coder_block_progress_completed_at"] = nil
			}
			if err := tx.Model(&model.CoderBlockProgressModel{}).
				Where("coder_block_progress_coder_id = ? AND coder_block_progress_level_id = ? AND coder_block_progress_block_id = ?",
					coderID, levelID, u.BlockID).
				Updates(vals).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
