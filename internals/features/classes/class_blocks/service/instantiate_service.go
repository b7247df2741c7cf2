// file: internals/features/classes/class_blocks/service/instantiate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	lessonService "codercamp_backend/internals/features/classes/class_lessons/service"
	classModel "codercamp_backend/internals/features/classes/classes/model"
	sessService "codercamp_backend/internals/features/classes/sessions/service"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrClassNotFound     = errors.New("kelas tidak ditemukan")
	ErrClassNoLevel      = errors.New("kelas belum punya level, timeline tidak bisa dibentuk")
	ErrNoPublishedBlocks = errors.New("level belum punya block published")
	ErrBlockNotInLevel   = errors.New("block bukan milik level kelas atau belum published")
	ErrTimelineExists    = errors.New("kelas sudah punya timeline block")
)

type Instantiator struct {
	DB   *gorm.DB
	sync *lessonService.Synchronizer
	reb  *lessonService.Rebalancer
}

func NewInstantiator(db *gorm.DB) *Instantiator {
	return &Instantiator{
		DB:   db,
		sync: lessonService.NewSynchronizer(db),
		reb:  lessonService.NewRebalancer(db),
	}
}

// sessionsRequired: estimasi sesi blok, fallback ke total part lesson
// template-nya, minimal 1.
func sessionsRequired(block currModel.BlockModel, templates []currModel.LessonTemplateModel) int {
	if block.BlockEstimatedSessions != nil && *block.BlockEstimatedSessions > 0 {
		return *block.BlockEstimatedSessions
	}
	total := 0
	for _, t := range templates {
		pc := t.LessonTemplatePartCount
		if pc < 1 {
			pc = 1
		}
		total += pc
	}
	if total < 1 {
		total = 1
	}
	return total
}

type InstantiateRequest struct {
	ClassID   uuid.UUID
	StartDate time.Time
	// block pertama; nil = block published dengan order index terendah
	EntryBlockID *uuid.UUID
}

// Instantiate menyusun timeline class block untuk sebuah kelas: mulai
// dari entry block, lanjut berurutan sampai block published terakhir di
// level. Batas tiap block diproyeksikan ke cadence mingguan kelas supaya
// tanggal block jatuh di tanggal sesi nyata, lalu struktur lesson
// disinkronkan dan penugasan sesi di-rebalance.
func (s *Instantiator) Instantiate(ctx context.Context, req InstantiateRequest) ([]cbModel.ClassBlockModel, error) {
	var cls classModel.ClassModel
	if err := s.DB.WithContext(ctx).
		First(&cls, "class_id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if cls.ClassLevelID == nil {
		return nil, ErrClassNoLevel
	}
	if len(cls.ClassScheduleDays) == 0 {
		return nil, sessService.ErrScheduleIncomplete
	}

	var existing int64
	if err := s.DB.WithContext(ctx).
		Model(&cbModel.ClassBlockModel{}).
		Where("class_block_class_id = ?", req.ClassID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrTimelineExists
	}

	var blocks []currModel.BlockModel
	if err := s.DB.WithContext(ctx).
		Where("block_level_id = ? AND block_is_published = TRUE", *cls.ClassLevelID).
		Order("block_order_index ASC, block_id ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrNoPublishedBlocks
	}

	startIdx := 0
	if req.EntryBlockID != nil {
		startIdx = -1
		for i, b := range blocks {
			if b.BlockID == *req.EntryBlockID {
				startIdx = i
				break
			}
		}
		if startIdx < 0 {
			return nil, ErrBlockNotInLevel
		}
	}
	sequence := blocks[startIdx:]

	// total occurrence yang dibutuhkan seluruh rangkaian
	needs := make([]int, len(sequence))
	total := 0
	for i, b := range sequence {
		var templates []currModel.LessonTemplateModel
		if err := s.DB.WithContext(ctx).
			Where("lesson_template_block_id = ?", b.BlockID).
			Find(&templates).Error; err != nil {
			return nil, err
		}
		needs[i] = sessionsRequired(b, templates)
		total += needs[i]
	}

	occurrences, err := sessService.ExpandWeeklyCount(req.StartDate, cls.ClassScheduleDays, total, time.Local)
	if err != nil {
		return nil, fmt.Errorf("proyeksi cadence: %w", err)
	}

	// potong stream occurrence per block: start = occurrence pertama
	// bagiannya, end = occurrence terakhir — otomatis berantai tanpa
	// tumpang tindih
	rows := make([]cbModel.ClassBlockModel, 0, len(sequence))
	cursor := 0
	for i, b := range sequence {
		seg := occurrences[cursor : cursor+needs[i]]
		cursor += needs[i]
		rows = append(rows, cbModel.ClassBlockModel{
			ClassBlockClassID:   cls.ClassID,
			ClassBlockBlockID:   b.BlockID,
			ClassBlockStartDate: seg[0],
			ClassBlockEndDate:   seg[len(seg)-1],
			ClassBlockStatus:    cbModel.ClassBlockStatusUpcoming,
		})
	}

	if err := s.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("buat class block: %w", err)
	}
	log.Printf("[CLASS_BLOCKS] instantiate kelas=%s blocks=%d mulai=%s",
		cls.ClassID, len(rows), req.StartDate.Format("2006-01-02"))

	if _, err := s.sync.SyncClass(ctx, cls.ClassID); err != nil {
		return rows, fmt.Errorf("sync struktur: %w", err)
	}
	if err := s.RecomputeStatuses(ctx, cls.ClassID, time.Now()); err != nil {
		return rows, err
	}
	if _, err := s.reb.Rebalance(ctx, cls.ClassID); err != nil {
		return rows, fmt.Errorf("rebalance awal: %w", err)
	}
	return rows, nil
}
