// file: internals/features/classes/sessions/service/generate_sessions_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	classModel "codercamp_backend/internals/features/classes/classes/model"
	sessModel "codercamp_backend/internals/features/classes/sessions/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrClassNotFound      = errors.New("kelas tidak ditemukan")
	ErrScheduleIncomplete = errors.New("jadwal kelas belum lengkap (hari / jam belum diisi)")
)

type Generator struct {
	DB *gorm.DB
}

func NewGenerator(db *gorm.DB) *Generator { return &Generator{DB: db} }

type GenerateOptions struct {
	// default: time.Local
	Location *time.Location
	// default 500
	BatchSize int
}

type GenerateRequest struct {
	ClassID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	// override link snapshot; kalau nil pakai link default kelas
	MeetingLink *string
}

type GenerateResult struct {
	Planned  int `json:"planned"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// GenerateForClass memperluas jadwal mingguan kelas menjadi baris sesi.
// Idempotent: tabrakan (class_id, starts_at) di-skip lewat ON CONFLICT
// DO NOTHING, jadi aman dipanggil ulang untuk rentang yang sama.
func (g *Generator) GenerateForClass(ctx context.Context, req GenerateRequest, opt GenerateOptions) (GenerateResult, error) {
	var res GenerateResult

	loc := opt.Location
	if loc == nil {
		loc = time.Local
	}
	batch := opt.BatchSize
	if batch <= 0 {
		batch = 500
	}

	var cls classModel.ClassModel
	if err := g.DB.WithContext(ctx).
		First(&cls, "class_id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrClassNotFound
		}
		return res, err
	}
	if len(cls.ClassScheduleDays) == 0 || cls.ClassScheduleTime == nil {
		return res, ErrScheduleIncomplete
	}

	starts, err := ExpandWeekly(req.StartDate, req.EndDate, cls.ClassScheduleDays, *cls.ClassScheduleTime, loc)
	if err != nil {
		return res, err
	}
	res.Planned = len(starts)
	if len(starts) == 0 {
		return res, nil
	}

	link := req.MeetingLink
	if link == nil {
		link = cls.ClassMeetingLink
	}
	snap := datatypes.JSONMap{
		"start_date": req.StartDate.In(loc).Format("2006-01-02"),
		"end_date":   req.EndDate.In(loc).Format("2006-01-02"),
		"by_day":     append([]string(nil), cls.ClassScheduleDays...),
		"time":       cls.ClassScheduleTime.String(),
	}

	rows := make([]sessModel.SessionModel, 0, len(starts))
	for _, st := range starts {
		rows = append(rows, sessModel.SessionModel{
			SessionClassID:            cls.ClassID,
			SessionStartsAt:           st,
			SessionStatus:             sessModel.SessionStatusScheduled,
			SessionLinkSnapshot:       link,
			SessionGenerationSnapshot: snap,
		})
	}

	tx := g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, batch)
	if tx.Error != nil {
		return res, fmt.Errorf("insert sesi: %w", tx.Error)
	}
	res.Inserted = int(tx.RowsAffected)
	res.Skipped = res.Planned - res.Inserted

	log.Printf("[SESSIONS] generate kelas=%s rentang=%s..%s planned=%d inserted=%d skipped=%d",
		cls.ClassID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
		res.Planned, res.Inserted, res.Skipped)
	return res, nil
}
