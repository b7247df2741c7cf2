// file: internals/features/classes/class_blocks/scheduler/status_scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	svc "codercamp_backend/internals/features/classes/class_blocks/service"
	classModel "codercamp_backend/internals/features/classes/classes/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartTimelineStatusScheduler menjalankan penyelarasan status block
// semua kelas aktif sekali sehari, supaya transisi CURRENT→COMPLETED
// (dan completion journey yang menyertainya) tetap jalan tanpa traffic.
func StartTimelineStatusScheduler(db *gorm.DB) {
	go func() {
		time.Sleep(30 * time.Second) // beri waktu warm-up DB

		run := func() {
			var classIDs []uuid.UUID
			if err := db.
				Model(&classModel.ClassModel{}).
				Where("class_is_active = TRUE").
				Pluck("class_id", &classIDs).Error; err != nil {
				log.Printf("[SCHEDULER] ⚠️ gagal ambil kelas aktif: %v", err)
				return
			}

			inst := svc.NewInstantiator(db)
			now := time.Now()
			for _, id := range classIDs {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := inst.RecomputeStatuses(ctx, id, now); err != nil {
					log.Printf("[SCHEDULER] ⚠️ recompute kelas=%s: %v", id, err)
				}
				cancel()
			}
			log.Printf("[SCHEDULER] recompute status selesai, kelas=%d", len(classIDs))
		}

		run()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			run()
		}
	}()
}
