package service

import (
	"testing"
	"time"

	cbModel "codercamp_backend/internals/features/classes/class_blocks/model"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cb(start, end time.Time) cbModel.ClassBlockModel {
	return cbModel.ClassBlockModel{
		ClassBlockStartDate: start,
		ClassBlockEndDate:   end,
		ClassBlockStatus:    cbModel.ClassBlockStatusUpcoming,
	}
}

func TestDesiredStatus(t *testing.T) {
	start, end := day(2024, 2, 1), day(2024, 2, 28)

	if got := DesiredStatus(start, end, day(2024, 1, 15)); got != cbModel.ClassBlockStatusUpcoming {
		t.Errorf("sebelum mulai = %s, want UPCOMING", got)
	}
	if got := DesiredStatus(start, end, day(2024, 2, 1)); got != cbModel.ClassBlockStatusCurrent {
		t.Errorf("hari pertama = %s, want CURRENT", got)
	}
	if got := DesiredStatus(start, end, day(2024, 2, 28)); got != cbModel.ClassBlockStatusCurrent {
		t.Errorf("hari terakhir = %s, want CURRENT", got)
	}
	if got := DesiredStatus(start, end, day(2024, 2, 29)); got != cbModel.ClassBlockStatusCompleted {
		t.Errorf("setelah akhir = %s, want COMPLETED", got)
	}
}

func TestDesiredStatusIgnoresClock(t *testing.T) {
	start, end := day(2024, 2, 1), day(2024, 2, 28)
	lateNight := time.Date(2024, 2, 28, 23, 59, 0, 0, time.UTC)
	if got := DesiredStatus(start, end, lateNight); got != cbModel.ClassBlockStatusCurrent {
		t.Errorf("jam tidak boleh ikut hitung: %s, want CURRENT", got)
	}
}

func TestPartitionStatusesSequence(t *testing.T) {
	blocks := []cbModel.ClassBlockModel{
		cb(day(2024, 1, 1), day(2024, 1, 31)),
		cb(day(2024, 2, 1), day(2024, 2, 28)),
		cb(day(2024, 3, 1), day(2024, 3, 31)),
	}
	got := PartitionStatuses(blocks, day(2024, 2, 10))
	want := []string{
		cbModel.ClassBlockStatusCompleted,
		cbModel.ClassBlockStatusCurrent,
		cbModel.ClassBlockStatusUpcoming,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("status[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPartitionStatusesAtMostOneCurrent(t *testing.T) {
	// rentang tumpang tindih (data lama): tetap hanya satu CURRENT
	blocks := []cbModel.ClassBlockModel{
		cb(day(2024, 2, 1), day(2024, 2, 28)),
		cb(day(2024, 2, 15), day(2024, 3, 15)),
	}
	got := PartitionStatuses(blocks, day(2024, 2, 20))

	currents := 0
	for _, st := range got {
		if st == cbModel.ClassBlockStatusCurrent {
			currents++
		}
	}
	if currents != 1 {
		t.Fatalf("CURRENT = %d, want tepat 1 (hasil %v)", currents, got)
	}
	if got[0] != cbModel.ClassBlockStatusCurrent {
		t.Errorf("block paling awal yang harus CURRENT, dapat %v", got)
	}
}

func TestSessionsRequired(t *testing.T) {
	est := 6
	withEstimate := currModel.BlockModel{BlockEstimatedSessions: &est}
	if got := sessionsRequired(withEstimate, nil); got != 6 {
		t.Errorf("estimasi eksplisit = %d, want 6", got)
	}

	templates := []currModel.LessonTemplateModel{
		{LessonTemplatePartCount: 2},
		{LessonTemplatePartCount: 1},
		{LessonTemplatePartCount: 0}, // dinormalkan ke 1
	}
	if got := sessionsRequired(currModel.BlockModel{}, templates); got != 4 {
		t.Errorf("fallback total part = %d, want 4", got)
	}

	if got := sessionsRequired(currModel.BlockModel{}, nil); got != 1 {
		t.Errorf("tanpa estimasi & template = %d, want minimal 1", got)
	}
}
