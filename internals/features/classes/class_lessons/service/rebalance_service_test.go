package service

import (
	"testing"
	"time"

	sessModel "codercamp_backend/internals/features/classes/sessions/model"

	"github.com/google/uuid"
)

func sessAt(day int) sessModel.SessionModel {
	return sessModel.SessionModel{
		SessionID:       uuid.New(),
		SessionStartsAt: time.Date(2024, 1, day, 16, 0, 0, 0, time.UTC),
		SessionStatus:   sessModel.SessionStatusScheduled,
	}
}

func TestSortCurriculumOrder(t *testing.T) {
	a := LessonOrderRow{ClassLessonID: uuid.New(), BlockOrderIndex: 2, LessonOrderIndex: 1}
	b := LessonOrderRow{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 9}
	c := LessonOrderRow{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 3}

	rows := []LessonOrderRow{a, b, c}
	SortCurriculumOrder(rows)

	// block order menang atas lesson order
	if rows[0].ClassLessonID != c.ClassLessonID || rows[1].ClassLessonID != b.ClassLessonID || rows[2].ClassLessonID != a.ClassLessonID {
		t.Fatalf("urutan salah: %v", rows)
	}
}

func TestSortCurriculumOrderTieBreakByID(t *testing.T) {
	id1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	id2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	rows := []LessonOrderRow{
		{ClassLessonID: id2, BlockOrderIndex: 1, LessonOrderIndex: 1},
		{ClassLessonID: id1, BlockOrderIndex: 1, LessonOrderIndex: 1},
	}
	SortCurriculumOrder(rows)
	if rows[0].ClassLessonID != id1 {
		t.Fatalf("tie-break id gagal: %v", rows)
	}
}

func TestBuildAssignmentsKthLessonKthSession(t *testing.T) {
	rows := []LessonOrderRow{
		{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 1},
		{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 2},
		{ClassLessonID: uuid.New(), BlockOrderIndex: 2, LessonOrderIndex: 1},
	}
	sessions := []sessModel.SessionModel{sessAt(1), sessAt(3), sessAt(8)}

	got := BuildAssignments(rows, sessions)
	if len(got) != 3 {
		t.Fatalf("assignments = %d, want 3", len(got))
	}
	for i, a := range got {
		if !a.Slot.Assigned {
			t.Fatalf("assignments[%d] unassigned, want assigned", i)
		}
		if a.Slot.SessionID != sessions[i].SessionID {
			t.Errorf("assignments[%d] sesi salah", i)
		}
		if !a.Slot.UnlockAt.Equal(sessions[i].SessionStartsAt) {
			t.Errorf("assignments[%d] unlock_at = %v, want %v", i, a.Slot.UnlockAt, sessions[i].SessionStartsAt)
		}
	}
}

func TestBuildAssignmentsOverflowUnassigned(t *testing.T) {
	rows := []LessonOrderRow{
		{ClassLessonID: uuid.New()},
		{ClassLessonID: uuid.New()},
		{ClassLessonID: uuid.New()},
	}
	sessions := []sessModel.SessionModel{sessAt(1)}

	got := BuildAssignments(rows, sessions)
	if !got[0].Slot.Assigned {
		t.Fatal("lesson pertama harus kebagian sesi")
	}
	for i := 1; i < len(got); i++ {
		if got[i].Slot.Assigned {
			t.Errorf("lesson overflow[%d] harus unassigned", i)
		}
	}
}

func TestBuildAssignmentsCancelledSessionShiftsMapping(t *testing.T) {
	rows := []LessonOrderRow{
		{ClassLessonID: uuid.New(), LessonOrderIndex: 1},
		{ClassLessonID: uuid.New(), LessonOrderIndex: 2},
	}
	s1, s2, s3 := sessAt(1), sessAt(3), sessAt(8)

	before := BuildAssignments(rows, []sessModel.SessionModel{s1, s2, s3})
	// sesi ke-2 dibatalkan → caller tidak memuatnya; lesson ke-2 bergeser ke sesi ke-3
	after := BuildAssignments(rows, []sessModel.SessionModel{s1, s3})

	if before[1].Slot.SessionID != s2.SessionID {
		t.Fatalf("baseline salah")
	}
	if after[1].Slot.SessionID != s3.SessionID {
		t.Errorf("setelah pembatalan, lesson ke-2 harus ke sesi ke-3")
	}
	if after[0].Slot.SessionID != s1.SessionID {
		t.Errorf("lesson ke-1 tidak boleh bergeser")
	}
}

func TestBuildAssignmentsDeterministic(t *testing.T) {
	rows := []LessonOrderRow{
		{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 2},
		{ClassLessonID: uuid.New(), BlockOrderIndex: 1, LessonOrderIndex: 1},
	}
	sessions := []sessModel.SessionModel{sessAt(1), sessAt(3)}

	SortCurriculumOrder(rows)
	a := BuildAssignments(rows, sessions)
	b := BuildAssignments(rows, sessions)
	for i := range a {
		if a[i].ClassLessonID != b[i].ClassLessonID || a[i].Slot.SessionID != b[i].Slot.SessionID {
			t.Fatalf("hasil tidak deterministik di index %d", i)
		}
	}
}
