package service

import (
	"testing"
	"time"

	currModel "codercamp_backend/internals/features/curriculum/blocks/model"
	"codercamp_backend/internals/features/progress/journey/model"

	"github.com/google/uuid"
)

func entries(statuses ...string) []JourneyEntry {
	out := make([]JourneyEntry, 0, len(statuses))
	for _, st := range statuses {
		e := JourneyEntry{BlockID: uuid.New(), Status: st}
		if st == model.ProgressStatusCompleted {
			t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			e.CompletedAt = &t
		}
		out = append(out, e)
	}
	return out
}

// terapkan updates ke salinan entries (simulasi persist)
func applyJourney(es []JourneyEntry, updates []JourneyUpdate) []JourneyEntry {
	byID := make(map[uuid.UUID]JourneyUpdate, len(updates))
	for _, u := range updates {
		byID[u.BlockID] = u
	}
	out := make([]JourneyEntry, len(es))
	copy(out, es)
	for i := range out {
		if u, ok := byID[out[i].BlockID]; ok {
			out[i].Status = u.Status
			if u.CompletedAt != nil {
				out[i].CompletedAt = u.CompletedAt
			} else if u.ClearDone {
				out[i].CompletedAt = nil
			}
		}
	}
	return out
}

// invariannya: IN_PROGRESS tepat satu dan jatuh di block belum-selesai
// paling awal; COMPLETED selalu punya completed_at; PENDING tidak punya.
func assertInvariant(t *testing.T, es []JourneyEntry) {
	t.Helper()
	firstNotDone := -1
	inProgressAt := -1
	for i, e := range es {
		switch e.Status {
		case model.ProgressStatusCompleted:
			if e.CompletedAt == nil {
				t.Errorf("entry[%d] COMPLETED tanpa completed_at", i)
			}
		case model.ProgressStatusInProgress:
			if inProgressAt >= 0 {
				t.Errorf("entry[%d] IN_PROGRESS kedua (pertama di %d)", i, inProgressAt)
			}
			inProgressAt = i
			if firstNotDone < 0 {
				firstNotDone = i
			}
		case model.ProgressStatusPending:
			if e.CompletedAt != nil {
				t.Errorf("entry[%d] PENDING tapi punya completed_at", i)
			}
			if firstNotDone < 0 {
				firstNotDone = i
			}
		}
	}
	if firstNotDone >= 0 && inProgressAt != firstNotDone {
		t.Errorf("IN_PROGRESS di %d, want di block belum-selesai paling awal (%d)", inProgressAt, firstNotDone)
	}
}

func TestRecomputeJourneyAdvancesPointer(t *testing.T) {
	es := entries(
		model.ProgressStatusInProgress,
		model.ProgressStatusPending,
		model.ProgressStatusPending,
	)
	done := map[uuid.UUID]bool{es[0].BlockID: true}

	after := applyJourney(es, RecomputeJourney(es, done, time.Now()))
	if after[0].Status != model.ProgressStatusCompleted {
		t.Errorf("entry[0] = %s, want COMPLETED", after[0].Status)
	}
	if after[1].Status != model.ProgressStatusInProgress {
		t.Errorf("entry[1] = %s, want IN_PROGRESS", after[1].Status)
	}
	if after[2].Status != model.ProgressStatusPending {
		t.Errorf("entry[2] = %s, want PENDING", after[2].Status)
	}
	assertInvariant(t, after)
}

func TestRecomputeJourneyNoopWhenConsistent(t *testing.T) {
	es := entries(
		model.ProgressStatusCompleted,
		model.ProgressStatusInProgress,
		model.ProgressStatusPending,
	)
	done := map[uuid.UUID]bool{es[0].BlockID: true}

	updates := RecomputeJourney(es, done, time.Now())
	if len(updates) != 0 {
		t.Fatalf("journey konsisten harus no-op, dapat %d updates", len(updates))
	}
}

func TestRecomputeJourneyBypassRemovesCompletion(t *testing.T) {
	es := entries(
		model.ProgressStatusCompleted,
		model.ProgressStatusCompleted,
		model.ProgressStatusInProgress,
	)
	// bypass: hanya block ke-2 yang dianggap selesai
	done := map[uuid.UUID]bool{es[1].BlockID: true}

	after := applyJourney(es, RecomputeJourney(es, done, time.Now()))
	if after[0].Status != model.ProgressStatusInProgress {
		t.Errorf("entry[0] = %s, want IN_PROGRESS (completion dicabut)", after[0].Status)
	}
	if after[0].CompletedAt != nil {
		t.Errorf("entry[0] completed_at harus NULL setelah dicabut")
	}
	if after[1].Status != model.ProgressStatusCompleted {
		t.Errorf("entry[1] = %s, want COMPLETED", after[1].Status)
	}
	if after[2].Status != model.ProgressStatusPending {
		t.Errorf("entry[2] = %s, want PENDING", after[2].Status)
	}
}

func TestRecomputeJourneyAllCompleted(t *testing.T) {
	es := entries(
		model.ProgressStatusInProgress,
		model.ProgressStatusPending,
	)
	done := map[uuid.UUID]bool{es[0].BlockID: true, es[1].BlockID: true}

	after := applyJourney(es, RecomputeJourney(es, done, time.Now()))
	for i, e := range after {
		if e.Status != model.ProgressStatusCompleted {
			t.Errorf("entry[%d] = %s, want COMPLETED", i, e.Status)
		}
	}
}

func TestRecomputeJourneyPreservesExistingCompletedAt(t *testing.T) {
	es := entries(model.ProgressStatusCompleted, model.ProgressStatusInProgress)
	original := *es[0].CompletedAt
	done := map[uuid.UUID]bool{es[0].BlockID: true, es[1].BlockID: true}

	after := applyJourney(es, RecomputeJourney(es, done, time.Now()))
	if !after[0].CompletedAt.Equal(original) {
		t.Errorf("completed_at lama tertimpa: %v, want %v", after[0].CompletedAt, original)
	}
}

func TestRotateToEntryKeepsPointerOnEntryBlock(t *testing.T) {
	blocks := []currModel.BlockModel{
		{BlockID: uuid.New(), BlockName: "B1"},
		{BlockID: uuid.New(), BlockName: "B2"},
		{BlockID: uuid.New(), BlockName: "B3"},
	}

	// coder masuk tengah jalan di B2: journey dirotasi ke [B2, B3, B1]
	rotated, err := rotateToEntry(blocks, blocks[1].BlockID)
	if err != nil {
		t.Fatalf("rotateToEntry: %v", err)
	}
	wantOrder := []uuid.UUID{blocks[1].BlockID, blocks[2].BlockID, blocks[0].BlockID}
	for i, b := range rotated {
		if b.BlockID != wantOrder[i] {
			t.Fatalf("rotated[%d] = %s, want %s", i, b.BlockID, wantOrder[i])
		}
	}

	// entries urut journey (bukan urut block template): recompute tanpa
	// completion baru tidak boleh memindahkan pointer kembali ke B1
	es := []JourneyEntry{
		{BlockID: rotated[0].BlockID, Status: model.ProgressStatusInProgress},
		{BlockID: rotated[1].BlockID, Status: model.ProgressStatusPending},
		{BlockID: rotated[2].BlockID, Status: model.ProgressStatusPending},
	}
	updates := RecomputeJourney(es, map[uuid.UUID]bool{}, time.Now())
	if len(updates) != 0 {
		t.Fatalf("pointer harus tetap di entry block, dapat %d updates", len(updates))
	}

	if _, err := rotateToEntry(blocks, uuid.New()); err == nil {
		t.Error("entry block di luar level harus error")
	}
}

func TestRecomputeJourneyIdempotent(t *testing.T) {
	es := entries(
		model.ProgressStatusPending,
		model.ProgressStatusPending,
		model.ProgressStatusPending,
	)
	done := map[uuid.UUID]bool{es[1].BlockID: true}

	after := applyJourney(es, RecomputeJourney(es, done, time.Now()))
	assertInvariant(t, after)
	second := RecomputeJourney(after, done, time.Now())
	if len(second) != 0 {
		t.Fatalf("recompute kedua harus no-op, dapat %d updates", len(second))
	}
}
