package service

import (
	"testing"

	clModel "codercamp_backend/internals/features/classes/class_lessons/model"
	currModel "codercamp_backend/internals/features/curriculum/blocks/model"

	"github.com/google/uuid"
)

func tpl(title string, orderIdx, parts int) currModel.LessonTemplateModel {
	return currModel.LessonTemplateModel{
		LessonTemplateID:         uuid.New(),
		LessonTemplateTitle:      title,
		LessonTemplateOrderIndex: orderIdx,
		LessonTemplatePartCount:  parts,
	}
}

// applyPlan mensimulasikan hasil persist: creates dapat id baru,
// deletes hilang, renames diganti judul/part/order index-nya.
func applyPlan(existing []clModel.ClassLessonModel, plan SyncPlan) []clModel.ClassLessonModel {
	deleted := make(map[uuid.UUID]bool, len(plan.Deletes))
	for _, id := range plan.Deletes {
		deleted[id] = true
	}
	renamed := make(map[uuid.UUID]RenameOp, len(plan.Renames))
	for _, r := range plan.Renames {
		renamed[r.ClassLessonID] = r
	}

	var out []clModel.ClassLessonModel
	for _, cl := range existing {
		if deleted[cl.ClassLessonID] {
			continue
		}
		if r, ok := renamed[cl.ClassLessonID]; ok {
			cl.ClassLessonTitle = r.NewTitle
			cl.ClassLessonPartNumber = r.NewPart
			cl.ClassLessonOrderIndex = r.NewOrderIndex
		}
		out = append(out, cl)
	}
	for _, cr := range plan.Creates {
		cr.ClassLessonID = uuid.New()
		out = append(out, cr)
	}
	return out
}

func TestBuildSyncPlanCreatesParts(t *testing.T) {
	blockID := uuid.New()
	templates := []currModel.LessonTemplateModel{tpl("Loops", 2, 3)}

	plan := BuildSyncPlan(blockID, templates, nil)
	if len(plan.Creates) != 3 || len(plan.Deletes) != 0 || len(plan.Renames) != 0 {
		t.Fatalf("plan = %d creates, %d deletes, %d renames; want 3/0/0",
			len(plan.Creates), len(plan.Deletes), len(plan.Renames))
	}
	wantTitles := []string{"Loops (Part 1)", "Loops (Part 2)", "Loops (Part 3)"}
	for i, cr := range plan.Creates {
		if cr.ClassLessonTitle != wantTitles[i] {
			t.Errorf("creates[%d].title = %q, want %q", i, cr.ClassLessonTitle, wantTitles[i])
		}
		if cr.ClassLessonPartNumber != i+1 {
			t.Errorf("creates[%d].part = %d, want %d", i, cr.ClassLessonPartNumber, i+1)
		}
		wantOrder := 2*orderIndexStride + i + 1
		if cr.ClassLessonOrderIndex != wantOrder {
			t.Errorf("creates[%d].order = %d, want %d", i, cr.ClassLessonOrderIndex, wantOrder)
		}
	}
}

func TestBuildSyncPlanSinglePartNoSuffix(t *testing.T) {
	blockID := uuid.New()
	plan := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{tpl("Intro", 0, 1)}, nil)
	if len(plan.Creates) != 1 {
		t.Fatalf("creates = %d, want 1", len(plan.Creates))
	}
	if plan.Creates[0].ClassLessonTitle != "Intro" {
		t.Errorf("title = %q, want %q tanpa suffix", plan.Creates[0].ClassLessonTitle, "Intro")
	}
}

func TestBuildSyncPlanIdempotent(t *testing.T) {
	blockID := uuid.New()
	templates := []currModel.LessonTemplateModel{tpl("Loops", 1, 3), tpl("Funcs", 2, 1)}

	state := applyPlan(nil, BuildSyncPlan(blockID, templates, nil))
	again := BuildSyncPlan(blockID, templates, state)
	if !again.Empty() {
		t.Fatalf("sync kedua harus no-op, dapat %d creates, %d deletes, %d renames",
			len(again.Creates), len(again.Deletes), len(again.Renames))
	}
}

func TestBuildSyncPlanFollowsTemplateReorder(t *testing.T) {
	blockID := uuid.New()
	template := tpl("Loops", 1, 2)

	state := applyPlan(nil, BuildSyncPlan(blockID, []currModel.LessonTemplateModel{template}, nil))

	// admin menggeser template ke urutan 5: instance lama harus ikut,
	// kalau tidak rebalance masih sort pakai order index basi
	moved := template
	moved.LessonTemplateOrderIndex = 5
	plan := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{moved}, state)
	if len(plan.Renames) != 2 || len(plan.Creates) != 0 || len(plan.Deletes) != 0 {
		t.Fatalf("plan = %d creates, %d deletes, %d renames; want 0/0/2",
			len(plan.Creates), len(plan.Deletes), len(plan.Renames))
	}
	state = applyPlan(state, plan)
	for _, cl := range state {
		wantOrder := 5*orderIndexStride + cl.ClassLessonPartNumber
		if cl.ClassLessonOrderIndex != wantOrder {
			t.Errorf("order index %q = %d, want %d", cl.ClassLessonTitle, cl.ClassLessonOrderIndex, wantOrder)
		}
	}

	// setelah ikut, sync berikutnya no-op lagi
	again := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{moved}, state)
	if !again.Empty() {
		t.Fatalf("sync setelah reorder harus no-op, dapat %d renames", len(again.Renames))
	}
}

func TestBuildSyncPlanGrowThenShrinkRoundTrip(t *testing.T) {
	blockID := uuid.New()
	base := tpl("Recursion", 3, 1)

	// part count 1 → satu instance judul polos
	state := applyPlan(nil, BuildSyncPlan(blockID, []currModel.LessonTemplateModel{base}, nil))
	if len(state) != 1 || state[0].ClassLessonTitle != "Recursion" {
		t.Fatalf("state awal = %+v, want satu 'Recursion'", state)
	}

	// naik ke 3: instance lama jadi (Part 1), dua part baru menyusul
	grown := base
	grown.LessonTemplatePartCount = 3
	plan := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{grown}, state)
	if len(plan.Creates) != 2 {
		t.Fatalf("creates = %d, want 2", len(plan.Creates))
	}
	if len(plan.Renames) != 1 || plan.Renames[0].NewTitle != "Recursion (Part 1)" {
		t.Fatalf("renames = %+v, want rename ke '(Part 1)'", plan.Renames)
	}
	state = applyPlan(state, plan)
	if len(state) != 3 {
		t.Fatalf("state setelah naik = %d lesson, want 3", len(state))
	}

	// turun lagi ke 1: ekor dihapus, survivor balik ke judul polos
	plan = BuildSyncPlan(blockID, []currModel.LessonTemplateModel{base}, state)
	if len(plan.Deletes) != 2 {
		t.Fatalf("deletes = %d, want 2", len(plan.Deletes))
	}
	state = applyPlan(state, plan)
	if len(state) != 1 {
		t.Fatalf("state akhir = %d lesson, want 1", len(state))
	}
	if state[0].ClassLessonTitle != "Recursion" {
		t.Errorf("judul akhir = %q, want %q (suffix dibuang)", state[0].ClassLessonTitle, "Recursion")
	}
}

func TestBuildSyncPlanNeverDoubleSuffix(t *testing.T) {
	blockID := uuid.New()
	grown := tpl("Maps", 0, 2)

	state := applyPlan(nil, BuildSyncPlan(blockID, []currModel.LessonTemplateModel{grown}, nil))
	for i := 0; i < 3; i++ {
		plan := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{grown}, state)
		state = applyPlan(state, plan)
	}
	for _, cl := range state {
		if cl.ClassLessonTitle != "Maps (Part 1)" && cl.ClassLessonTitle != "Maps (Part 2)" {
			t.Errorf("judul tersuffix ganda atau salah: %q", cl.ClassLessonTitle)
		}
	}
}

func TestBuildSyncPlanDeletesOrphans(t *testing.T) {
	blockID := uuid.New()
	orphan := clModel.ClassLessonModel{
		ClassLessonID:           uuid.New(),
		ClassLessonClassBlockID: blockID,
		ClassLessonTemplateID:   uuid.New(), // template sudah dihapus
		ClassLessonTitle:        "Materi Lama",
	}

	plan := BuildSyncPlan(blockID, nil, []clModel.ClassLessonModel{orphan})
	if len(plan.Deletes) != 1 || plan.Deletes[0] != orphan.ClassLessonID {
		t.Fatalf("orphan harus dihapus, plan.Deletes = %v", plan.Deletes)
	}
}

func TestBuildSyncPlanDeletesFromTailDeterministically(t *testing.T) {
	blockID := uuid.New()
	template := tpl("Sorting", 0, 3)

	state := applyPlan(nil, BuildSyncPlan(blockID, []currModel.LessonTemplateModel{template}, nil))

	shrunk := template
	shrunk.LessonTemplatePartCount = 1
	p1 := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{shrunk}, state)
	p2 := BuildSyncPlan(blockID, []currModel.LessonTemplateModel{shrunk}, state)
	if len(p1.Deletes) != 2 || len(p2.Deletes) != 2 {
		t.Fatalf("deletes = %d/%d, want 2/2", len(p1.Deletes), len(p2.Deletes))
	}
	for i := range p1.Deletes {
		if p1.Deletes[i] != p2.Deletes[i] {
			t.Fatalf("pemilihan ekor tidak deterministik: %v vs %v", p1.Deletes, p2.Deletes)
		}
	}
	// yang bertahan harus part 1
	keep := make(map[uuid.UUID]bool)
	for _, d := range p1.Deletes {
		keep[d] = true
	}
	for _, cl := range state {
		if !keep[cl.ClassLessonID] && cl.ClassLessonPartNumber != 1 {
			t.Errorf("survivor part %d, want part 1", cl.ClassLessonPartNumber)
		}
	}
}

func TestPartTitle(t *testing.T) {
	if got := PartTitle("Intro", 1, 1); got != "Intro" {
		t.Errorf("PartTitle target 1 = %q, want tanpa suffix", got)
	}
	if got := PartTitle("Intro", 2, 3); got != "Intro (Part 2)" {
		t.Errorf("PartTitle = %q, want 'Intro (Part 2)'", got)
	}
}
