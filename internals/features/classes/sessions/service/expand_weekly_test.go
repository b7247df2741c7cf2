package service

import (
	"testing"
	"time"

	"codercamp_backend/internals/helpers/dbtime"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

func TestExpandWeeklyTwoWeeksMondayWednesday(t *testing.T) {
	// 1-14 Januari 2024, Senin+Rabu jam 16:00 → 1, 3, 8, 10 Januari
	got, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 14), []string{"MO", "WE"}, mustTod(t, "16:00"), time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeekly: %v", err)
	}
	want := []time.Time{
		time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 16, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("jumlah sesi = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("sesi[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandWeeklyInclusiveBounds(t *testing.T) {
	// start dan end dua-duanya Senin → keduanya masuk
	got, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 8), []string{"MO"}, mustTod(t, "09:30"), time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeekly: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("jumlah sesi = %d, want 2", len(got))
	}
	if got[0].Day() != 1 || got[1].Day() != 8 {
		t.Errorf("tanggal = %d,%d, want 1,8", got[0].Day(), got[1].Day())
	}
}

func TestExpandWeeklyStrictAscending(t *testing.T) {
	got, err := ExpandWeekly(date(2024, 3, 1), date(2024, 4, 30), []string{"SA", "MO", "WE"}, mustTod(t, "10:00"), time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeekly: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Before(got[i]) {
			t.Fatalf("urutan tidak strictly ascending di index %d: %v >= %v", i, got[i-1], got[i])
		}
	}
}

func TestExpandWeeklyReversedRange(t *testing.T) {
	_, err := ExpandWeekly(date(2024, 1, 14), date(2024, 1, 1), []string{"MO"}, mustTod(t, "16:00"), time.UTC)
	if err == nil {
		t.Fatal("rentang terbalik harus error, bukan hasil kosong")
	}
}

func TestExpandWeeklyUnknownDayCode(t *testing.T) {
	_, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 14), []string{"MO", "XX"}, mustTod(t, "16:00"), time.UTC)
	if err == nil {
		t.Fatal("kode hari tidak dikenal harus error")
	}
}

func TestExpandWeeklyEmptyDays(t *testing.T) {
	_, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 14), nil, mustTod(t, "16:00"), time.UTC)
	if err == nil {
		t.Fatal("daftar hari kosong harus error")
	}
}

func TestExpandWeeklyDuplicateCodesIgnored(t *testing.T) {
	a, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 14), []string{"MO", "mo", "MO"}, mustTod(t, "16:00"), time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeekly: %v", err)
	}
	b, err := ExpandWeekly(date(2024, 1, 1), date(2024, 1, 14), []string{"MO"}, mustTod(t, "16:00"), time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeekly: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("duplikat kode mengubah hasil: %d vs %d", len(a), len(b))
	}
}

func TestParseWeekdaySet(t *testing.T) {
	set, err := ParseWeekdaySet([]string{"su", "Sa"})
	if err != nil {
		t.Fatalf("ParseWeekdaySet: %v", err)
	}
	if !set[time.Sunday] || !set[time.Saturday] {
		t.Errorf("set = %v, want Sunday+Saturday", set)
	}
}

func TestExpandWeeklyCount(t *testing.T) {
	// 5 occurrence Senin+Rabu mulai Senin 1 Jan 2024
	got, err := ExpandWeeklyCount(date(2024, 1, 1), []string{"MO", "WE"}, 5, time.UTC)
	if err != nil {
		t.Fatalf("ExpandWeeklyCount: %v", err)
	}
	wantDays := []int{1, 3, 8, 10, 15}
	if len(got) != len(wantDays) {
		t.Fatalf("jumlah occurrence = %d, want %d", len(got), len(wantDays))
	}
	for i, d := range wantDays {
		if got[i].Day() != d {
			t.Errorf("occurrence[%d] tanggal %d, want %d", i, got[i].Day(), d)
		}
	}
}

func TestExpandWeeklyCountInvalidN(t *testing.T) {
	if _, err := ExpandWeeklyCount(date(2024, 1, 1), []string{"MO"}, 0, time.UTC); err == nil {
		t.Fatal("n=0 harus error")
	}
}
