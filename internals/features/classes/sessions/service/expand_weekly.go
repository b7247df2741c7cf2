// file: internals/features/classes/sessions/service/expand_weekly.go
package service

import (
	"fmt"
	"sort"
	"time"

	"codercamp_backend/internals/helpers/dbtime"
)

// batas aman ekspansi; di atas ini hampir pasti input salah
const maxScheduleDays = 366

var weekdayByCode = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

// ParseWeekdaySet menerima kode hari dua huruf (SU..SA), case-insensitive,
// duplikat diabaikan. Set kosong atau kode tak dikenal = error.
func ParseWeekdaySet(codes []string) (map[time.Weekday]bool, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("daftar hari kosong")
	}
	set := make(map[time.Weekday]bool, len(codes))
	for _, c := range codes {
		wd, ok := weekdayByCode[normalizeDayCode(c)]
		if !ok {
			return nil, fmt.Errorf("kode hari tidak dikenal: %q", c)
		}
		set[wd] = true
	}
	return set, nil
}

func normalizeDayCode(c string) string {
	b := []byte(c)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// ExpandWeekly mengubah aturan mingguan menjadi daftar waktu mulai sesi,
// inklusif di kedua ujung rentang, urut naik, tanpa duplikat.
// Rentang terbalik (start > end) = error, bukan hasil kosong.
func ExpandWeekly(startDate, endDate time.Time, dayCodes []string, tod dbtime.Tod, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)
	if start.After(end) {
		return nil, fmt.Errorf("tanggal mulai %s setelah tanggal akhir %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if int(end.Sub(start).Hours()/24) > maxScheduleDays {
		return nil, fmt.Errorf("rentang melebihi %d hari", maxScheduleDays)
	}

	days, err := ParseWeekdaySet(dayCodes)
	if err != nil {
		return nil, err
	}

	hh, mm, ss := tod.Clock()
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if days[d.Weekday()] {
			out = append(out, time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, 0, loc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

// ExpandWeeklyCount mengambil n occurrence pertama mulai dari startDate
// (dipakai penyusun timeline block untuk memproyeksikan jumlah sesi ke
// tanggal nyata).
func ExpandWeeklyCount(startDate time.Time, dayCodes []string, n int, loc *time.Location) ([]time.Time, error) {
	if n <= 0 {
		return nil, fmt.Errorf("jumlah occurrence harus > 0")
	}
	if loc == nil {
		loc = time.Local
	}
	days, err := ParseWeekdaySet(dayCodes)
	if err != nil {
		return nil, err
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)

	out := make([]time.Time, 0, n)
	for d, guard := start, 0; len(out) < n; d, guard = d.AddDate(0, 0, 1), guard+1 {
		if guard > maxScheduleDays*4 {
			return nil, fmt.Errorf("occurrence ke-%d tidak tercapai dalam batas wajar", n)
		}
		if days[d.Weekday()] {
			out = append(out, d)
		}
	}
	return out, nil
}
