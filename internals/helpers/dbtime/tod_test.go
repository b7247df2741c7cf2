package dbtime

import "testing"

func TestParse(t *testing.T) {
	got, err := Parse("16:00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.String() != "16:00:00" {
		t.Errorf("String() = %q, want %q", got.String(), "16:00:00")
	}

	got, err = Parse("07:05:30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	h, m, s := got.Clock()
	if h != 7 || m != 5 || s != 30 {
		t.Errorf("Clock() = %d:%d:%d, want 7:5:30", h, m, s)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"", "25:00", "16.00", "banyak"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) harus error", bad)
		}
	}
}

func TestScanString(t *testing.T) {
	var tod Tod
	if err := tod.Scan("09:30:00"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if tod.String() != "09:30:00" {
		t.Errorf("String() = %q", tod.String())
	}
}
