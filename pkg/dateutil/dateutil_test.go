package dateutil

import (
	"strings"
	"testing"

	"github.com/repopulse/repopulse/pkg/errors"
)

func TestNormalizeStartBareDate(t *testing.T) {
	got, err := NormalizeStart("2020-01-01")
	if err != nil {
		t.Fatalf("NormalizeStart error: %v", err)
	}
	if got != "2020-01-01T00:00:00Z" {
		t.Errorf("NormalizeStart = %q, want %q", got, "2020-01-01T00:00:00Z")
	}
}

func TestNormalizeEndBareDate(t *testing.T) {
	got, err := NormalizeEnd("2020-01-02")
	if err != nil {
		t.Fatalf("NormalizeEnd error: %v", err)
	}
	if got != "2020-01-02T23:59:59Z" {
		t.Errorf("NormalizeEnd = %q, want %q", got, "2020-01-02T23:59:59Z")
	}
}

func TestNormalizePassthroughDatetime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-06-15T08:30:00Z", "2021-06-15T08:30:00Z"},
		{"2021-06-15T08:30:00", "2021-06-15T08:30:00Z"},
		{"2021-06-15T08:30", "2021-06-15T08:30:00Z"},
		// Offset datetimes are converted to UTC
		{"2021-06-15T08:30:00+02:00", "2021-06-15T06:30:00Z"},
	}
	for _, tt := range tests {
		gotStart, err := NormalizeStart(tt.in)
		if err != nil {
			t.Fatalf("NormalizeStart(%q) error: %v", tt.in, err)
		}
		if gotStart != tt.want {
			t.Errorf("NormalizeStart(%q) = %q, want %q", tt.in, gotStart, tt.want)
		}

		gotEnd, err := NormalizeEnd(tt.in)
		if err != nil {
			t.Fatalf("NormalizeEnd(%q) error: %v", tt.in, err)
		}
		if gotEnd != tt.want {
			t.Errorf("NormalizeEnd(%q) = %q, want %q", tt.in, gotEnd, tt.want)
		}
	}
}

func TestNormalizeInvalid(t *testing.T) {
	invalid := []string{"", "not-a-date", "2020-13-01", "2020-01-32", "01/02/2020", "2020-01-01T99:00:00"}
	for _, in := range invalid {
		if _, err := NormalizeStart(in); err == nil {
			t.Errorf("NormalizeStart(%q) = nil, want error", in)
		}
		_, err := NormalizeEnd(in)
		if err == nil {
			t.Errorf("NormalizeEnd(%q) = nil, want error", in)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidDate) {
			t.Errorf("NormalizeEnd(%q) code = %v, want INVALID_DATE", in, errors.GetCode(err))
		}
	}
}

func TestIsDate(t *testing.T) {
	if !IsDate("2020-01-01") {
		t.Error("IsDate should accept 2020-01-01")
	}
	if IsDate("2020-01-01T00:00:00Z") {
		t.Error("IsDate should reject datetimes")
	}
	if IsDate("2020-02-30") {
		t.Error("IsDate should reject impossible dates")
	}
}

func TestIsDateTime(t *testing.T) {
	if !IsDateTime("2020-01-01T12:00:00Z") {
		t.Error("IsDateTime should accept RFC3339")
	}
	if !IsDateTime("2020-01-01T12:00:00") {
		t.Error("IsDateTime should accept naive datetimes")
	}
	if IsDateTime("2020-01-01") {
		t.Error("IsDateTime should reject bare dates")
	}
}

func TestEpoch(t *testing.T) {
	if Epoch != "1970-01-01T00:00:00Z" {
		t.Errorf("Epoch = %q, want 1970-01-01T00:00:00Z", Epoch)
	}
}

func TestNowLayout(t *testing.T) {
	now := Now()
	if len(now) != len(Layout) || !strings.HasSuffix(now, "Z") {
		t.Errorf("Now() = %q, want fixed-width layout ending in Z", now)
	}
}

func TestLexicographicOrdering(t *testing.T) {
	// The fixed-width layout makes string comparison a valid time comparison.
	start, _ := NormalizeStart("2020-01-01")
	end, _ := NormalizeEnd("2020-01-01")
	if !(start <= end) {
		t.Errorf("start %q should be <= end %q", start, end)
	}

	later, _ := NormalizeStart("2020-01-02")
	if !(end < later) {
		t.Errorf("end of day %q should sort before next day %q", end, later)
	}
}
