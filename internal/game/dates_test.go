package game

import (
	"testing"
	"time"
)

func TestPuzzleNumber(t *testing.T) {
	tests := []struct {
		name    string
		epoch   string
		date    string
		want    int
		wantErr bool
	}{
		{name: "epoch is puzzle one", epoch: "2026-01-03", date: "2026-01-03", want: 1},
		{name: "next day is puzzle two", epoch: "2026-01-03", date: "2026-01-04", want: 2},
		{name: "across month boundary", epoch: "2026-01-03", date: "2026-02-03", want: 32},
		{name: "bad date", epoch: "2026-01-03", date: "not-a-date", wantErr: true},
		{name: "bad epoch", epoch: "03/01/2026", date: "2026-01-04", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PuzzleNumber(tt.epoch, tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PuzzleNumber() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("PuzzleNumber(%q, %q) = %d, want %d", tt.epoch, tt.date, got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	// Morning of Jan 4 in UTC+10 is still Jan 3 in UTC, and the UTC date rules
	loc := time.FixedZone("UTC+10", 10*3600)
	at := time.Date(2026, 1, 4, 8, 30, 0, 0, loc)

	if got := DateString(at); got != "2026-01-03" {
		t.Errorf("DateString() = %q, want %q", got, "2026-01-03")
	}
}

func TestPreviousDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-01-04", "2026-01-03"},
		{"2026-01-01", "2025-12-31"},
		{"2026-03-01", "2026-02-28"},
	}

	for _, tt := range tests {
		got, err := PreviousDate(tt.date)
		if err != nil {
			t.Fatalf("PreviousDate(%q): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("PreviousDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestNextPuzzleIn(t *testing.T) {
	now := time.Date(2026, 1, 3, 23, 0, 0, 0, time.UTC)
	if got := NextPuzzleIn(now); got != time.Hour {
		t.Errorf("NextPuzzleIn() = %v, want %v", got, time.Hour)
	}

	midnight := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	if got := NextPuzzleIn(midnight); got != 24*time.Hour {
		t.Errorf("NextPuzzleIn(midnight) = %v, want %v", got, 24*time.Hour)
	}
}
