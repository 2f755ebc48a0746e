package game

import (
	"testing"

	"wikiguess/internal/models"
)

func TestRecordOutcomeWin(t *testing.T) {
	record := &models.StatsRecord{}

	if !RecordOutcome(record, true, "2026-01-03") {
		t.Fatal("expected first outcome to be recorded")
	}

	if record.GamesPlayed != 1 || record.GamesWon != 1 {
		t.Errorf("expected 1 played / 1 won, got %d / %d", record.GamesPlayed, record.GamesWon)
	}
	if record.CurrentStreak != 1 || record.BestStreak != 1 {
		t.Errorf("expected streak 1/1, got %d/%d", record.CurrentStreak, record.BestStreak)
	}
	if record.LastPlayedDate != "2026-01-03" || record.LastWonDate != "2026-01-03" {
		t.Errorf("dates not updated: %+v", record)
	}
}

func TestRecordOutcomeIdempotentPerDate(t *testing.T) {
	record := &models.StatsRecord{}

	RecordOutcome(record, true, "2026-01-03")
	if RecordOutcome(record, false, "2026-01-03") {
		t.Error("second outcome on same date should be a no-op")
	}

	if record.GamesPlayed != 1 {
		t.Errorf("GamesPlayed should stay 1, got %d", record.GamesPlayed)
	}
	if record.CurrentStreak != 1 {
		t.Errorf("streak should survive the no-op, got %d", record.CurrentStreak)
	}
	if record.LastPlayedDate != "2026-01-03" {
		t.Errorf("LastPlayedDate changed by no-op: %q", record.LastPlayedDate)
	}
}

func TestRecordOutcomeStreaks(t *testing.T) {
	record := &models.StatsRecord{}

	// Win two consecutive days
	RecordOutcome(record, true, "2026-01-03")
	RecordOutcome(record, true, "2026-01-04")
	if record.CurrentStreak != 2 || record.BestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", record.CurrentStreak, record.BestStreak)
	}

	// Losing breaks the streak but keeps the best
	RecordOutcome(record, false, "2026-01-05")
	if record.CurrentStreak != 0 {
		t.Errorf("loss should reset streak, got %d", record.CurrentStreak)
	}
	if record.BestStreak != 2 {
		t.Errorf("best streak should survive a loss, got %d", record.BestStreak)
	}

	// Winning after a gap restarts at 1
	RecordOutcome(record, true, "2026-01-08")
	if record.CurrentStreak != 1 {
		t.Errorf("win after gap should restart streak at 1, got %d", record.CurrentStreak)
	}
	if record.GamesPlayed != 4 || record.GamesWon != 3 {
		t.Errorf("expected 4 played / 3 won, got %d / %d", record.GamesPlayed, record.GamesWon)
	}
}
