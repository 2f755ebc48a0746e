package game

import "wikiguess/internal/models"

// RecordOutcome folds one finished live game into a player's aggregate
// record. It is idempotent per calendar date: if the record already shows
// play on `today` the call does nothing, which guards against the same
// game-over being reported twice. Returns true when the record changed.
//
// Archive-mode play must never reach this function.
func RecordOutcome(record *models.StatsRecord, won bool, today string) bool {
	if record.LastPlayedDate == today {
		return false
	}

	record.GamesPlayed++

	if won {
		record.GamesWon++

		yesterday, err := PreviousDate(today)
		if err == nil && record.LastWonDate == yesterday {
			record.CurrentStreak++
		} else {
			record.CurrentStreak = 1
		}
		if record.CurrentStreak > record.BestStreak {
			record.BestStreak = record.CurrentStreak
		}
		record.LastWonDate = today
	} else {
		record.CurrentStreak = 0
	}

	record.LastPlayedDate = today
	return true
}
