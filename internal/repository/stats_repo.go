package repository

import (
	"database/sql"
	"errors"

	"wikiguess/internal/database"
	"wikiguess/internal/models"
)

// StatsRepository handles aggregate play-history rows
type StatsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get loads the stats record for a player, returning a zeroed record when
// the player has never finished a live game
func (r *StatsRepository) Get(playerID string) (*models.StatsRecord, error) {
	query := `
		SELECT games_played, games_won, current_streak, best_streak,
		       last_played_date, last_won_date
		FROM player_stats
		WHERE player_id = ?
	`

	record := &models.StatsRecord{PlayerID: playerID}
	err := r.db.QueryRow(query, playerID).Scan(
		&record.GamesPlayed,
		&record.GamesWon,
		&record.CurrentStreak,
		&record.BestStreak,
		&record.LastPlayedDate,
		&record.LastWonDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return record, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Save writes the full stats record, inserting the row on first write
func (r *StatsRepository) Save(record *models.StatsRecord) error {
	updateQuery := `
		UPDATE player_stats
		SET games_played = ?, games_won = ?, current_streak = ?, best_streak = ?,
		    last_played_date = ?, last_won_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE player_id = ?
	`
	result, err := r.db.Exec(updateQuery,
		record.GamesPlayed, record.GamesWon, record.CurrentStreak, record.BestStreak,
		record.LastPlayedDate, record.LastWonDate, record.PlayerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO player_stats (player_id, games_played, games_won, current_streak,
		                          best_streak, last_played_date, last_won_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(insertQuery,
		record.PlayerID, record.GamesPlayed, record.GamesWon, record.CurrentStreak,
		record.BestStreak, record.LastPlayedDate, record.LastWonDate)
	return err
}
