package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"wikiguess/internal/database"
	"wikiguess/internal/models"
)

// SessionRepository stores puzzle sessions as JSON blobs keyed by
// (player, puzzle date, mode)
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get loads a stored session. Returns (nil, nil) when no session exists.
// A blob that fails to decode is treated the same as no session at all, so
// a damaged row can never wedge a player's game.
func (r *SessionRepository) Get(playerID, date string, archive bool) (*models.PuzzleSession, error) {
	query := `
		SELECT state_json
		FROM puzzle_sessions
		WHERE player_id = ? AND puzzle_date = ? AND archive = ?
	`

	var stateJSON string
	err := r.db.QueryRow(query, playerID, date, boolToInt(archive)).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	session := &models.PuzzleSession{}
	if err := json.Unmarshal([]byte(stateJSON), session); err != nil {
		log.Printf("Discarding corrupt session blob for player=%s date=%s: %v", playerID, date, err)
		return nil, nil
	}
	return session, nil
}

// Save writes the full session blob, inserting the row on first write
func (r *SessionRepository) Save(playerID, date string, archive bool, session *models.PuzzleSession) error {
	stateJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	updateQuery := `
		UPDATE puzzle_sessions
		SET state_json = ?, updated_at = CURRENT_TIMESTAMP
		WHERE player_id = ? AND puzzle_date = ? AND archive = ?
	`
	result, err := r.db.Exec(updateQuery, string(stateJSON), playerID, date, boolToInt(archive))
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
		INSERT INTO puzzle_sessions (player_id, puzzle_date, archive, state_json)
		VALUES (?, ?, ?, ?)
	`
	_, err = r.db.Exec(insertQuery, playerID, date, boolToInt(archive), string(stateJSON))
	return err
}

// Delete removes a stored session, returning the player to a fresh game on
// their next visit
func (r *SessionRepository) Delete(playerID, date string, archive bool) error {
	query := `DELETE FROM puzzle_sessions WHERE player_id = ? AND puzzle_date = ? AND archive = ?`
	_, err := r.db.Exec(query, playerID, date, boolToInt(archive))
	return err
}

// boolToInt keeps boolean bind parameters portable across dialects
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
