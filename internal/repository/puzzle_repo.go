package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"wikiguess/internal/database"
	"wikiguess/internal/models"
)

// PuzzleRepository handles puzzle database operations
type PuzzleRepository struct {
	db *database.DB
}

// NewPuzzleRepository creates a new puzzle repository
func NewPuzzleRepository(db *database.DB) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

// GetByDate retrieves the puzzle for a date. Returns (nil, nil) when no
// puzzle exists for that date.
func (r *PuzzleRepository) GetByDate(date string) (*models.Puzzle, error) {
	query := `
		SELECT id, puzzle_date, answer, sections_json, thumbnail, extract
		FROM puzzles
		WHERE puzzle_date = ?
	`

	puzzle, err := scanPuzzle(r.db.QueryRow(query, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return puzzle, err
}

// FirstDate returns the earliest puzzle date (the epoch, puzzle #1).
// Returns empty string when the database holds no puzzles.
func (r *PuzzleRepository) FirstDate() (string, error) {
	// MIN over an empty table yields NULL, hence the NullString scan
	var date sql.NullString
	err := r.db.QueryRow("SELECT MIN(puzzle_date) FROM puzzles").Scan(&date)
	if err != nil {
		return "", err
	}
	return date.String, nil
}

// ListUpTo returns all puzzles with dates up to and including the given
// date, oldest first. Used by the archive listing.
func (r *PuzzleRepository) ListUpTo(date string) ([]models.Puzzle, error) {
	query := `
		SELECT id, puzzle_date, answer, sections_json, thumbnail, extract
		FROM puzzles
		WHERE puzzle_date <= ?
		ORDER BY puzzle_date ASC
	`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var puzzles []models.Puzzle
	for rows.Next() {
		puzzle, err := scanPuzzleRows(rows)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, *puzzle)
	}
	return puzzles, rows.Err()
}

// ListAll returns every puzzle ordered by date, oldest first
func (r *PuzzleRepository) ListAll() ([]models.Puzzle, error) {
	return r.ListUpTo("9999-12-31")
}

// Upsert inserts a puzzle or replaces the existing row for its date, setting
// puzzle.ID on a fresh insert. The given tx may be nil, in which case the
// write runs directly on the pool.
func (r *PuzzleRepository) Upsert(tx database.DBTX, puzzle *models.Puzzle) error {
	if err := puzzle.Validate(); err != nil {
		return err
	}

	sectionsJSON, err := json.Marshal(puzzle.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}

	runner := database.DBTX(r.db)
	if tx != nil {
		runner = tx
	}

	// Update-then-insert, so the statement stays portable across dialects
	updateQuery := `
		UPDATE puzzles
		SET answer = ?, sections_json = ?, thumbnail = ?, extract = ?
		WHERE puzzle_date = ?
	`
	result, err := runner.Exec(updateQuery, puzzle.Answer, string(sectionsJSON), puzzle.Thumbnail, puzzle.Extract, puzzle.Date)
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
		INSERT INTO puzzles (puzzle_date, answer, sections_json, thumbnail, extract)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := runner.ExecReturningID(insertQuery, puzzle.Date, puzzle.Answer, string(sectionsJSON), puzzle.Thumbnail, puzzle.Extract)
	if err != nil {
		return err
	}
	puzzle.ID = id
	return nil
}

// Count returns the number of stored puzzles
func (r *PuzzleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM puzzles").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPuzzle(row rowScanner) (*models.Puzzle, error) {
	puzzle := &models.Puzzle{}
	var sectionsJSON string

	err := row.Scan(
		&puzzle.ID,
		&puzzle.Date,
		&puzzle.Answer,
		&sectionsJSON,
		&puzzle.Thumbnail,
		&puzzle.Extract,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sectionsJSON), &puzzle.Sections); err != nil {
		return nil, fmt.Errorf("corrupt sections for puzzle %s: %w", puzzle.Date, err)
	}
	return puzzle, nil
}

func scanPuzzleRows(rows *sql.Rows) (*models.Puzzle, error) {
	return scanPuzzle(rows)
}
