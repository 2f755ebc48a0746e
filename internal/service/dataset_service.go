package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"wikiguess/internal/database"
	"wikiguess/internal/models"
	"wikiguess/internal/repository"
)

// DatasetService loads puzzle datasets produced by the external scraping
// tools into the database, and exports them back out
type DatasetService struct {
	db      *database.DB
	puzzles *repository.PuzzleRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(db *database.DB, puzzles *repository.PuzzleRepository) *DatasetService {
	return &DatasetService{db: db, puzzles: puzzles}
}

// Seed imports the dataset file at path, but only into an empty database.
// A populated database is left alone so startup never clobbers puzzles
// managed through puzzlectl; a missing file is not an error either.
func (s *DatasetService) Seed(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("No dataset file at %s, skipping seed", path)
		return nil
	}

	existing, err := s.puzzles.Count()
	if err != nil {
		return fmt.Errorf("failed to count puzzles: %w", err)
	}
	if existing > 0 {
		log.Printf("Database already holds %d puzzles, skipping seed", existing)
		return nil
	}

	count, err := s.Import(path, false)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d puzzles from %s", count, path)
	return nil
}

// Import reads a JSON dataset file and upserts every puzzle in a single
// transaction. With clear set, existing puzzles are removed first so the
// file becomes the entire dataset.
func (s *DatasetService) Import(path string, clear bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var puzzles []models.Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return 0, fmt.Errorf("failed to parse dataset file: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if clear {
		if _, err := tx.Exec("DELETE FROM puzzles"); err != nil {
			return 0, fmt.Errorf("failed to clear puzzles: %w", err)
		}
	}

	for i := range puzzles {
		if err := s.puzzles.Upsert(tx, &puzzles[i]); err != nil {
			return 0, fmt.Errorf("puzzle %s: %w", puzzles[i].Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(puzzles), nil
}

// Export writes every stored puzzle to a JSON dataset file
func (s *DatasetService) Export(path string) (int, error) {
	puzzles, err := s.puzzles.ListAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list puzzles: %w", err)
	}

	data, err := json.MarshalIndent(puzzles, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write dataset file: %w", err)
	}
	return len(puzzles), nil
}

// List returns every stored puzzle, oldest first
func (s *DatasetService) List() ([]models.Puzzle, error) {
	return s.puzzles.ListAll()
}
