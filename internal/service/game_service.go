package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wikiguess/internal/game"
	"wikiguess/internal/models"
	"wikiguess/internal/repository"
)

// ErrNoPuzzleForDate is returned when no puzzle exists for a requested date.
// There is nothing to retry; the date simply has no entry in the dataset.
var ErrNoPuzzleForDate = errors.New("no puzzle available for this date")

// ArchiveEntry is one row of the archive listing
type ArchiveEntry struct {
	Date          string `json:"date"`
	Number        int    `json:"number"`
	Answer        string `json:"answer"`
	TotalSections int    `json:"totalSections"`
}

// GameService orchestrates puzzle selection, session state and statistics
type GameService struct {
	puzzles  *repository.PuzzleRepository
	sessions *repository.SessionRepository
	stats    *repository.StatsRepository
	now      func() time.Time
}

// NewGameService creates a new game service
func NewGameService(puzzles *repository.PuzzleRepository, sessions *repository.SessionRepository, stats *repository.StatsRepository) *GameService {
	return &GameService{
		puzzles:  puzzles,
		sessions: sessions,
		stats:    stats,
		now:      time.Now,
	}
}

// Today returns the current UTC calendar date, which keys the live puzzle
func (s *GameService) Today() string {
	return game.DateString(s.now())
}

// NextPuzzleIn returns the countdown until the next daily puzzle unlocks
func (s *GameService) NextPuzzleIn() time.Duration {
	return game.NextPuzzleIn(s.now())
}

// PuzzleForDate looks up the puzzle for a date, or today's when date is
// empty. Returns ErrNoPuzzleForDate on a lookup miss.
func (s *GameService) PuzzleForDate(date string) (*models.Puzzle, error) {
	if date == "" {
		date = s.Today()
	}

	puzzle, err := s.puzzles.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle for %s: %w", date, err)
	}
	if puzzle == nil {
		return nil, ErrNoPuzzleForDate
	}
	return puzzle, nil
}

// PuzzleNumber returns the ordinal of a puzzle date: the earliest date in
// the dataset is puzzle #1.
func (s *GameService) PuzzleNumber(date string) (int, error) {
	epoch, err := s.puzzles.FirstDate()
	if err != nil {
		return 0, fmt.Errorf("failed to determine epoch date: %w", err)
	}
	if epoch == "" {
		return 0, ErrNoPuzzleForDate
	}
	return game.PuzzleNumber(epoch, date)
}

// StartOrResume loads the player's saved session for a puzzle, creating and
// persisting a fresh one (first section revealed) when none exists or the
// stored blob doesn't fit the puzzle anymore.
func (s *GameService) StartOrResume(playerID string, puzzle *models.Puzzle, archive bool) (*models.PuzzleSession, error) {
	session, err := s.sessions.Get(playerID, puzzle.Date, archive)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session != nil && !session.ValidFor(puzzle.Sections) {
		log.Printf("Stored session for player=%s date=%s doesn't match the puzzle, resetting", playerID, puzzle.Date)
		session = nil
	}

	if session == nil {
		session = game.NewSession(puzzle)
		if err := s.sessions.Save(playerID, puzzle.Date, archive, session); err != nil {
			return nil, fmt.Errorf("failed to save new session: %w", err)
		}
	}
	return session, nil
}

// Guess submits one guess for the player's session on the given puzzle.
// The session is persisted after every accepted transition; when a live
// game reaches a terminal state the outcome is folded into the player's
// stats. Rejected guesses (empty input, game already over) return the
// untouched session together with the sentinel error from the game package.
func (s *GameService) Guess(playerID string, puzzle *models.Puzzle, archive bool, guess string) (*models.PuzzleSession, game.GuessResult, error) {
	session, err := s.StartOrResume(playerID, puzzle, archive)
	if err != nil {
		return nil, 0, err
	}

	result, err := game.SubmitGuess(session, puzzle, guess)
	if err != nil {
		return session, 0, err
	}

	if err := s.sessions.Save(playerID, puzzle.Date, archive, session); err != nil {
		return nil, 0, fmt.Errorf("failed to save session: %w", err)
	}

	if session.GameOver && !archive {
		s.recordOutcome(playerID, session.Won)
	}

	return session, result, nil
}

// recordOutcome updates the player's aggregate history. Stats are a
// best-effort side channel: a storage failure here is logged but never
// fails the guess that triggered it.
func (s *GameService) recordOutcome(playerID string, won bool) {
	record, err := s.stats.Get(playerID)
	if err != nil {
		log.Printf("Warning: failed to load stats for player %s: %v", playerID, err)
		return
	}

	if !game.RecordOutcome(record, won, s.Today()) {
		return
	}

	if err := s.stats.Save(record); err != nil {
		log.Printf("Warning: failed to save stats for player %s: %v", playerID, err)
	}
}

// Stats returns the player's aggregate play history
func (s *GameService) Stats(playerID string) (*models.StatsRecord, error) {
	return s.stats.Get(playerID)
}

// ResetSession clears a stored session so the next visit starts fresh
func (s *GameService) ResetSession(playerID, date string, archive bool) error {
	return s.sessions.Delete(playerID, date, archive)
}

// Archive lists every puzzle up to and including today, oldest first
func (s *GameService) Archive() ([]ArchiveEntry, error) {
	puzzles, err := s.puzzles.ListUpTo(s.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	if len(puzzles) == 0 {
		return nil, nil
	}

	epoch := puzzles[0].Date
	entries := make([]ArchiveEntry, 0, len(puzzles))
	for _, p := range puzzles {
		number, err := game.PuzzleNumber(epoch, p.Date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ArchiveEntry{
			Date:          p.Date,
			Number:        number,
			Answer:        p.Answer,
			TotalSections: len(p.Sections),
		})
	}
	return entries, nil
}

// ShareText builds the shareable result: the puzzle number followed by the
// grouped score grid.
func (s *GameService) ShareText(puzzle *models.Puzzle, session *models.PuzzleSession) (string, error) {
	number, err := s.PuzzleNumber(puzzle.Date)
	if err != nil {
		return "", err
	}

	groups := game.GroupByParent(puzzle.Sections)
	rows := game.ScoreGrid(groups, session.RevealedSections)
	return fmt.Sprintf("WikiGuess Puzzle #%d\n%s", number, strings.Join(rows, "\n")), nil
}
