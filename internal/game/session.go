package game

import (
	"errors"
	"strings"

	"wikiguess/internal/models"
)

// Guess submission errors. Both leave the session untouched.
var (
	ErrEmptyGuess = errors.New("guess is empty")
	ErrGameOver   = errors.New("game is already over")
)

// GuessResult describes what a submitted guess did to the session
type GuessResult int

const (
	// GuessCorrect means the guess matched and the session is won
	GuessCorrect GuessResult = iota
	// GuessRevealed means the guess missed and the next section was revealed
	GuessRevealed
	// GuessLost means the guess missed with no sections left to reveal
	GuessLost
)

// NewSession creates a fresh session for a puzzle with exactly the first
// section revealed.
func NewSession(puzzle *models.Puzzle) *models.PuzzleSession {
	return &models.PuzzleSession{
		RevealedSections: []string{puzzle.Sections[0]},
	}
}

// SubmitGuess drives one transition of the session state machine. Terminal
// sessions reject further guesses; blank input is rejected before any state
// changes. Every accepted guess increments the attempt count, then either
// wins the game, reveals the next section, or loses when nothing is left
// to reveal.
func SubmitGuess(session *models.PuzzleSession, puzzle *models.Puzzle, guess string) (GuessResult, error) {
	if !session.InProgress() {
		return 0, ErrGameOver
	}
	if strings.TrimSpace(guess) == "" {
		return 0, ErrEmptyGuess
	}

	session.Attempts++

	if Matches(guess, puzzle.Answer) {
		session.GameOver = true
		session.Won = true
		return GuessCorrect, nil
	}

	if len(session.RevealedSections) < len(puzzle.Sections) {
		session.RevealedSections = append(session.RevealedSections, puzzle.Sections[len(session.RevealedSections)])
		return GuessRevealed, nil
	}

	session.GameOver = true
	session.Won = false
	return GuessLost, nil
}
