package game

import (
	"errors"
	"testing"

	"wikiguess/internal/models"
)

func goldPuzzle() *models.Puzzle {
	return &models.Puzzle{
		Date:     "2026-01-03",
		Answer:   "Gold",
		Sections: []string{"Characteristics", "History", "Production"},
	}
}

func TestNewSession(t *testing.T) {
	session := NewSession(goldPuzzle())

	if len(session.RevealedSections) != 1 {
		t.Fatalf("expected exactly one revealed section, got %d", len(session.RevealedSections))
	}
	if session.RevealedSections[0] != "Characteristics" {
		t.Errorf("expected first section revealed, got %q", session.RevealedSections[0])
	}
	if session.Attempts != 0 || session.GameOver || session.Won {
		t.Errorf("fresh session should have no attempts and no outcome: %+v", session)
	}
}

func TestSubmitGuessRevealsInOrder(t *testing.T) {
	puzzle := goldPuzzle()
	session := NewSession(puzzle)

	result, err := SubmitGuess(session, puzzle, "bronze")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != GuessRevealed {
		t.Errorf("expected GuessRevealed, got %v", result)
	}
	if session.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", session.Attempts)
	}
	want := []string{"Characteristics", "History"}
	if len(session.RevealedSections) != len(want) {
		t.Fatalf("expected %d revealed sections, got %d", len(want), len(session.RevealedSections))
	}
	for i := range want {
		if session.RevealedSections[i] != want[i] {
			t.Errorf("revealed[%d] = %q, want %q", i, session.RevealedSections[i], want[i])
		}
	}
}

func TestSubmitGuessWinScenario(t *testing.T) {
	puzzle := goldPuzzle()
	session := NewSession(puzzle)

	if _, err := SubmitGuess(session, puzzle, "bronze"); err != nil {
		t.Fatalf("first guess: %v", err)
	}

	result, err := SubmitGuess(session, puzzle, "Gold")
	if err != nil {
		t.Fatalf("second guess: %v", err)
	}
	if result != GuessCorrect {
		t.Errorf("expected GuessCorrect, got %v", result)
	}
	if !session.GameOver || !session.Won {
		t.Errorf("expected won terminal state, got %+v", session)
	}
	if session.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", session.Attempts)
	}
	if len(session.RevealedSections) != 2 {
		t.Errorf("expected 2 revealed sections, got %d", len(session.RevealedSections))
	}
}

func TestSubmitGuessLossWhenSectionsExhausted(t *testing.T) {
	puzzle := goldPuzzle()
	session := NewSession(puzzle)

	// Two misses reveal the remaining two sections
	for i := 0; i < 2; i++ {
		result, err := SubmitGuess(session, puzzle, "bronze")
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		if result != GuessRevealed {
			t.Fatalf("guess %d: expected GuessRevealed, got %v", i+1, result)
		}
	}

	// Third miss has nothing left to reveal
	result, err := SubmitGuess(session, puzzle, "bronze")
	if err != nil {
		t.Fatalf("final guess: %v", err)
	}
	if result != GuessLost {
		t.Errorf("expected GuessLost, got %v", result)
	}
	if !session.GameOver || session.Won {
		t.Errorf("expected lost terminal state, got %+v", session)
	}
	if session.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", session.Attempts)
	}
}

func TestSubmitGuessRejectsEmptyInput(t *testing.T) {
	puzzle := goldPuzzle()
	session := NewSession(puzzle)

	for _, guess := range []string{"", "   ", "\t"} {
		_, err := SubmitGuess(session, puzzle, guess)
		if !errors.Is(err, ErrEmptyGuess) {
			t.Errorf("guess %q: expected ErrEmptyGuess, got %v", guess, err)
		}
	}

	if session.Attempts != 0 || len(session.RevealedSections) != 1 {
		t.Errorf("rejected guesses must not mutate the session: %+v", session)
	}
}

func TestSubmitGuessNoOpAfterGameOver(t *testing.T) {
	puzzle := goldPuzzle()
	session := NewSession(puzzle)

	if _, err := SubmitGuess(session, puzzle, "Gold"); err != nil {
		t.Fatalf("winning guess: %v", err)
	}

	before := *session
	_, err := SubmitGuess(session, puzzle, "anything")
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
	if session.Attempts != before.Attempts || len(session.RevealedSections) != len(before.RevealedSections) {
		t.Errorf("terminal session must not change: before %+v, after %+v", before, session)
	}
}

func TestSessionValidFor(t *testing.T) {
	puzzle := goldPuzzle()

	tests := []struct {
		name    string
		session models.PuzzleSession
		want    bool
	}{
		{
			name:    "fresh session",
			session: models.PuzzleSession{RevealedSections: []string{"Characteristics"}},
			want:    true,
		},
		{
			name:    "full prefix",
			session: models.PuzzleSession{RevealedSections: puzzle.Sections},
			want:    true,
		},
		{
			name:    "empty revealed list",
			session: models.PuzzleSession{},
			want:    false,
		},
		{
			name:    "not a prefix",
			session: models.PuzzleSession{RevealedSections: []string{"History"}},
			want:    false,
		},
		{
			name:    "more revealed than sections exist",
			session: models.PuzzleSession{RevealedSections: append(append([]string{}, puzzle.Sections...), "Extra")},
			want:    false,
		},
		{
			name:    "negative attempts",
			session: models.PuzzleSession{RevealedSections: []string{"Characteristics"}, Attempts: -1},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.ValidFor(puzzle.Sections); got != tt.want {
				t.Errorf("ValidFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
