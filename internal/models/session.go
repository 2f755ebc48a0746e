package models

// PuzzleSession is a player's saved progress for one puzzle. It is stored as
// a JSON blob keyed by (player, puzzle date, mode), so the field names below
// are the persistence format.
type PuzzleSession struct {
	RevealedSections []string `json:"revealedSections"`
	Attempts         int      `json:"attempts"`
	GameOver         bool     `json:"gameOver"`
	Won              bool     `json:"won"`
}

// InProgress reports whether the session can still accept guesses
func (s *PuzzleSession) InProgress() bool {
	return !s.GameOver
}

// ValidFor reports whether the session is consistent with the puzzle's
// section list: the revealed list must be a non-empty prefix of sections.
// A session that fails this check is treated as corrupted and discarded.
func (s *PuzzleSession) ValidFor(sections []string) bool {
	if len(s.RevealedSections) == 0 || len(s.RevealedSections) > len(sections) {
		return false
	}
	for i, revealed := range s.RevealedSections {
		if revealed != sections[i] {
			return false
		}
	}
	return s.Attempts >= 0
}
