package handlers

import (
	"wikiguess/internal/models"
	"wikiguess/internal/service"
)

// PuzzleViewData is the state snapshot the client renders: the puzzle
// metadata plus the player's session, with the answer withheld until the
// game is over.
type PuzzleViewData struct {
	Date                string   `json:"date"`
	Number              int      `json:"number"`
	Archive             bool     `json:"archive"`
	TotalSections       int      `json:"totalSections"`
	Thumbnail           string   `json:"thumbnail,omitempty"`
	Extract             string   `json:"extract,omitempty"`
	RevealedSections    []string `json:"revealedSections"`
	Attempts            int      `json:"attempts"`
	GameOver            bool     `json:"gameOver"`
	Won                 bool     `json:"won"`
	Answer              string   `json:"answer,omitempty"`
	ArticleURL          string   `json:"articleUrl,omitempty"`
	NextPuzzleInSeconds int      `json:"nextPuzzleInSeconds,omitempty"`
}

// GuessRequest is the body of a guess submission
type GuessRequest struct {
	Guess string `json:"guess"`
	Date  string `json:"date,omitempty"`
}

// GuessViewData reports what one guess did, plus the updated snapshot
type GuessViewData struct {
	Correct  bool           `json:"correct"`
	Feedback string         `json:"feedback"`
	Puzzle   PuzzleViewData `json:"puzzle"`
}

// ResetRequest identifies the session to clear
type ResetRequest struct {
	Date string `json:"date,omitempty"`
}

// StatsViewData is the player's aggregate history
type StatsViewData struct {
	GamesPlayed    int     `json:"gamesPlayed"`
	GamesWon       int     `json:"gamesWon"`
	WinRate        float64 `json:"winRate"`
	CurrentStreak  int     `json:"currentStreak"`
	BestStreak     int     `json:"bestStreak"`
	LastPlayedDate string  `json:"lastPlayedDate,omitempty"`
}

// ArchiveViewData lists all past puzzles
type ArchiveViewData struct {
	Puzzles []service.ArchiveEntry `json:"puzzles"`
}

// ShareViewData carries the shareable result text
type ShareViewData struct {
	Text string `json:"text"`
}

func newStatsViewData(record *models.StatsRecord) StatsViewData {
	return StatsViewData{
		GamesPlayed:    record.GamesPlayed,
		GamesWon:       record.GamesWon,
		WinRate:        record.WinRate(),
		CurrentStreak:  record.CurrentStreak,
		BestStreak:     record.BestStreak,
		LastPlayedDate: record.LastPlayedDate,
	}
}
