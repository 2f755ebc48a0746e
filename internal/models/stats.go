package models

// StatsRecord holds a player's aggregate play history for the live daily
// puzzle. Archive-mode play never touches this record. Dates are YYYY-MM-DD
// strings; empty string means "never".
type StatsRecord struct {
	PlayerID       string `json:"-"`
	GamesPlayed    int    `json:"gamesPlayed"`
	GamesWon       int    `json:"gamesWon"`
	CurrentStreak  int    `json:"currentStreak"`
	BestStreak     int    `json:"bestStreak"`
	LastPlayedDate string `json:"lastPlayedDate,omitempty"`
	LastWonDate    string `json:"lastWonDate,omitempty"`
}

// WinRate returns the percentage of games won, 0 when no games were played
func (r *StatsRecord) WinRate() float64 {
	if r.GamesPlayed == 0 {
		return 0
	}
	return float64(r.GamesWon) / float64(r.GamesPlayed) * 100
}
