package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/skip2/go-qrcode"

	"wikiguess/internal/game"
	"wikiguess/internal/models"
	"wikiguess/internal/service"
)

// GameHandler handles puzzle gameplay HTTP requests
type GameHandler struct {
	games   *service.GameService
	baseURL string
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService, baseURL string) *GameHandler {
	return &GameHandler{games: games, baseURL: baseURL}
}

// GetPuzzle returns the puzzle for today (or an archive date via ?date=)
// together with the player's session snapshot
func (h *GameHandler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())
	date := r.URL.Query().Get("date")
	archive := date != ""

	puzzle, err := h.games.PuzzleForDate(date)
	if err != nil {
		if errors.Is(err, service.ErrNoPuzzleForDate) {
			respondWithError(w, http.StatusNotFound, ErrMsgNoPuzzle, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load puzzle", err)
		return
	}

	session, err := h.games.StartOrResume(playerID, puzzle, archive)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to start session", err)
		return
	}

	writeJSON(w, http.StatusOK, h.puzzleView(puzzle, session, archive))
}

// SubmitGuess processes one guess for the player's current session
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequest, "Failed to decode guess", err)
		return
	}
	archive := req.Date != ""

	puzzle, err := h.games.PuzzleForDate(req.Date)
	if err != nil {
		if errors.Is(err, service.ErrNoPuzzleForDate) {
			respondWithError(w, http.StatusNotFound, ErrMsgNoPuzzle, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load puzzle", err)
		return
	}

	session, result, err := h.games.Guess(playerID, puzzle, archive, req.Guess)
	switch {
	case errors.Is(err, game.ErrEmptyGuess):
		respondWithError(w, http.StatusUnprocessableEntity, ErrMsgEmptyGuess, "", nil)
		return
	case errors.Is(err, game.ErrGameOver):
		respondWithError(w, http.StatusConflict, ErrMsgGameOver, "", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to process guess", err)
		return
	}

	view := GuessViewData{
		Correct:  result == game.GuessCorrect,
		Feedback: guessFeedback(result, session),
		Puzzle:   h.puzzleView(puzzle, session, archive),
	}
	writeJSON(w, http.StatusOK, view)
}

// ResetSession clears the player's stored session for a date, returning
// them to a fresh single-section game
func (h *GameHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequest, "Failed to decode reset request", err)
		return
	}

	date := req.Date
	archive := date != ""
	if date == "" {
		date = h.games.Today()
	}

	if err := h.games.ResetSession(playerID, date, archive); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to reset session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStats returns the player's aggregate play history
func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	record, err := h.games.Stats(playerID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load stats", err)
		return
	}
	writeJSON(w, http.StatusOK, newStatsViewData(record))
}

// GetArchive lists all puzzles up to today, oldest first
func (h *GameHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	entries, err := h.games.Archive()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load archive", err)
		return
	}
	writeJSON(w, http.StatusOK, ArchiveViewData{Puzzles: entries})
}

// GetShare returns the shareable score text for a finished session
func (h *GameHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())
	date := r.URL.Query().Get("date")
	archive := date != ""

	puzzle, err := h.games.PuzzleForDate(date)
	if err != nil {
		if errors.Is(err, service.ErrNoPuzzleForDate) {
			respondWithError(w, http.StatusNotFound, ErrMsgNoPuzzle, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load puzzle", err)
		return
	}

	session, err := h.games.StartOrResume(playerID, puzzle, archive)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to load session", err)
		return
	}
	if session.InProgress() {
		respondWithError(w, http.StatusConflict, ErrMsgNotFinished, "", nil)
		return
	}

	text, err := h.games.ShareText(puzzle, session)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to build share text", err)
		return
	}
	writeJSON(w, http.StatusOK, ShareViewData{Text: text})
}

// GetShareQR renders the puzzle's URL as a QR code PNG. When encoding
// fails the URL is returned as plain text so sharing still works by
// manual copy.
func (h *GameHandler) GetShareQR(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	puzzleURL := h.baseURL + "/"
	if date != "" {
		puzzleURL += "?date=" + date
	}

	png, err := qrcode.Encode(puzzleURL, qrcode.Medium, 256)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, puzzleURL)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *GameHandler) puzzleView(puzzle *models.Puzzle, session *models.PuzzleSession, archive bool) PuzzleViewData {
	number, err := h.games.PuzzleNumber(puzzle.Date)
	if err != nil {
		number = 0
	}

	view := PuzzleViewData{
		Date:             puzzle.Date,
		Number:           number,
		Archive:          archive,
		TotalSections:    len(puzzle.Sections),
		Thumbnail:        puzzle.Thumbnail,
		Extract:          puzzle.Extract,
		RevealedSections: session.RevealedSections,
		Attempts:         session.Attempts,
		GameOver:         session.GameOver,
		Won:              session.Won,
	}

	// The answer stays hidden until the game is decided
	if session.GameOver {
		view.Answer = puzzle.Answer
		view.ArticleURL = puzzle.ArticleURL()
	}

	if !archive {
		view.NextPuzzleInSeconds = int(h.games.NextPuzzleIn().Seconds())
	}
	return view
}

func guessFeedback(result game.GuessResult, session *models.PuzzleSession) string {
	switch result {
	case game.GuessCorrect:
		if session.Attempts == 1 {
			return "Correct! You got it in 1 guess!"
		}
		return fmt.Sprintf("Correct! You got it in %d guesses!", session.Attempts)
	case game.GuessLost:
		return "Out of sections. Better luck tomorrow!"
	default:
		return "Incorrect. Revealing next section..."
	}
}
