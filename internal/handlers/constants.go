package handlers

const (
	PlayerCookieName = "wg_player"

	ErrMsgInvalidRequest = "Invalid request"
	ErrMsgNoPuzzle       = "No puzzle available for this date. Check back tomorrow!"
	ErrMsgEmptyGuess     = "Please enter a guess."
	ErrMsgGameOver       = "This game is already over."
	ErrMsgNotFinished    = "Finish the puzzle before sharing your result."
	ErrMsgInternal       = "Internal server error"
)
