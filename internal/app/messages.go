package app

import (
	"time"

	"granboard.klederson.com/internal/leaderboard"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// ConnectSettledMsg reports that a connect attempt resolved or rejected.
type ConnectSettledMsg struct{}

// LeaderboardLoadedMsg carries the result of the one-shot leaderboard load.
type LeaderboardLoadedMsg struct {
	Workbook *leaderboard.Workbook
	Err      error
}
