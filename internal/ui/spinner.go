package ui

import (
	"time"

	"granboard.klederson.com/internal/config"
)

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// Spinner animates the connect control while an attempt is pending.
type Spinner struct {
	StartTime time.Time
	frame     int
}

// NewSpinner creates a spinner starting at its first frame.
func NewSpinner() *Spinner {
	return &Spinner{StartTime: time.Now()}
}

// Update advances the frame based on elapsed time.
func (s *Spinner) Update() {
	s.UpdateAt(time.Now())
}

// UpdateAt advances the frame as of now.
func (s *Spinner) UpdateAt(now time.Time) {
	elapsed := now.Sub(s.StartTime).Seconds()
	rps := float64(config.SpinnerRPM) / 60.0 // rotations per second
	s.frame = int(elapsed*rps*float64(len(spinnerFrames))) % len(spinnerFrames)
}

// Frame returns the glyph for the current frame.
func (s *Spinner) Frame() string {
	return spinnerFrames[s.frame]
}
