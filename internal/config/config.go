package config

import "time"

const (
	// Board surface
	SurfaceSize = 500.0 // Drawing surface width and height (device-independent units)
	BoardCenter = 250.0 // Board centre on both axes

	// Terminal board panel
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS   = 12  // Target frames per second (spinner animation)
	SpinnerRPM  = 60  // Spinner rotations per minute while connecting

	// Connection
	ConnectTimeout = 0 * time.Second // Zero disables the per-attempt timeout

	// Demo mode
	DemoConnectDelay = 1500 * time.Millisecond // Simulated pairing time
	DemoFailureRate  = 0.25                    // Probability a demo attempt fails

	// Leaderboard
	LeaderboardSource = "data/leaderboard.xlsx" // Relative path fetched at mount
	LeaderboardFetch  = 15 * time.Second        // HTTP fetch timeout

	// Diagnostics
	LogRingSize = 200 // Log lines kept for the diagnostics panel
	LogFile     = "granboard.log"
	LogLevel    = "info"

	// App
	AppName    = "GRANBOARD"
	AppVersion = "1.0"
)
