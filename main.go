package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"granboard.klederson.com/internal/app"
	"granboard.klederson.com/internal/bluetooth"
	"granboard.klederson.com/internal/board"
	"granboard.klederson.com/internal/canvas"
	"granboard.klederson.com/internal/config"
	"granboard.klederson.com/internal/connection"
	"granboard.klederson.com/internal/leaderboard"
	"granboard.klederson.com/internal/logging"
)

var (
	flagConfig      string
	flagDemo        bool
	flagAdapter     string
	flagLeaderboard string
	flagLogFile     string
	flagLogLevel    string
	flagTimeout     time.Duration
	flagOutput      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "granboard",
		Short: "Granboard - terminal dartboard with Bluetooth board pairing",
		Long: `Granboard paints a regulation dartboard in the terminal and pairs with a
Granboard electronic dartboard over Bluetooth Low Energy.

Requires sudo or CAP_NET_ADMIN capability for real Bluetooth pairing.
Use --demo flag for demonstration mode without Bluetooth hardware.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "granboard.yaml", "Settings file (YAML)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run in demo mode with a simulated board (no Bluetooth required)")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "", "Bluetooth adapter to use")
	rootCmd.Flags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard spreadsheet path or URL")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().DurationVar(&flagTimeout, "connect-timeout", 0, "Abandon a pairing attempt after this long (0 = never)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dartboard face to a PNG file",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "board.png", "Output PNG path")
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settings loads the settings file and applies flags the user set.
func settings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("demo") {
		s.Demo = flagDemo
	}
	if flags.Changed("adapter") {
		s.Adapter = flagAdapter
	}
	if flags.Changed("leaderboard") {
		s.Leaderboard = flagLeaderboard
	}
	if flags.Changed("log-file") {
		s.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("connect-timeout") {
		s.ConnectTimeout = flagTimeout
	}
	return s, s.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}

	ring := logging.NewRing(config.LogRingSize)
	log, closer, err := logging.Setup(s.LogFile, s.LogLevel, ring)
	if err != nil {
		return err
	}
	defer closer.Close()

	var connector connection.Connector
	source := s.Adapter
	if s.Demo {
		connector = bluetooth.NewMockConnector(s.DemoDelay, s.DemoFailure, log)
		source = "simulated"
	} else {
		connector = bluetooth.NewBLEConnector(log)
	}

	log.WithField("demo", s.Demo).Info("starting")
	model := app.New(app.Options{
		Demo:      s.Demo,
		Source:    source,
		Connector: connector,
		Timeout:   s.ConnectTimeout,
		Loader:    &leaderboard.Loader{Source: s.Leaderboard, Log: log},
		Log:       log,
		Ring:      ring,
	})
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	raster := canvas.NewRaster(int(config.SurfaceSize), int(config.SurfaceSize))
	board.Render(raster)
	if err := raster.SavePNG(flagOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagOutput)
	return nil
}
