package app

import (
	"context"
	"image"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"granboard.klederson.com/internal/bluetooth"
	"granboard.klederson.com/internal/board"
	"granboard.klederson.com/internal/canvas"
	"granboard.klederson.com/internal/config"
	"granboard.klederson.com/internal/connection"
	"granboard.klederson.com/internal/leaderboard"
	"granboard.klederson.com/internal/logging"
	"granboard.klederson.com/internal/ui"
)

type screen int

const (
	screenBoard screen = iota
	screenLeaderboard
)

// Options wires the collaborators of the view.
type Options struct {
	Demo      bool
	Source    string // shown in the menu bar
	Connector connection.Connector
	Timeout   time.Duration
	Loader    *leaderboard.Loader
	Log       logrus.FieldLogger
	Ring      *logging.Ring
}

// boardCache keeps the sampled board cells for one panel size.
type boardCache struct {
	width, height int
	cells         string
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	ctx        context.Context
	cancel     context.CancelFunc
	controller *connection.Controller
	loader     *leaderboard.Loader
	spinner    *ui.Spinner
	ring       *logging.Ring
	log        logrus.FieldLogger
	board      image.Image
	cache      boardCache
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	demoMode bool
	source   string
	screen   screen
	showLog  bool
	cursor   int

	players []leaderboard.Player
	rows    int
	loaded  bool

	shared *shared
}

// New creates the view and paints the board once.
func New(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("component", "app")

	raster := canvas.NewRaster(int(config.SurfaceSize), int(config.SurfaceSize))
	board.Render(raster)
	log.Debug("board rendered")

	ctx, cancel := context.WithCancel(context.Background())
	return AppModel{
		demoMode: opts.Demo,
		source:   opts.Source,
		loaded:   opts.Loader == nil,
		shared: &shared{
			ctx:    ctx,
			cancel: cancel,
			controller: connection.NewController(opts.Connector,
				connection.WithLogger(log),
				connection.WithTimeout(opts.Timeout)),
			loader:  opts.Loader,
			spinner: ui.NewSpinner(),
			ring:    opts.Ring,
			log:     log,
			board:   raster.Image(),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadLeaderboardCmd(m.shared.ctx, m.shared.loader),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.spinner.Update()
		return m, tickCmd()

	case ConnectSettledMsg:
		return m, nil

	case LeaderboardLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.shared.log.WithError(msg.Err).Error("error loading leaderboard")
			return m, nil
		}
		m.players = msg.Workbook.Players()
		m.rows = msg.Workbook.RowCount()
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		_ = m.Close()
		return m, tea.Quit

	case "c", "C", "enter", " ":
		return m, m.activate()

	case "l", "L":
		if m.screen == screenBoard {
			m.screen = screenLeaderboard
		} else {
			m.screen = screenBoard
		}

	case "d", "D":
		m.showLog = !m.showLog

	case "esc":
		m.screen = screenBoard

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.players)-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if len(m.players) > 0 {
			m.cursor = len(m.players) - 1
		}
	}

	return m, nil
}

// activate starts a connect attempt if the control accepts activation.
func (m AppModel) activate() tea.Cmd {
	done, ok := m.shared.controller.Connect(m.shared.ctx)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		<-done
		return ConnectSettledMsg{}
	}
}

// Status returns the connection status shown on the control.
func (m AppModel) Status() connection.Status {
	return m.shared.controller.Status()
}

// Close cancels pending work and disconnects a connected board. Results
// that arrive afterwards are discarded.
func (m AppModel) Close() error {
	m.shared.cancel()
	return m.shared.controller.Close()
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	status := m.shared.controller.Status()
	info := m.boardInfo(status)

	menuBar := ui.RenderMenuBar(m.width, m.source, m.demoMode)
	statusBar := ui.RenderStatusBar(m.width, status, info.Name, len(m.players), m.rows)

	if m.screen == screenLeaderboard {
		table := ui.RenderLeaderboard(m.players, m.width, bodyH, m.cursor, m.loaded)
		return ui.ComposeLayout(menuBar, statusBar, table)
	}

	boardW := m.width * 3 / 5
	if boardW < 20 {
		boardW = 20
	}
	detailW := m.width - boardW
	if detailW < 24 {
		detailW = 24
		boardW = m.width - detailW
	}

	// Border (2) and title (1)
	cells := m.boardCells(boardW-4, bodyH-3)
	boardPanel := ui.RenderBoardPanel(boardW, bodyH, cells)

	var logLines []string
	if m.showLog && m.shared.ring != nil {
		logLines = m.shared.ring.Tail(bodyH)
	}
	detail := ui.RenderDetailPanel(info, detailW, bodyH, logLines)

	return ui.ComposeLayout(menuBar, statusBar, boardPanel, detail)
}

func (m AppModel) boardInfo(status connection.Status) ui.BoardInfo {
	info := ui.BoardInfo{
		Status:       status,
		SpinnerFrame: m.shared.spinner.Frame(),
		Err:          m.shared.controller.Err(),
	}
	h := m.shared.controller.Handle()
	if h == nil {
		return info
	}
	info.Name = h.Name()
	info.Address = h.Address()
	if b, ok := h.(*bluetooth.Board); ok {
		a := b.Activity()
		info.ConnectedAt = b.ConnectedAt()
		info.Notifications = a.Notifications
		info.LastPayload = a.LastPayload
		info.LastSeen = a.LastSeen
	}
	return info
}

// boardCells samples the painted board, reusing the last result while the
// panel size is unchanged.
func (m AppModel) boardCells(width, height int) string {
	c := &m.shared.cache
	if c.width == width && c.height == height && c.cells != "" {
		return c.cells
	}
	c.width, c.height = width, height
	c.cells = ui.BoardCells(m.shared.board, width, height)
	return c.cells
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func loadLeaderboardCmd(ctx context.Context, loader *leaderboard.Loader) tea.Cmd {
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, config.LeaderboardFetch)
		defer cancel()
		wb, err := loader.Load(ctx)
		return LeaderboardLoadedMsg{Workbook: wb, Err: err}
	}
}
