package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paroliere/internal/game"
)

const tickEvery = 100 * time.Millisecond

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Lexicon game.Lexicon
	// Options seeds the machine; Audio defaults to the terminal bell.
	Options game.Options
	Logger  *zap.Logger
	// Bell receives the feedback bell. Defaults to stderr.
	Bell io.Writer
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newBoardModel(a.cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("classic ui: %w", err)
	}
	if b, ok := final.(boardModel); ok {
		m.log.Info("classic ui closed", zap.Int("score", b.machine.Score()))
	}
	return nil
}

// clockTickMsg drives the round timer.
type clockTickMsg struct {
	at time.Time
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return clockTickMsg{at: t}
	})
}

type boardModel struct {
	machine *game.Machine
	log     *zap.Logger
	cfg     AppConfig
	width   int
}

func newBoardModel(cfg AppConfig) (boardModel, error) {
	if cfg.Lexicon == nil {
		return boardModel{}, errors.New("classic ui: lexicon is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	opts := cfg.Options
	if opts.Audio == nil {
		bell := cfg.Bell
		if bell == nil {
			bell = os.Stderr
		}
		opts.Audio = bellAudio{w: bell}
	}
	opts.Logger = log
	machine, err := game.NewMachine(cfg.Lexicon, opts)
	if err != nil {
		return boardModel{}, fmt.Errorf("classic ui: %w", err)
	}
	return boardModel{machine: machine, log: log, cfg: cfg}, nil
}

func (m boardModel) Init() tea.Cmd {
	return clockTickCmd()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.machine.Tick(msg.at)
		if m.machine.Phase() == game.PhaseClose {
			return m, tea.Quit
		}
		return m, clockTickCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.machine.Close()
			return m, tea.Quit
		}
		for _, in := range translateKey(m.machine.Phase(), msg) {
			if err := m.machine.HandleInput(in); err != nil {
				m.log.Debug("input refused", zap.Stringer("input", in.Kind), zap.Error(err))
			}
		}
		if m.machine.Phase() == game.PhaseClose {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	return renderBoard(m.machine.Snapshot(), m.cfg, m.width)
}
