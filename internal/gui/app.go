package gui

import (
	"errors"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paroliere/internal/config"
	"github.com/appengine-ltd/paroliere/internal/game"
	uitheme "github.com/appengine-ltd/paroliere/internal/ui/theme"
)

const (
	windowW = 1280
	windowH = 720
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Config  *config.Config
	Lexicon game.Lexicon
	// Options seeds the machine; Audio is replaced by the window's sound bank.
	Options game.Options
	Logger  *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	if a.cfg.Config == nil || a.cfg.Lexicon == nil {
		return errors.New("gui: config and lexicon are required")
	}
	ui := newGameUI(a.cfg)
	return ui.Run()
}

type gameUI struct {
	cfg AppConfig
	log *zap.Logger

	width  int32
	height int32

	machine *game.Machine
}

func newGameUI(cfg AppConfig) *gameUI {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &gameUI{
		cfg:    cfg,
		log:    log,
		width:  windowW,
		height: windowH,
	}
}

// Run opens the window, loads every asset and drives the game until it
// closes. Resources are released in reverse order on every return path.
func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Paroliere")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("gui: window could not be created")
	}
	rl.SetWindowMinSize(windowW, windowH)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	if err := initTypography(ui.cfg.Config, ui.log); err != nil {
		return err
	}
	defer shutdownTypography()

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return errors.New("gui: audio device could not be opened")
	}
	rl.SetMasterVolume(ui.cfg.Config.Volume)

	sounds, err := loadSoundBank(ui.cfg.Config, ui.log)
	if err != nil {
		return err
	}
	defer sounds.Unload()

	opts := ui.cfg.Options
	opts.Audio = sounds
	opts.Logger = ui.log
	ui.machine, err = game.NewMachine(ui.cfg.Lexicon, opts)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	for ui.machine.Phase() != game.PhaseClose {
		if rl.WindowShouldClose() {
			ui.machine.Close()
			break
		}
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.machine.Tick(time.Now())
		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(uitheme.BG)
		ui.draw()
		rl.EndDrawing()
	}
	ui.log.Info("window closed", zap.Int("score", ui.machine.Score()))
	return nil
}

func (ui *gameUI) update() {
	for _, in := range translateFrame(ui.machine.Phase(), rl.IsKeyPressed, pollChars()) {
		if err := ui.machine.HandleInput(in); err != nil {
			ui.log.Debug("input refused", zap.Stringer("input", in.Kind), zap.Error(err))
		}
	}
}

func (ui *gameUI) draw() {
	snap := ui.machine.Snapshot()
	uitheme.DrawFrame(ui.width, ui.height, uitheme.FrameColor(snap.Phase, snap.LastWord))
	flow := uitheme.NewFlow(ui.width, ui.height)

	switch snap.Phase {
	case game.PhaseLoading:
		drawLoading(flow, snap)
	case game.PhaseChoosingLetters:
		drawChoosingLetters(flow, snap)
	case game.PhaseRunning:
		drawRunning(flow, snap)
	case game.PhaseEnded:
		drawEnded(flow, snap)
	}
}
