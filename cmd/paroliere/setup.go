package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/paroliere/internal/config"
	"github.com/appengine-ltd/paroliere/internal/dictionary"
	"github.com/appengine-ltd/paroliere/internal/game"
	"github.com/appengine-ltd/paroliere/internal/hint"
	"github.com/appengine-ltd/paroliere/internal/logging"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliFlags struct {
	showVersion bool
	classic     bool
	assets      string
	round       int
	seed        int64
	logLevel    string

	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("paroliere", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&f.classic, "classic", false, "run the terminal front-end")
	fs.StringVar(&f.assets, "assets", "", "assets directory (overrides PAROLIERE_ASSETS_DIR)")
	fs.IntVar(&f.round, "round", 0, "round length in seconds (overrides PAROLIERE_ROUND_SECONDS)")
	fs.Int64Var(&f.seed, "seed", 0, "letter draw seed, 0 for clock (overrides PAROLIERE_SEED)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides PAROLIERE_LOG_LEVEL)")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overlays explicitly given flags on cfg.
func (f cliFlags) apply(cfg *config.Config) error {
	if f.set["assets"] {
		cfg.AssetsDir = f.assets
	}
	if f.set["round"] {
		cfg.RoundSeconds = f.round
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	return cfg.Validate()
}

type bootstrap struct {
	cfg     *config.Config
	log     *zap.Logger
	dict    *dictionary.Dictionary
	options game.Options
}

// setup loads configuration, builds the logger and reads the word lists.
// The returned logger is valid whenever err is nil.
func setup(f cliFlags) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := f.apply(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, err
	}

	dict, err := dictionary.Load(log, cfg.WordListPaths()...)
	if err != nil {
		return &bootstrap{cfg: cfg, log: log}, fmt.Errorf("load dictionary: %w", err)
	}
	log.Info("dictionary ready", zap.Int("words", dict.Len()))

	return &bootstrap{
		cfg:  cfg,
		log:  log,
		dict: dict,
		options: game.Options{
			RoundDuration: cfg.RoundDuration(),
			Seed:          cfg.Seed,
			Hinter:        hint.New(dict),
			Logger:        log,
		},
	}, nil
}

// fail logs err through the best logger available and exits 1.
func fail(boot *bootstrap, err error) {
	if boot == nil || boot.log == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	boot.log.Error("paroliere stopped", zap.Error(err))
	_ = boot.log.Sync()
	os.Exit(1)
}
