//go:build cgo

package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/paroliere/internal/gui"
	"github.com/appengine-ltd/paroliere/internal/ui"
)

func main() {
	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if flags.showVersion {
		fmt.Printf("Paroliere %s (%s) %s\n", version, commit, date)
		return
	}

	boot, err := setup(flags)
	if err != nil {
		fail(boot, err)
	}
	defer func() { _ = boot.log.Sync() }()

	if flags.classic {
		err = ui.NewApp(ui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Lexicon:   boot.dict,
			Options:   boot.options,
			Logger:    boot.log,
		}).Run()
	} else {
		err = gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Config:    boot.cfg,
			Lexicon:   boot.dict,
			Options:   boot.options,
			Logger:    boot.log,
		}).Run()
	}
	if err != nil {
		fail(boot, err)
	}
}
