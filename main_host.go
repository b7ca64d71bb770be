//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"garden/app"
	"garden/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var terminal bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&terminal, "terminal", false, "Render the watch face in the terminal.")
	flag.StringVar(&appCfg.Variant, "variant", "full", "Garden variant: full or minimal.")
	flag.BoolVar(&appCfg.Chime, "chime", false, "Ring a short tone on every minute reset.")
	flag.Parse()

	if _, err := app.Variant(appCfg.Variant); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg)
	}

	if cfg.Enabled || terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var err error
		if terminal {
			err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: cfg.Hz})
		} else {
			err = hal.RunHeadless(ctx, newApp, cfg)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
