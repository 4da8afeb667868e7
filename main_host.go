//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"iberos/app"
	"iberos/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Step rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Dump, "dump", false, "Print the text screen to stdout when a headless run ends.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write a PNG of the text screen to this path when a headless run ends.")
	flag.Uint64Var(&appCfg.PauseTicks, "pause", app.DefaultPauseTicks, "Steps per pause unit between boot screens.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
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
		if errors.Is(err, hal.ErrNotImplemented) {
			fmt.Fprintln(os.Stderr, "hint: run with -headless")
		}
		os.Exit(1)
	}
}
