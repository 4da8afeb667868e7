//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Dump prints the text grid to stdout when the run ends.
	Dump bool
	// Snapshot, if set, is the path of a PNG rendering of the final grid.
	Snapshot string
}

// RunHeadless runs the OS without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := New().(*hostHAL)
	err := runHeadless(ctx, h, newApp, cfg)
	if ferr := finishHeadless(h, cfg); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func finishHeadless(h *hostHAL, cfg HeadlessConfig) error {
	if cfg.Dump {
		if err := DumpText(os.Stdout, h.text, IsTerminal(os.Stdout)); err != nil {
			return fmt.Errorf("dump text: %w", err)
		}
	}
	if cfg.Snapshot != "" {
		if err := SaveSnapshot(cfg.Snapshot, h.text); err != nil {
			return fmt.Errorf("snapshot %s: %w", cfg.Snapshot, err)
		}
	}
	return nil
}
