package app

import (
	"errors"

	"iberos/hal"
	"iberos/internal/buildinfo"
	"iberos/kernel"
	"iberos/vga"
)

// DefaultPauseTicks is one pause unit at the host's 60Hz step rate.
const DefaultPauseTicks = 60

// ErrHalted is returned by the step function after a kernel panic.
var ErrHalted = errors.New("system halted")

type Config struct {
	// PauseTicks is how many steps one pause unit lasts. Zero runs every
	// stage back to back.
	PauseTicks uint64
}

type system struct {
	h   hal.HAL
	cfg Config
	log hal.Logger
	w   *vga.Writer
	k   *kernel.System

	panicker *kernel.Panicker
	procs    demoProcs

	script []stage
	next   int
	wait   uint64
	halted bool
}

// New initializes the OS with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{PauseTicks: DefaultPauseTicks})
}

// NewWithConfig initializes the OS and returns its step function. Each call
// advances the boot script by at most one stage.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

// Run boots the OS, pausing with the HAL delay between stages, and then
// blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	s := newSystem(h, Config{})
	for !s.done() {
		pause := s.script[s.next].pause
		if err := s.step(); err != nil {
			break
		}
		if d := h.Delay(); d != nil {
			d.Pause(pause)
		}
	}
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{
		h:      h,
		cfg:    cfg,
		log:    h.Logger(),
		w:      vga.NewWriter(h.Text()),
		script: bootScript,
	}
	s.k = kernel.NewSystem(s.log)
	installPanicHandler(s)

	s.logLine("iberOS " + buildinfo.Long() + " starting")
	s.procs = spawnDemoProcs(s.k)
	return s
}

func (s *system) done() bool {
	return s.halted || s.next >= len(s.script)
}

func (s *system) step() (err error) {
	if s.halted {
		return ErrHalted
	}
	defer func() {
		if s.panicker.Active() {
			s.halted = true
			err = ErrHalted
		}
	}()
	defer s.panicker.Recover()

	if s.wait > 0 {
		s.wait--
		return nil
	}
	if s.next >= len(s.script) {
		return nil
	}

	st := s.script[s.next]
	s.next++
	s.logLine("boot: " + st.name)
	st.run(s)
	s.wait = st.pause * s.cfg.PauseTicks
	return nil
}

func (s *system) logLine(line string) {
	if s.log != nil {
		s.log.WriteLineString(line)
	}
}
