package app

import (
	"iberos/kernel"
	"iberos/vga"
)

// stage is one screen of the boot script. pause is in delay units and runs
// after the stage.
type stage struct {
	name  string
	run   func(*system)
	pause uint64
}

var bootScript = []stage{
	{name: "init", run: (*system).showInit, pause: 1},
	{name: "logo", run: (*system).showLogo, pause: 3},
	{name: "ipc", run: (*system).showProcesses, pause: 2},
	{name: "ipc-send", run: (*system).sendMessages, pause: 2},
	{name: "ipc-receive", run: (*system).receiveMessages, pause: 2},
	{name: "ipc-done", run: (*system).showIPCDone, pause: 2},
	{name: "ready", run: (*system).showReady},
}

func (s *system) showInit() {
	s.w.ClearScreen()
	s.w.Println("Initializing iberOS kernel...")
}

func (s *system) showLogo() {
	s.w.ClearScreen()
	s.w.PrintLogo()
	s.w.Println("\n\nWelcome to iberOS - A Go Microkernel")
	s.w.Println("----------------------------------")
}

func (s *system) showProcesses() {
	s.w.ClearScreen()
	s.w.PrintCentered("IPC Demonstration", vga.LightCyan)
	s.w.PrintCentered("-------------------", vga.LightGray)
	s.w.Println()

	s.w.Println("\nProcess Information:")
	for _, p := range s.procs.all() {
		s.w.Printf("  - %s: PID %d\n", p.label, p.proc.PID())
	}
}

func (s *system) sendMessages() {
	s.w.Println("\nSending messages between processes...")
	for _, m := range demoMessages {
		from, to := s.procs.get(m.from), s.procs.get(m.to)
		res := s.k.Send(from.proc.PID(), to.proc.PID(), m.kind, []byte(m.data))
		if res != kernel.SendOK {
			s.w.Printf("  - %s could not send to %s: %s\n", from.label, to.label, res)
			continue
		}
		s.w.Printf("  - %s sent message to %s\n", from.label, to.label)
	}
}

func (s *system) receiveMessages() {
	s.w.Println("\nProcessing received messages:")

	k := s.procs.get(roleKernel)
	if msg, ok := k.proc.Receive(); ok {
		s.printReceived(k, msg)
	}

	u := s.procs.get(roleUser)
	s.k.Drain(u.proc.PID(), func(msg kernel.Message) {
		s.printReceived(u, msg)
	})
}

func (s *system) printReceived(p demoProc, msg kernel.Message) {
	s.w.Printf("  - %s received %s from PID %d: \"%s\"\n", p.label, msg.Kind, msg.From, msg.Text())
}

func (s *system) showIPCDone() {
	s.w.Println("\nIPC Demonstration completed successfully!")
	s.w.Println("-----------------------------------")
}

func (s *system) showReady() {
	s.w.ClearScreen()
	s.w.PrintCentered("System initialized successfully!", vga.LightGreen)
	s.w.PrintCentered("----------------------------------", vga.LightGray)
	s.w.Print("\n\n\n")
	s.w.PrintCentered("[System paused - Press Ctrl+C to exit]", vga.Yellow)
}
