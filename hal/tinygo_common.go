//go:build tinygo

package hal

import "runtime"

// spinIterations is the number of loop turns per pause unit.
const spinIterations = 10_000_000

type spinDelay struct{}

// Pause busy-waits. There is no timer interrupt to sleep on.
func (spinDelay) Pause(units uint64) {
	for i := uint64(0); i < units*spinIterations; i++ {
		runtime.KeepAlive(i)
	}
}

type printLogger struct{}

func (printLogger) WriteLineString(s string) {
	println(s)
}

func (printLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
