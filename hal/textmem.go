//go:build !baremetal

package hal

import (
	"sync"
	"sync/atomic"
)

// TextMemory is a memory-backed TextBuffer for hosted builds.
//
// It stands in for the device buffer: a renderer snapshots it under the same
// lock that guards each store, so no store is ever lost or merged.
type TextMemory struct {
	mu     sync.Mutex
	width  int
	height int
	cells  []uint16
	stores atomic.Uint64
}

// NewTextMemory allocates a width x height grid of zero cells.
func NewTextMemory(width, height int) *TextMemory {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TextMemory{
		width:  width,
		height: height,
		cells:  make([]uint16, width*height),
	}
}

func (m *TextMemory) Width() int  { return m.width }
func (m *TextMemory) Height() int { return m.height }

func (m *TextMemory) inRange(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

func (m *TextMemory) Load(row, col int) uint16 {
	if !m.inRange(row, col) {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cells[row*m.width+col]
}

func (m *TextMemory) Store(row, col int, v uint16) {
	if !m.inRange(row, col) {
		return
	}
	m.mu.Lock()
	m.cells[row*m.width+col] = v
	m.mu.Unlock()
	m.stores.Add(1)
}

// Stores returns how many cell stores have reached the buffer.
func (m *TextMemory) Stores() uint64 {
	return m.stores.Load()
}

// Snapshot copies the grid into dst (row-major) and returns the number of
// cells copied.
func (m *TextMemory) Snapshot(dst []uint16) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copy(dst, m.cells)
}
