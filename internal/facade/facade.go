// Package facade exposes the headless emulator surface: load a ROM,
// advance one frame at a time, read the framebuffer and audio queue,
// set button state, and snapshot/restore the whole machine. It is the
// one entry point a host (a GUI shell, a test harness, a tool) needs;
// it owns no window, no audio device, and no file I/O.
package facade

import (
	"bytes"

	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/input"
)

// Core is a complete, headless NES emulator instance.
type Core struct {
	bus *bus.Bus
}

// NewFromROM parses an iNES image, selects its mapper, and resets the
// CPU through the reset vector. This is the only operation that resets
// CPU registers; every later operation just keeps running.
func NewFromROM(romBytes []byte) (*Core, error) {
	cart, err := cartridge.LoadFromReader(bytes.NewReader(romBytes))
	if err != nil {
		return nil, err
	}

	b := bus.New()
	b.LoadCartridge(cart)
	return &Core{bus: b}, nil
}

// AdvanceFrame runs the CPU, PPU, and APU in lockstep until the PPU
// completes one frame.
func (c *Core) AdvanceFrame() {
	targetFrame := c.bus.GetFrameCount() + 1
	for c.bus.GetFrameCount() < targetFrame {
		c.bus.Step()
	}
}

// FrameBuffer returns the current 256x240 ABGR8888 frame, row-major,
// top-left origin. The returned slice aliases the core's internal
// buffer and is only valid until the next AdvanceFrame call.
func (c *Core) FrameBuffer() []byte {
	return c.bus.GetFrameBuffer()
}

// LoadSamples fills out with queued audio samples, zero-filling any
// remainder on ring-buffer underflow, and returns how many were
// genuinely available.
func (c *Core) LoadSamples(out []float32) int {
	return c.bus.GetAudioSamples(out)
}

// SetButton sets one of controller 1's eight buttons, in NES order:
// A, B, Select, Start, Up, Down, Left, Right (index 0..=7).
func (c *Core) SetButton(index uint8, pressed bool) {
	if index > 7 {
		return
	}
	c.bus.SetControllerButton(1, input.Button(1<<index), pressed)
}

// Serialize writes a complete snapshot: ROM bytes and header fields,
// mapper-specific state, PPU state, controller state, RAM, and CPU
// registers, in that fixed order.
func (c *Core) Serialize() ([]byte, error) {
	return c.bus.Serialize()
}

// Deserialize replaces the entire emulator state from a byte stream
// produced by Serialize. A corrupted or truncated stream fails cleanly
// and returns a *snapshot.DecodeError without mutating any state.
func (c *Core) Deserialize(data []byte) error {
	return c.bus.Deserialize(data)
}
