// Package bus implements the system bus connecting the CPU, PPU, APU,
// memory, and input subsystems, and drives the cooperative-stepping
// loop between them.
package bus

import (
	"gones/internal/apu"
	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/input"
	"gones/internal/memory"
	"gones/internal/ppu"
)

// irqCartridge is the subset of cartridge.Mapper behavior the bus
// drives directly: a scanline counter clock and a level-triggered IRQ
// line (MMC3). Cartridges without one (NROM, UxROM) satisfy it with
// no-ops.
type irqCartridge interface {
	ScanlineTick()
	IRQPending() bool
}

// irqLine aggregates the APU's frame/DMC IRQ with the cartridge
// mapper's IRQ into the single level the CPU polls.
type irqLine struct {
	apu  *apu.APU
	cart irqCartridge
}

func (l *irqLine) IRQPending() bool {
	if l.apu.IRQPending() {
		return true
	}
	return l.cart != nil && l.cart.IRQPending()
}

// memoryBus adapts Memory.Read to the APU's DMC sample-fetch interface.
type memoryBus struct {
	mem *memory.Memory
}

func (b *memoryBus) ReadByte(address uint16) uint8 {
	return b.mem.Read(address)
}

// Bus connects all NES components together and steps them in lockstep.
type Bus struct {
	CPU    *cpu.CPU
	PPU    *ppu.PPU
	APU    *apu.APU
	Memory *memory.Memory
	Input  *input.InputState

	cartridge irqCartridge

	cpuCycles  uint64
	frameCount uint64

	dmaInProgress bool

	executionLog   []BusExecutionEvent
	loggingEnabled bool

	memoryWatchpoints map[uint16]uint8
	watchpointLogging bool
}

// New creates a system bus with no cartridge loaded; LoadCartridge must
// be called before Step.
func New() *Bus {
	b := &Bus{
		PPU:   ppu.New(),
		APU:   apu.New(),
		Input: input.NewInputState(),

		memoryWatchpoints: make(map[uint16]uint8),
	}

	b.Memory = memory.New(b.PPU, b.APU, nil)
	b.Memory.SetInputSystem(b.Input)
	b.Memory.SetDMACallback(b.TriggerOAMDMA)
	b.APU.SetBus(&memoryBus{mem: b.Memory})

	b.CPU = cpu.New(b.Memory)
	b.CPU.SetNMISource(b.PPU)
	b.CPU.SetIRQSource(&irqLine{apu: b.APU})

	b.PPU.SetFrameCompleteCallback(b.handleFrameComplete)

	b.Reset()
	return b
}

// Reset resets every component to its power-on state.
func (b *Bus) Reset() {
	b.CPU.Reset()
	b.PPU.Reset()
	b.APU.Reset()
	b.Input.Reset()

	b.cpuCycles = 0
	b.frameCount = 0
	b.dmaInProgress = false

	b.PPU.SetFrameCount(0)

	b.executionLog = b.executionLog[:0]
	b.memoryWatchpoints = make(map[uint16]uint8)
}

func (b *Bus) handleFrameComplete() {
	b.frameCount = b.PPU.GetFrameCount()
}

// LoadCartridge installs a cartridge, rebuilding memory and the CPU
// around it and wiring PPU nametable mirroring and the mapper's IRQ
// line.
func (b *Bus) LoadCartridge(cart memory.CartridgeInterface) {
	b.Memory = memory.New(b.PPU, b.APU, cart)
	b.Memory.SetInputSystem(b.Input)
	b.Memory.SetDMACallback(b.TriggerOAMDMA)
	b.APU.SetBus(&memoryBus{mem: b.Memory})

	b.CPU = cpu.New(b.Memory)
	b.CPU.SetNMISource(b.PPU)

	var mirror cartridge.MirrorMode
	if mc, ok := cart.(interface{ Mirroring() cartridge.MirrorMode }); ok {
		mirror = mc.Mirroring()
	}
	b.PPU.SetMemory(memory.NewPPUMemory(cart, mirror))

	if ic, ok := cart.(irqCartridge); ok {
		b.cartridge = ic
	} else {
		b.cartridge = nil
	}
	b.CPU.SetIRQSource(&irqLine{apu: b.APU, cart: b.cartridge})

	b.CPU.Reset()
}

// Step executes one CPU instruction (or burns all owed DMA-stall
// cycles at once) and advances the PPU 3x and the APU 1x per CPU cycle
// spent.
func (b *Bus) Step() {
	preFrameCount := b.frameCount
	prePC := b.CPU.PC
	preOpcode := b.Memory.Read(prePC)

	cpuCycles := b.CPU.Step()

	for i := uint64(0); i < cpuCycles*3; i++ {
		b.PPU.Step()
		if b.PPU.GetScanline() >= 0 && b.PPU.GetScanline() < 240 && b.PPU.GetCycle() == 260 && b.cartridge != nil {
			b.cartridge.ScanlineTick()
		}
	}

	for i := uint64(0); i < cpuCycles; i++ {
		b.APU.Step()
	}

	b.cpuCycles += cpuCycles

	if b.watchpointLogging {
		b.CheckMemoryWatchpoints()
	}

	if b.loggingEnabled {
		b.executionLog = append(b.executionLog, BusExecutionEvent{
			StepNumber:    len(b.executionLog) + 1,
			CPUCycles:     b.cpuCycles,
			PPUCycles:     b.cpuCycles * 3,
			FrameCount:    b.frameCount,
			DMAActive:     b.dmaInProgress,
			NMIProcessed:  b.frameCount > preFrameCount,
			PCValue:       prePC,
			InstructionOp: preOpcode,
		})
	}
}

// TriggerOAMDMA performs an OAM DMA transfer from sourcePage and
// charges the CPU the 513/514-cycle stall real hardware incurs,
// depending on whether the transfer starts on an odd CPU cycle.
func (b *Bus) TriggerOAMDMA(sourcePage uint8) {
	dmaCycles := uint64(513)
	if b.cpuCycles%2 == 1 {
		dmaCycles = 514
	}

	b.dmaInProgress = true
	sourceAddress := uint16(sourcePage) << 8
	for i := 0; i < 256; i++ {
		data := b.Memory.Read(sourceAddress + uint16(i))
		b.PPU.WriteOAM(uint8(i), data)
	}
	b.CPU.Stall(dmaCycles)
	b.dmaInProgress = false
}

// Run runs the emulator for the given number of frames.
func (b *Bus) Run(frames int) {
	target := b.frameCount + uint64(frames)
	for b.frameCount < target {
		b.Step()
	}
}

// RunCycles runs the emulator for the given number of CPU cycles.
func (b *Bus) RunCycles(cycles uint64) {
	target := b.cpuCycles + cycles
	for b.cpuCycles < target {
		b.Step()
	}
}

// Frame runs exactly one NTSC frame (29,781 CPU cycles).
func (b *Bus) Frame() {
	target := b.cpuCycles + 29781
	for b.cpuCycles < target {
		b.Step()
	}
}

// GetFrameRate returns the NTSC frame rate.
func (b *Bus) GetFrameRate() float64 {
	return 60.098803
}

// GetFrameBuffer returns the current ABGR8888 frame buffer.
func (b *Bus) GetFrameBuffer() []byte {
	return b.PPU.GetFrameBuffer()
}

// GetAudioSamples drains up to len(out) queued audio samples into out,
// zero-filling any remainder, and returns how many were genuine.
func (b *Bus) GetAudioSamples(out []float32) int {
	return b.APU.LoadSamples(out)
}

// SetAudioSampleRate sets the APU's target host sample rate.
func (b *Bus) SetAudioSampleRate(rate int) {
	b.APU.SetSampleRate(rate)
}

// GetCycleCount returns the cumulative CPU cycle count.
func (b *Bus) GetCycleCount() uint64 { return b.cpuCycles }

// GetFrameCount returns the cumulative completed frame count.
func (b *Bus) GetFrameCount() uint64 { return b.frameCount }

// IsDMAInProgress reports whether an OAM DMA transfer is underway.
func (b *Bus) IsDMAInProgress() bool { return b.dmaInProgress }

func (b *Bus) isRenderingEnabled() bool {
	return b.PPU.IsRenderingEnabled()
}

// SetControllerButton sets a single button on controller 1 or 2.
func (b *Bus) SetControllerButton(controller int, button input.Button, pressed bool) {
	switch controller {
	case 0, 1:
		b.Input.Controller1.SetButton(button, pressed)
	case 2:
		b.Input.Controller2.SetButton(button, pressed)
	}
}

// SetControllerButtons sets all eight buttons on controller 1 or 2.
func (b *Bus) SetControllerButtons(controller int, buttons [8]bool) {
	switch controller {
	case 0, 1:
		b.Input.SetButtons1(buttons)
	case 2:
		b.Input.SetButtons2(buttons)
	}
}

// EnableInputDebug enables debug logging on both controllers.
func (b *Bus) EnableInputDebug(enable bool) {
	b.Input.EnableDebug(enable)
}

// GetInputState returns the input state for direct access.
func (b *Bus) GetInputState() *input.InputState {
	return b.Input
}

// GetExecutionLog returns the recorded execution log.
func (b *Bus) GetExecutionLog() []BusExecutionEvent {
	return b.executionLog
}

// EnableExecutionLogging enables per-step execution logging.
func (b *Bus) EnableExecutionLogging() { b.loggingEnabled = true }

// DisableExecutionLogging disables per-step execution logging.
func (b *Bus) DisableExecutionLogging() { b.loggingEnabled = false }

// ClearExecutionLog clears the recorded execution log.
func (b *Bus) ClearExecutionLog() { b.executionLog = b.executionLog[:0] }

// BusExecutionEvent is one recorded Step call, used by tests that need
// to assert on instruction-level timing.
type BusExecutionEvent struct {
	StepNumber    int
	CPUCycles     uint64
	PPUCycles     uint64
	FrameCount    uint64
	DMAActive     bool
	NMIProcessed  bool
	PCValue       uint16
	InstructionOp uint8
}

// GetCPUState returns a snapshot of CPU registers and flags for tests.
func (b *Bus) GetCPUState() CPUState {
	return CPUState{
		PC:     b.CPU.PC,
		A:      b.CPU.A,
		X:      b.CPU.X,
		Y:      b.CPU.Y,
		SP:     b.CPU.SP,
		Cycles: b.cpuCycles,
		Flags: CPUFlags{
			N: b.CPU.N,
			V: b.CPU.V,
			B: b.CPU.B,
			D: b.CPU.D,
			I: b.CPU.I,
			Z: b.CPU.Z,
			C: b.CPU.C,
		},
	}
}

// CPUState is a CPU register/flag snapshot for tests.
type CPUState struct {
	PC      uint16
	A, X, Y uint8
	SP      uint8
	Cycles  uint64
	Flags   CPUFlags
}

// CPUFlags is a CPU status-flag snapshot for tests.
type CPUFlags struct {
	N, V, B, D, I, Z, C bool
}

// GetPPUState returns a snapshot of PPU timing state for tests.
func (b *Bus) GetPPUState() PPUState {
	return PPUState{
		Scanline:    b.PPU.GetScanline(),
		Cycle:       b.PPU.GetCycle(),
		FrameCount:  b.frameCount,
		VBlankFlag:  b.PPU.IsVBlank(),
		RenderingOn: b.isRenderingEnabled(),
	}
}

// PPUState is a PPU timing snapshot for tests.
type PPUState struct {
	Scanline    int
	Cycle       int
	FrameCount  uint64
	VBlankFlag  bool
	RenderingOn bool
}

// AddMemoryWatchpoint records address's current value so later changes
// can be detected by CheckMemoryWatchpoints.
func (b *Bus) AddMemoryWatchpoint(address uint16) {
	b.memoryWatchpoints[address] = b.Memory.Read(address)
}

// EnableWatchpointLogging enables or disables watchpoint change
// detection on every Step.
func (b *Bus) EnableWatchpointLogging(enabled bool) {
	b.watchpointLogging = enabled
}

// CheckMemoryWatchpoints updates the recorded value of every
// watchpoint, returning the set of addresses that changed since the
// last check.
func (b *Bus) CheckMemoryWatchpoints() []uint16 {
	var changed []uint16
	for address, previous := range b.memoryWatchpoints {
		current := b.Memory.Read(address)
		if current != previous {
			changed = append(changed, address)
			b.memoryWatchpoints[address] = current
		}
	}
	return changed
}

// EnableCPUDebug enables or disables CPU instruction tracing and
// infinite-loop detection.
func (b *Bus) EnableCPUDebug(enable bool) {
	b.CPU.EnableDebugLogging(enable)
	b.CPU.EnableLoopDetection(enable)
}
