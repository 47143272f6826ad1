// Package ppu implements the Picture Processing Unit for the NES.
package ppu

import "gones/internal/memory"

// pollableNMI documents the contract PollNMI satisfies for the CPU's
// NMISource interface, without importing the cpu package.
type pollableNMI interface {
	PollNMI() bool
}

var _ pollableNMI = (*PPU)(nil)

// SpritePixel is the resolved color/priority of a single sprite-layer
// pixel, used when compositing against the background layer.
type SpritePixel struct {
	colorIndex   uint8
	paletteIndex uint8
	spriteIndex  int
	priority     bool
	isSpriteZero bool
	opaque       bool
}

// PPU emulates the 2C02: register file, loopy scroll registers, the
// background/sprite pixel pipeline, and the frame buffer.
type PPU struct {
	// CPU-visible registers.
	ppuCtrl   uint8
	ppuMask   uint8
	ppuStatus uint8
	oamAddr   uint8

	// Internal loopy scroll registers (see getCoarseX et al.).
	v uint16 // current VRAM address (15 bits)
	t uint16 // temporary VRAM address (15 bits)
	x uint8  // fine X scroll (3 bits)
	w bool   // write-toggle latch

	memory *memory.PPUMemory

	scanline   int // -1 (pre-render) .. 260
	cycle      int // 0..340
	frameCount uint64
	oddFrame   bool

	readBuffer uint8

	oam          [256]uint8
	secondaryOAM [32]uint8 // 8 sprites * 4 bytes

	// Sprite rendering shift state, loaded at the end of each scanline
	// for use during the next one.
	spriteCount       uint8
	spritePatternLow  [8]uint8
	spritePatternHigh [8]uint8
	spriteXCounter    [8]uint8
	spriteAttributes  [8]uint8
	spriteIsZero      [8]bool

	spriteOverflow bool
	sprite0Hit     bool

	// Background pipeline: 16-bit shift registers, shifted left once per
	// dot; a pixel reads bit (15 - fineX). Two bits of pattern data and
	// two bits of attribute/palette data per pixel make up the nominal
	// 64-bit background shifter (four 16-bit registers together).
	tileShiftLow  uint16
	tileShiftHigh uint16
	attrShiftLow  uint16
	attrShiftHigh uint16

	nextTileID      uint8
	nextAttribute   uint8
	nextPatternLow  uint8
	nextPatternHigh uint8

	// frameBuffer holds one ABGR8888 byte quad per pixel: A, B, G, R.
	frameBuffer [256 * 240 * 4]byte

	nmiOutput    bool // ppuCtrl bit 7, cached
	nmiOccurred  bool // vblank flag, mirrored for edge detection
	nmiPrevious  bool // edge-detector state
	nmiEdgeLatch bool // set on a 0->1 transition, consumed by PollNMI

	frameCompleteCallback func()

	backgroundEnabled bool
	spritesEnabled    bool
	renderingEnabled  bool

	cycleCount uint64
}

// New creates a PPU with no attached memory; call SetMemory before use.
func New() *PPU {
	return &PPU{scanline: -1}
}

// SetMemory attaches the PPU-side memory (pattern tables, nametables,
// palette RAM).
func (p *PPU) SetMemory(mem *memory.PPUMemory) {
	p.memory = mem
}

// Memory exposes the PPU's nametable/palette address space, used by
// the snapshot codec.
func (p *PPU) Memory() *memory.PPUMemory {
	return p.memory
}

// SetFrameCompleteCallback installs a callback fired once per completed
// frame, after the last visible scanline's pixels are written.
func (p *PPU) SetFrameCompleteCallback(callback func()) {
	p.frameCompleteCallback = callback
}

// Reset returns the PPU to its power-up state.
func (p *PPU) Reset() {
	p.ppuCtrl = 0
	p.ppuMask = 0
	p.ppuStatus = 0xA0
	p.oamAddr = 0
	p.v, p.t = 0, 0
	p.x = 0
	p.w = false
	p.scanline = -1
	p.cycle = 0
	p.frameCount = 0
	p.oddFrame = false
	p.readBuffer = 0
	p.oam = [256]uint8{}
	p.secondaryOAM = [32]uint8{}
	p.spriteCount = 0
	p.spriteOverflow = false
	p.sprite0Hit = false
	p.tileShiftLow, p.tileShiftHigh = 0, 0
	p.attrShiftLow, p.attrShiftHigh = 0, 0
	p.nmiOutput, p.nmiOccurred, p.nmiPrevious, p.nmiEdgeLatch = false, false, false, false
	p.updateRenderingFlags()
	p.ClearFrameBuffer(0)
}

// ReadRegister handles a CPU read of $2000-$2007 (mirrored every 8 bytes).
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address & 0x0007 {
	case 0x0002: // PPUSTATUS
		value := p.ppuStatus
		p.ppuStatus &^= 0x80 // clear vblank
		p.nmiOccurred = false
		p.w = false
		return value
	case 0x0004: // OAMDATA
		return p.oam[p.oamAddr]
	case 0x0007: // PPUDATA
		return p.readPPUData()
	default:
		return 0
	}
}

// WriteRegister handles a CPU write of $2000-$2007 (mirrored every 8 bytes).
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address & 0x0007 {
	case 0x0000: // PPUCTRL
		p.ppuCtrl = value
		p.t = (p.t & 0xF3FF) | (uint16(value&0x03) << 10)
		p.nmiOutput = value&0x80 != 0
	case 0x0001: // PPUMASK
		p.ppuMask = value
		p.updateRenderingFlags()
	case 0x0003: // OAMADDR
		p.oamAddr = value
	case 0x0004: // OAMDATA
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 0x0005: // PPUSCROLL
		p.writePPUScroll(value)
	case 0x0006: // PPUADDR
		p.writePPUAddr(value)
	case 0x0007: // PPUDATA
		p.writePPUData(value)
	}
}

// WriteOAM writes a single OAM byte, used by OAM DMA.
func (p *PPU) WriteOAM(address uint8, value uint8) {
	p.oam[address] = value
}

// updateRenderingFlags recomputes the cached enable flags from ppuMask.
func (p *PPU) updateRenderingFlags() {
	p.backgroundEnabled = p.ppuMask&0x08 != 0
	p.spritesEnabled = p.ppuMask&0x10 != 0
	p.renderingEnabled = p.backgroundEnabled || p.spritesEnabled
}

// Step advances the PPU by a single dot (cycle). The caller (the bus) is
// responsible for calling this three times per CPU cycle.
func (p *PPU) Step() {
	p.cycleCount++

	if p.scanline >= -1 && p.scanline < 240 {
		p.renderingTick()
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.enterVBlank()
	}

	p.advanceDot()
}

func (p *PPU) enterVBlank() {
	p.ppuStatus |= 0x80
	p.nmiOccurred = true
	if p.frameCompleteCallback != nil {
		p.frameCompleteCallback()
	}
}

// advanceDot moves (cycle, scanline) to the next position, handling the
// end-of-scanline and end-of-frame wraps and the odd-frame skipped dot.
func (p *PPU) advanceDot() {
	if p.scanline == -1 && p.cycle == 1 {
		p.ppuStatus &^= 0x80 | 0x40 | 0x20
		p.nmiOccurred = false
	}

	p.cycle++

	if p.scanline == -1 && p.cycle == 340 && p.oddFrame && p.renderingEnabled {
		p.cycle = 341
	}

	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameCount++
			p.oddFrame = !p.oddFrame
		}
	}

	p.updateNMILine()
}

// updateNMILine recomputes the NMI output line and latches a rising edge
// for PollNMI to consume.
func (p *PPU) updateNMILine() {
	line := p.nmiOutput && p.nmiOccurred
	if line && !p.nmiPrevious {
		p.nmiEdgeLatch = true
	}
	p.nmiPrevious = line
}

// PollNMI reports and clears a pending NMI edge. Implements cpu.NMISource.
func (p *PPU) PollNMI() bool {
	if p.nmiEdgeLatch {
		p.nmiEdgeLatch = false
		return true
	}
	return false
}

// renderingTick runs the per-dot background fetch pipeline, sprite
// evaluation, and pixel output for visible and pre-render scanlines.
func (p *PPU) renderingTick() {
	if !p.renderingEnabled {
		return
	}

	fetchWindow := (p.cycle >= 1 && p.cycle <= 256) || (p.cycle >= 321 && p.cycle <= 336)
	if fetchWindow {
		p.backgroundFetchStep()
	}

	if p.cycle >= 1 && p.cycle <= 256 && p.scanline >= 0 {
		p.renderPixel(p.cycle-1, p.scanline)
	}

	if p.cycle == 256 {
		p.incrementY()
	}
	if p.cycle == 257 {
		p.copyX()
		p.loadSpritesForScanline(p.scanline + 1)
	}
	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 {
		p.copyY()
	}
}

// backgroundFetchStep runs the classic 8-dot nametable/attribute/pattern
// fetch sequence and shifts the background registers every dot.
func (p *PPU) backgroundFetchStep() {
	p.shiftBackgroundRegisters()

	switch p.cycle % 8 {
	case 1:
		p.reloadBackgroundShifters()
		p.nextTileID = p.memory.Read(0x2000 | (p.v & 0x0FFF))
	case 3:
		address := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		attr := p.memory.Read(address)
		shift := ((p.v >> 4) & 4) | (p.v & 2)
		p.nextAttribute = (attr >> shift) & 0x03
	case 5:
		base := uint16(0x0000)
		if p.ppuCtrl&0x10 != 0 {
			base = 0x1000
		}
		address := base + uint16(p.nextTileID)*16 + p.getFineY()
		p.nextPatternLow = p.memory.Read(address)
	case 7:
		base := uint16(0x0000)
		if p.ppuCtrl&0x10 != 0 {
			base = 0x1000
		}
		address := base + uint16(p.nextTileID)*16 + p.getFineY() + 8
		p.nextPatternHigh = p.memory.Read(address)
	case 0:
		p.incrementX()
	}
}

func (p *PPU) reloadBackgroundShifters() {
	p.tileShiftLow = (p.tileShiftLow & 0xFF00) | uint16(p.nextPatternLow)
	p.tileShiftHigh = (p.tileShiftHigh & 0xFF00) | uint16(p.nextPatternHigh)

	var lowFill, highFill uint16
	if p.nextAttribute&0x01 != 0 {
		lowFill = 0x00FF
	}
	if p.nextAttribute&0x02 != 0 {
		highFill = 0x00FF
	}
	p.attrShiftLow = (p.attrShiftLow & 0xFF00) | lowFill
	p.attrShiftHigh = (p.attrShiftHigh & 0xFF00) | highFill
}

func (p *PPU) shiftBackgroundRegisters() {
	p.tileShiftLow <<= 1
	p.tileShiftHigh <<= 1
	p.attrShiftLow <<= 1
	p.attrShiftHigh <<= 1
}

// loadSpritesForScanline evaluates which of the 64 OAM sprites are
// visible on targetScanline and loads their pattern/attribute/x-counter
// shift state, ready for use when that scanline is rendered.
func (p *PPU) loadSpritesForScanline(targetScanline int) {
	p.secondaryOAM = [32]uint8{}
	p.spriteCount = 0
	p.spriteOverflow = false

	height := 8
	if p.ppuCtrl&0x20 != 0 {
		height = 16
	}

	if targetScanline < 0 || targetScanline > 255 {
		for i := range p.spriteXCounter {
			p.spriteXCounter[i] = 0xFF
		}
		return
	}

	found := 0
	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := targetScanline - y
		if row < 0 || row >= height {
			continue
		}
		if found < 8 {
			base := found * 4
			p.secondaryOAM[base+0] = p.oam[i*4+0]
			p.secondaryOAM[base+1] = p.oam[i*4+1]
			p.secondaryOAM[base+2] = p.oam[i*4+2]
			p.secondaryOAM[base+3] = p.oam[i*4+3]
			p.spriteIsZero[found] = i == 0
			found++
		} else {
			p.spriteOverflow = true
			p.ppuStatus |= 0x20
			break
		}
	}
	p.spriteCount = uint8(found)

	for i := 0; i < found; i++ {
		y := p.secondaryOAM[i*4+0]
		tileIndex := p.secondaryOAM[i*4+1]
		attributes := p.secondaryOAM[i*4+2]
		x := p.secondaryOAM[i*4+3]

		row := targetScanline - int(y)
		if attributes&0x80 != 0 { // vertical flip
			row = height - 1 - row
		}

		var address uint16
		if height == 16 {
			table := uint16(tileIndex&0x01) * 0x1000
			tile := uint16(tileIndex &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
			address = table + tile*16 + uint16(row)
		} else {
			base := uint16(0x0000)
			if p.ppuCtrl&0x08 != 0 {
				base = 0x1000
			}
			address = base + uint16(tileIndex)*16 + uint16(row)
		}

		low := p.memory.Read(address)
		high := p.memory.Read(address + 8)
		if attributes&0x40 != 0 { // horizontal flip
			low = reverseBits(low)
			high = reverseBits(high)
		}

		p.spritePatternLow[i] = low
		p.spritePatternHigh[i] = high
		p.spriteAttributes[i] = attributes
		p.spriteXCounter[i] = x
	}
	for i := found; i < 8; i++ {
		p.spritePatternLow[i] = 0
		p.spritePatternHigh[i] = 0
		p.spriteXCounter[i] = 0xFF
		p.spriteIsZero[i] = false
	}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// renderPixel resolves the background and sprite layers at (x, y) and
// writes the composited color into the frame buffer.
func (p *PPU) renderPixel(x, y int) {
	bgColorIndex, bgPaletteIndex, bgOpaque := p.backgroundPixel(x)
	sprite := p.spritePixel(x)

	var finalColorIndex uint16

	switch {
	case !bgOpaque && !sprite.opaque:
		finalColorIndex = 0x3F00
	case !bgOpaque && sprite.opaque:
		finalColorIndex = 0x3F10 + uint16(sprite.paletteIndex)*4 + uint16(sprite.colorIndex)
	case bgOpaque && !sprite.opaque:
		finalColorIndex = 0x3F00 + uint16(bgPaletteIndex)*4 + uint16(bgColorIndex)
	default:
		if sprite.priority {
			finalColorIndex = 0x3F00 + uint16(bgPaletteIndex)*4 + uint16(bgColorIndex)
		} else {
			finalColorIndex = 0x3F10 + uint16(sprite.paletteIndex)*4 + uint16(sprite.colorIndex)
		}
		p.evaluateSprite0Hit(x, sprite, bgOpaque)
	}

	nesColor := p.memory.Read(finalColorIndex) & 0x3F
	p.writePixel(x, y, nesColor)

	p.shiftSpriteRegisters()
}

// backgroundPixel reads the background shift registers at fine X scroll.
func (p *PPU) backgroundPixel(x int) (colorIndex, paletteIndex uint8, opaque bool) {
	if !p.backgroundEnabled || (x < 8 && p.ppuMask&0x02 == 0) {
		return 0, 0, false
	}

	shift := uint(15 - p.x)
	low := (p.tileShiftLow >> shift) & 1
	high := (p.tileShiftHigh >> shift) & 1
	colorIndex = uint8(high<<1 | low)

	attrLow := (p.attrShiftLow >> shift) & 1
	attrHigh := (p.attrShiftHigh >> shift) & 1
	paletteIndex = uint8(attrHigh<<1 | attrLow)

	return colorIndex, paletteIndex, colorIndex != 0
}

// spritePixel returns the highest-priority active sprite's pixel, if any.
func (p *PPU) spritePixel(x int) SpritePixel {
	result := SpritePixel{}
	if !p.spritesEnabled || (x < 8 && p.ppuMask&0x04 == 0) {
		return result
	}

	for i := 0; i < int(p.spriteCount); i++ {
		if p.spriteXCounter[i] != 0 {
			continue
		}
		high := (p.spritePatternHigh[i] >> 7) & 1
		low := (p.spritePatternLow[i] >> 7) & 1
		colorIndex := (high << 1) | low
		if colorIndex == 0 {
			continue
		}
		if !result.opaque {
			result.opaque = true
			result.colorIndex = colorIndex
			result.paletteIndex = p.spriteAttributes[i] & 0x03
			result.priority = p.spriteAttributes[i]&0x20 != 0
			result.spriteIndex = i
			result.isSpriteZero = p.spriteIsZero[i]
		}
	}
	return result
}

func (p *PPU) shiftSpriteRegisters() {
	for i := 0; i < int(p.spriteCount); i++ {
		if p.spriteXCounter[i] > 0 {
			p.spriteXCounter[i]--
			continue
		}
		p.spritePatternLow[i] <<= 1
		p.spritePatternHigh[i] <<= 1
	}
}

// evaluateSprite0Hit sets the sprite-zero-hit status flag the first time
// an opaque sprite-zero pixel overlaps an opaque background pixel.
func (p *PPU) evaluateSprite0Hit(x int, sprite SpritePixel, bgOpaque bool) {
	if p.sprite0Hit || !sprite.isSpriteZero || !bgOpaque || !sprite.opaque {
		return
	}
	if !p.backgroundEnabled || !p.spritesEnabled {
		return
	}
	if x == 255 {
		return
	}
	if x < 8 && (p.ppuMask&0x02 == 0 || p.ppuMask&0x04 == 0) {
		return
	}
	p.sprite0Hit = true
	p.ppuStatus |= 0x40
}

func (p *PPU) writePPUScroll(value uint8) {
	if !p.w {
		p.t = (p.t & 0xFFE0) | uint16(value>>3)
		p.x = value & 0x07
	} else {
		p.t = (p.t & 0x8FFF) | (uint16(value&0x07) << 12)
		p.t = (p.t & 0xFC1F) | (uint16(value&0xF8) << 2)
	}
	p.w = !p.w
}

func (p *PPU) writePPUAddr(value uint8) {
	if !p.w {
		p.t = (p.t & 0x00FF) | (uint16(value&0x3F) << 8)
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) readPPUData() uint8 {
	address := p.v & 0x3FFF
	var value uint8
	if address >= 0x3F00 {
		value = p.memory.Read(address)
		p.readBuffer = p.memory.Read(address - 0x1000)
	} else {
		value = p.readBuffer
		p.readBuffer = p.memory.Read(address)
	}
	p.advanceVRAMAddress()
	return value
}

func (p *PPU) writePPUData(value uint8) {
	p.memory.Write(p.v&0x3FFF, value)
	p.advanceVRAMAddress()
}

func (p *PPU) advanceVRAMAddress() {
	if p.ppuCtrl&0x04 != 0 {
		p.v += 32
	} else {
		p.v++
	}
}

// Loopy scroll register helpers, per the well-known NESDEV decomposition
// of the 15-bit v/t registers: yyy NN YYYYY XXXXX.

func (p *PPU) getCoarseX() uint16   { return p.v & 0x001F }
func (p *PPU) getCoarseY() uint16   { return (p.v >> 5) & 0x001F }
func (p *PPU) getFineY() uint16     { return (p.v >> 12) & 0x0007 }
func (p *PPU) getNametable() uint16 { return (p.v >> 10) & 0x0003 }

func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
	} else {
		p.v &^= 0x7000
		y := (p.v >> 5) & 0x001F
		switch y {
		case 29:
			y = 0
			p.v ^= 0x0800
		case 31:
			y = 0
		default:
			y++
		}
		p.v = (p.v &^ 0x03E0) | (y << 5)
	}
}

func (p *PPU) copyX() {
	p.v = (p.v & 0xFBE0) | (p.t & 0x041F)
}

func (p *PPU) copyY() {
	p.v = (p.v & 0x841F) | (p.t & 0x7BE0)
}

// GetFrameBuffer returns the current ABGR8888 frame buffer.
func (p *PPU) GetFrameBuffer() []byte {
	return p.frameBuffer[:]
}

// ClearFrameBuffer fills the frame buffer with a single NES color index.
func (p *PPU) ClearFrameBuffer(nesColorIndex uint8) {
	r, g, b := paletteRGB(nesColorIndex)
	for i := 0; i < 256*240; i++ {
		base := i * 4
		p.frameBuffer[base+0] = 0xFF
		p.frameBuffer[base+1] = b
		p.frameBuffer[base+2] = g
		p.frameBuffer[base+3] = r
	}
}

func (p *PPU) writePixel(x, y int, nesColorIndex uint8) {
	r, g, b := paletteRGB(nesColorIndex)
	base := (y*256 + x) * 4
	p.frameBuffer[base+0] = 0xFF
	p.frameBuffer[base+1] = b
	p.frameBuffer[base+2] = g
	p.frameBuffer[base+3] = r
}

func (p *PPU) GetFrameCount() uint64      { return p.frameCount }
func (p *PPU) SetFrameCount(count uint64) { p.frameCount = count }
func (p *PPU) GetScanline() int           { return p.scanline }
func (p *PPU) GetCycle() int              { return p.cycle }
func (p *PPU) IsRenderingEnabled() bool   { return p.renderingEnabled }
func (p *PPU) IsVBlank() bool             { return p.ppuStatus&0x80 != 0 }
func (p *PPU) GetCycleCount() uint64      { return p.cycleCount }

// nesPalette holds the NTSC NES system palette as RGB triples, indexed by
// the 6-bit color index read back from palette RAM.
var nesPalette = [64][3]uint8{
	{0x66, 0x66, 0x66}, {0x00, 0x2A, 0x88}, {0x14, 0x12, 0xA7}, {0x3B, 0x00, 0xA4},
	{0x5C, 0x00, 0x7E}, {0x6E, 0x00, 0x40}, {0x6C, 0x06, 0x00}, {0x56, 0x1D, 0x00},
	{0x33, 0x35, 0x00}, {0x0B, 0x48, 0x00}, {0x00, 0x52, 0x00}, {0x00, 0x4F, 0x08},
	{0x00, 0x40, 0x4D}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xAD, 0xAD, 0xAD}, {0x15, 0x5F, 0xD9}, {0x42, 0x40, 0xFF}, {0x75, 0x27, 0xFE},
	{0xA0, 0x1A, 0xCC}, {0xB7, 0x1E, 0x7B}, {0xB5, 0x31, 0x20}, {0x99, 0x4E, 0x00},
	{0x6B, 0x6D, 0x00}, {0x38, 0x87, 0x00}, {0x0C, 0x93, 0x00}, {0x00, 0x8F, 0x32},
	{0x00, 0x7C, 0x8D}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFE, 0xFF}, {0x64, 0xB0, 0xFF}, {0x92, 0x90, 0xFF}, {0xC6, 0x76, 0xFF},
	{0xF3, 0x6A, 0xFF}, {0xFE, 0x6E, 0xCC}, {0xFE, 0x81, 0x70}, {0xEA, 0x9E, 0x22},
	{0xBC, 0xBE, 0x00}, {0x88, 0xD8, 0x00}, {0x5C, 0xE4, 0x30}, {0x45, 0xE0, 0x82},
	{0x48, 0xCD, 0xDE}, {0x4F, 0x4F, 0x4F}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFE, 0xFF}, {0xC0, 0xDF, 0xFF}, {0xD3, 0xD2, 0xFF}, {0xE8, 0xC8, 0xFF},
	{0xFB, 0xC2, 0xFF}, {0xFE, 0xC4, 0xEA}, {0xFE, 0xCC, 0xC5}, {0xF7, 0xD8, 0xA5},
	{0xE4, 0xE5, 0x94}, {0xCF, 0xEF, 0x96}, {0xBD, 0xF4, 0xAB}, {0xB3, 0xF3, 0xCC},
	{0xB5, 0xEB, 0xF2}, {0xB8, 0xB8, 0xB8}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

func paletteRGB(nesColorIndex uint8) (r, g, b uint8) {
	entry := nesPalette[nesColorIndex&0x3F]
	return entry[0], entry[1], entry[2]
}
