package ppu

import "gones/internal/snapshot"

// Serialize writes every piece of mutable PPU state: registers, loopy
// scroll state, OAM, sprite pipeline, background shifters, NMI edge
// state, and the current frame buffer.
func (p *PPU) Serialize(w *snapshot.Writer) {
	w.WriteU8(p.ppuCtrl)
	w.WriteU8(p.ppuMask)
	w.WriteU8(p.ppuStatus)
	w.WriteU8(p.oamAddr)

	w.WriteU16(p.v)
	w.WriteU16(p.t)
	w.WriteU8(p.x)
	w.WriteBool(p.w)

	w.WriteU64(uint64(int64(p.scanline)))
	w.WriteU64(uint64(int64(p.cycle)))
	w.WriteU64(p.frameCount)
	w.WriteBool(p.oddFrame)

	w.WriteU8(p.readBuffer)

	w.WriteBytes(p.oam[:])
	w.WriteBytes(p.secondaryOAM[:])

	w.WriteU8(p.spriteCount)
	w.WriteBytes(p.spritePatternLow[:])
	w.WriteBytes(p.spritePatternHigh[:])
	w.WriteBytes(p.spriteXCounter[:])
	w.WriteBytes(p.spriteAttributes[:])
	for _, v := range p.spriteIsZero {
		w.WriteBool(v)
	}

	w.WriteBool(p.spriteOverflow)
	w.WriteBool(p.sprite0Hit)

	w.WriteU16(p.tileShiftLow)
	w.WriteU16(p.tileShiftHigh)
	w.WriteU16(p.attrShiftLow)
	w.WriteU16(p.attrShiftHigh)

	w.WriteU8(p.nextTileID)
	w.WriteU8(p.nextAttribute)
	w.WriteU8(p.nextPatternLow)
	w.WriteU8(p.nextPatternHigh)

	w.WriteBool(p.nmiOutput)
	w.WriteBool(p.nmiOccurred)
	w.WriteBool(p.nmiPrevious)
	w.WriteBool(p.nmiEdgeLatch)

	w.WriteU64(p.cycleCount)

	w.WriteBytes(p.frameBuffer[:])
}

// Deserialize restores everything Serialize wrote, then recomputes the
// cached rendering-enabled flags from the restored ppuMask.
func (p *PPU) Deserialize(r *snapshot.Reader) error {
	p.ppuCtrl = r.ReadU8()
	p.ppuMask = r.ReadU8()
	p.ppuStatus = r.ReadU8()
	p.oamAddr = r.ReadU8()

	p.v = r.ReadU16()
	p.t = r.ReadU16()
	p.x = r.ReadU8()
	p.w = r.ReadBool()

	p.scanline = int(int64(r.ReadU64()))
	p.cycle = int(int64(r.ReadU64()))
	p.frameCount = r.ReadU64()
	p.oddFrame = r.ReadBool()

	p.readBuffer = r.ReadU8()

	copy(p.oam[:], r.ReadBytes())
	copy(p.secondaryOAM[:], r.ReadBytes())

	p.spriteCount = r.ReadU8()
	copy(p.spritePatternLow[:], r.ReadBytes())
	copy(p.spritePatternHigh[:], r.ReadBytes())
	copy(p.spriteXCounter[:], r.ReadBytes())
	copy(p.spriteAttributes[:], r.ReadBytes())
	for i := range p.spriteIsZero {
		p.spriteIsZero[i] = r.ReadBool()
	}

	p.spriteOverflow = r.ReadBool()
	p.sprite0Hit = r.ReadBool()

	p.tileShiftLow = r.ReadU16()
	p.tileShiftHigh = r.ReadU16()
	p.attrShiftLow = r.ReadU16()
	p.attrShiftHigh = r.ReadU16()

	p.nextTileID = r.ReadU8()
	p.nextAttribute = r.ReadU8()
	p.nextPatternLow = r.ReadU8()
	p.nextPatternHigh = r.ReadU8()

	p.nmiOutput = r.ReadBool()
	p.nmiOccurred = r.ReadBool()
	p.nmiPrevious = r.ReadBool()
	p.nmiEdgeLatch = r.ReadBool()

	p.cycleCount = r.ReadU64()

	copy(p.frameBuffer[:], r.ReadBytes())

	p.updateRenderingFlags()
	return r.Err()
}
