package apu

import "gones/internal/snapshot"

// Serialize writes every channel's register and internal counter state
// plus the frame counter. The sample ring buffer is not part of the
// snapshot: it holds already-consumed audio history, not emulation
// state, and is empty again within one frame of resuming.
func (apu *APU) Serialize(w *snapshot.Writer) {
	serializePulse(w, &apu.pulse1)
	serializePulse(w, &apu.pulse2)
	serializeTriangle(w, &apu.triangle)
	serializeNoise(w, &apu.noise)
	serializeDMC(w, &apu.dmc)

	w.WriteU16(apu.frameCounter)
	w.WriteBool(apu.frameMode)
	w.WriteBool(apu.frameIRQEnable)
	w.WriteU8(apu.frameCounterStep)
	w.WriteBool(apu.frameIRQFlag)

	for _, v := range apu.channelEnable {
		w.WriteBool(v)
	}

	w.WriteU64(apu.cycles)
}

// Deserialize restores everything Serialize wrote, leaving the sample
// ring buffer empty.
func (apu *APU) Deserialize(r *snapshot.Reader) error {
	deserializePulse(r, &apu.pulse1)
	deserializePulse(r, &apu.pulse2)
	deserializeTriangle(r, &apu.triangle)
	deserializeNoise(r, &apu.noise)
	deserializeDMC(r, &apu.dmc)

	apu.frameCounter = r.ReadU16()
	apu.frameMode = r.ReadBool()
	apu.frameIRQEnable = r.ReadBool()
	apu.frameCounterStep = r.ReadU8()
	apu.frameIRQFlag = r.ReadBool()

	for i := range apu.channelEnable {
		apu.channelEnable[i] = r.ReadBool()
	}

	apu.cycles = r.ReadU64()
	apu.samples = ringBuffer{}

	return r.Err()
}

func serializePulse(w *snapshot.Writer, p *PulseChannel) {
	w.WriteU8(p.dutyCycle)
	w.WriteBool(p.envelopeLoop)
	w.WriteBool(p.envelopeDisable)
	w.WriteU8(p.volume)
	w.WriteBool(p.sweepEnable)
	w.WriteU8(p.sweepPeriod)
	w.WriteBool(p.sweepNegate)
	w.WriteU8(p.sweepShift)
	w.WriteBool(p.sweepReload)
	w.WriteU8(p.sweepCounter)
	w.WriteU16(p.timer)
	w.WriteU16(p.timerCounter)
	w.WriteU8(p.lengthCounter)
	w.WriteBool(p.lengthHalt)
	w.WriteBool(p.envelopeStart)
	w.WriteU8(p.envelopeCounter)
	w.WriteU8(p.envelopeDivider)
	w.WriteU8(p.dutyIndex)
	w.WriteU8(p.output)
	w.WriteU8(p.sequencerPos)
}

func deserializePulse(r *snapshot.Reader, p *PulseChannel) {
	p.dutyCycle = r.ReadU8()
	p.envelopeLoop = r.ReadBool()
	p.envelopeDisable = r.ReadBool()
	p.volume = r.ReadU8()
	p.sweepEnable = r.ReadBool()
	p.sweepPeriod = r.ReadU8()
	p.sweepNegate = r.ReadBool()
	p.sweepShift = r.ReadU8()
	p.sweepReload = r.ReadBool()
	p.sweepCounter = r.ReadU8()
	p.timer = r.ReadU16()
	p.timerCounter = r.ReadU16()
	p.lengthCounter = r.ReadU8()
	p.lengthHalt = r.ReadBool()
	p.envelopeStart = r.ReadBool()
	p.envelopeCounter = r.ReadU8()
	p.envelopeDivider = r.ReadU8()
	p.dutyIndex = r.ReadU8()
	p.output = r.ReadU8()
	p.sequencerPos = r.ReadU8()
}

func serializeTriangle(w *snapshot.Writer, t *TriangleChannel) {
	w.WriteBool(t.lengthCounterHalt)
	w.WriteU8(t.linearCounterLoad)
	w.WriteU16(t.timer)
	w.WriteU16(t.timerCounter)
	w.WriteU8(t.lengthCounter)
	w.WriteU8(t.linearCounter)
	w.WriteBool(t.linearCounterReload)
	w.WriteU8(t.sequencerPos)
	w.WriteU8(t.output)
}

func deserializeTriangle(r *snapshot.Reader, t *TriangleChannel) {
	t.lengthCounterHalt = r.ReadBool()
	t.linearCounterLoad = r.ReadU8()
	t.timer = r.ReadU16()
	t.timerCounter = r.ReadU16()
	t.lengthCounter = r.ReadU8()
	t.linearCounter = r.ReadU8()
	t.linearCounterReload = r.ReadBool()
	t.sequencerPos = r.ReadU8()
	t.output = r.ReadU8()
}

func serializeNoise(w *snapshot.Writer, n *NoiseChannel) {
	w.WriteBool(n.envelopeLoop)
	w.WriteBool(n.envelopeDisable)
	w.WriteU8(n.volume)
	w.WriteBool(n.mode)
	w.WriteU8(n.periodIndex)
	w.WriteU16(n.timerCounter)
	w.WriteU8(n.lengthCounter)
	w.WriteBool(n.lengthHalt)
	w.WriteBool(n.envelopeStart)
	w.WriteU8(n.envelopeCounter)
	w.WriteU8(n.envelopeDivider)
	w.WriteU16(n.shiftRegister)
	w.WriteU8(n.output)
}

func deserializeNoise(r *snapshot.Reader, n *NoiseChannel) {
	n.envelopeLoop = r.ReadBool()
	n.envelopeDisable = r.ReadBool()
	n.volume = r.ReadU8()
	n.mode = r.ReadBool()
	n.periodIndex = r.ReadU8()
	n.timerCounter = r.ReadU16()
	n.lengthCounter = r.ReadU8()
	n.lengthHalt = r.ReadBool()
	n.envelopeStart = r.ReadBool()
	n.envelopeCounter = r.ReadU8()
	n.envelopeDivider = r.ReadU8()
	n.shiftRegister = r.ReadU16()
	n.output = r.ReadU8()
}

func serializeDMC(w *snapshot.Writer, d *DMCChannel) {
	w.WriteBool(d.irqEnable)
	w.WriteBool(d.loop)
	w.WriteU8(d.rateIndex)
	w.WriteU8(d.outputLevel)
	w.WriteU16(d.sampleAddress)
	w.WriteU16(d.sampleLength)
	w.WriteU16(d.timerCounter)
	w.WriteU8(d.sampleBuffer)
	w.WriteU8(d.sampleBufferBits)
	w.WriteBool(d.sampleBufferEmpty)
	w.WriteU16(d.bytesRemaining)
	w.WriteU16(d.currentAddress)
	w.WriteBool(d.irqFlag)
	w.WriteU8(d.output)
}

func deserializeDMC(r *snapshot.Reader, d *DMCChannel) {
	d.irqEnable = r.ReadBool()
	d.loop = r.ReadBool()
	d.rateIndex = r.ReadU8()
	d.outputLevel = r.ReadU8()
	d.sampleAddress = r.ReadU16()
	d.sampleLength = r.ReadU16()
	d.timerCounter = r.ReadU16()
	d.sampleBuffer = r.ReadU8()
	d.sampleBufferBits = r.ReadU8()
	d.sampleBufferEmpty = r.ReadBool()
	d.bytesRemaining = r.ReadU16()
	d.currentAddress = r.ReadU16()
	d.irqFlag = r.ReadBool()
	d.output = r.ReadU8()
}
