package cartridge

import "gones/internal/snapshot"

func (m *Mapper004) serializeState(w *snapshot.Writer) {
	w.WriteU8(m.bankSelect)
	w.WriteU8(m.prgMode)
	w.WriteU8(m.chrMode)
	for _, reg := range m.registers {
		w.WriteU8(reg)
	}
	w.WriteU8(uint8(m.mirror))
	w.WriteBool(m.prgRAMEnabled)
	w.WriteBool(m.prgRAMWriteProtect)
	w.WriteU8(m.irqLatch)
	w.WriteU8(m.irqCounter)
	w.WriteBool(m.irqEnabled)
	w.WriteBool(m.irqPending)
	w.WriteBool(m.irqReloadFlag)
	w.WriteBytes(m.prgRAM[:])
}

func (m *Mapper004) deserializeState(r *snapshot.Reader) {
	m.bankSelect = r.ReadU8()
	m.prgMode = r.ReadU8()
	m.chrMode = r.ReadU8()
	for i := range m.registers {
		m.registers[i] = r.ReadU8()
	}
	m.mirror = MirrorMode(r.ReadU8())
	m.prgRAMEnabled = r.ReadBool()
	m.prgRAMWriteProtect = r.ReadBool()
	m.irqLatch = r.ReadU8()
	m.irqCounter = r.ReadU8()
	m.irqEnabled = r.ReadBool()
	m.irqPending = r.ReadBool()
	m.irqReloadFlag = r.ReadBool()
	copy(m.prgRAM[:], r.ReadBytes())
}
