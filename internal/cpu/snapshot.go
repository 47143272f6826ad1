package cpu

import "gones/internal/snapshot"

// Serialize writes registers, flags, and the cycle counter. The stall
// counter is included so a snapshot taken mid-DMA resumes faithfully.
func (cpu *CPU) Serialize(w *snapshot.Writer) {
	w.WriteU8(cpu.A)
	w.WriteU8(cpu.X)
	w.WriteU8(cpu.Y)
	w.WriteU8(cpu.SP)
	w.WriteU16(cpu.PC)
	w.WriteU8(cpu.GetStatusByte())
	w.WriteU64(cpu.cycles)
	w.WriteU64(cpu.stallCycles)
}

// Deserialize restores registers, flags, and the cycle counter.
func (cpu *CPU) Deserialize(r *snapshot.Reader) error {
	cpu.A = r.ReadU8()
	cpu.X = r.ReadU8()
	cpu.Y = r.ReadU8()
	cpu.SP = r.ReadU8()
	cpu.PC = r.ReadU16()
	cpu.SetStatusByte(r.ReadU8())
	cpu.cycles = r.ReadU64()
	cpu.stallCycles = r.ReadU64()
	return r.Err()
}
