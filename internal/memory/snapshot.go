package memory

import (
	"gones/internal/cartridge"
	"gones/internal/snapshot"
)

// Serialize writes the 2KB CPU RAM block.
func (m *Memory) Serialize(w *snapshot.Writer) {
	w.WriteBytes(m.ram[:])
}

// Deserialize restores the 2KB CPU RAM block.
func (m *Memory) Deserialize(r *snapshot.Reader) error {
	copy(m.ram[:], r.ReadBytes())
	return r.Err()
}

// Serialize writes nametable VRAM, palette RAM, and the mirroring mode.
func (pm *PPUMemory) Serialize(w *snapshot.Writer) {
	w.WriteBytes(pm.vram[:])
	w.WriteBytes(pm.paletteRAM[:])
	w.WriteU8(uint8(pm.mirroring))
}

// Deserialize restores nametable VRAM, palette RAM, and the mirroring
// mode. The mirroring mode is also re-derived from the cartridge after
// a full facade-level reload, but is restored here too so PPUMemory is
// self-consistent on its own.
func (pm *PPUMemory) Deserialize(r *snapshot.Reader) error {
	copy(pm.vram[:], r.ReadBytes())
	copy(pm.paletteRAM[:], r.ReadBytes())
	pm.mirroring = cartridge.MirrorMode(r.ReadU8())
	return r.Err()
}
