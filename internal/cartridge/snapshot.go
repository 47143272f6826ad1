package cartridge

import "gones/internal/snapshot"

// mapperState is implemented by mappers that carry mutable runtime
// state beyond the ROM image itself. Mapper000 has none and doesn't
// implement it.
type mapperState interface {
	serializeState(w *snapshot.Writer)
	deserializeState(r *snapshot.Reader)
}

// Serialize writes the ROM image, header-derived fields, SRAM, and
// mapper-specific state, in that order.
func (c *Cartridge) Serialize(w *snapshot.Writer) {
	w.WriteBytes(c.prgROM)
	w.WriteBytes(c.chrROM)
	w.WriteU8(c.mapperID)
	w.WriteU8(uint8(c.mirror))
	w.WriteBool(c.hasBattery)
	w.WriteBytes(c.sram[:])
	w.WriteBool(c.hasCHRRAM)
	if ms, ok := c.mapper.(mapperState); ok {
		ms.serializeState(w)
	}
}

// Deserialize replaces the cartridge's entire state, reconstructing a
// fresh mapper of the recorded type. The cartridge must already exist
// (construction always goes through LoadFromReader); a failure leaves
// the reader's error latched and the cartridge unmodified.
func (c *Cartridge) Deserialize(r *snapshot.Reader) error {
	prgROM := r.ReadBytes()
	chrROM := r.ReadBytes()
	mapperID := r.ReadU8()
	mirror := MirrorMode(r.ReadU8())
	hasBattery := r.ReadBool()
	sram := r.ReadBytes()
	hasCHRRAM := r.ReadBool()
	if r.Err() != nil {
		return r.Err()
	}

	saved := *c
	c.prgROM = prgROM
	c.chrROM = chrROM
	c.mapperID = mapperID
	c.mirror = mirror
	c.hasBattery = hasBattery
	copy(c.sram[:], sram)
	c.hasCHRRAM = hasCHRRAM

	mapper, err := createMapper(mapperID, c)
	if err != nil {
		*c = saved
		return err
	}
	c.mapper = mapper

	if ms, ok := c.mapper.(mapperState); ok {
		ms.deserializeState(r)
	}
	if err := r.Err(); err != nil {
		*c = saved
		return err
	}
	return nil
}
