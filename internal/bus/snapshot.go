package bus

import (
	"gones/internal/cartridge"
	"gones/internal/snapshot"
)

// Serialize writes a complete snapshot in the fixed order: cartridge
// (ROM + mapper state), PPU (chip + nametable/palette RAM), controller
// state, CPU-side RAM, and CPU registers.
func (b *Bus) Serialize() ([]byte, error) {
	cart, ok := b.cartridgeForSnapshot()
	if !ok {
		return nil, &snapshot.DecodeError{Reason: "no serializable cartridge loaded"}
	}

	w := snapshot.NewWriter()
	cart.Serialize(w)
	b.PPU.Serialize(w)
	b.PPU.Memory().Serialize(w)
	b.Input.Serialize(w)
	b.Memory.Serialize(w)
	b.CPU.Serialize(w)
	return w.Bytes(), nil
}

// Deserialize replaces the entire bus state from a byte stream
// produced by Serialize, reconstructing the cartridge and rewiring
// every component around it atomically: the stream is decoded into a
// scratch bus first, so a failure leaves this bus untouched.
func (b *Bus) Deserialize(data []byte) error {
	if err := New().restore(data); err != nil {
		return err
	}
	return b.restore(data)
}

// restore decodes a Serialize stream into b, component by component.
func (b *Bus) restore(data []byte) error {
	r := snapshot.NewReader(data)

	cart := &cartridge.Cartridge{}
	if err := cart.Deserialize(r); err != nil {
		return err
	}

	b.LoadCartridge(cart)

	if err := b.PPU.Deserialize(r); err != nil {
		return err
	}
	if err := b.PPU.Memory().Deserialize(r); err != nil {
		return err
	}
	if err := b.Input.Deserialize(r); err != nil {
		return err
	}
	if err := b.Memory.Deserialize(r); err != nil {
		return err
	}
	if err := b.CPU.Deserialize(r); err != nil {
		return err
	}
	return nil
}

func (b *Bus) cartridgeForSnapshot() (*cartridge.Cartridge, bool) {
	real, ok := b.cartridge.(*cartridge.Cartridge)
	return real, ok
}
