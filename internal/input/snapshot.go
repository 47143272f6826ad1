package input

import "gones/internal/snapshot"

// Serialize writes both controllers' shift-register state.
func (is *InputState) Serialize(w *snapshot.Writer) {
	is.Controller1.serialize(w)
	is.Controller2.serialize(w)
}

// Deserialize restores both controllers' shift-register state.
func (is *InputState) Deserialize(r *snapshot.Reader) error {
	is.Controller1.deserialize(r)
	is.Controller2.deserialize(r)
	return r.Err()
}

func (c *Controller) serialize(w *snapshot.Writer) {
	w.WriteU8(c.buttons)
	w.WriteU8(c.shiftRegister)
	w.WriteBool(c.strobe)
	w.WriteU8(c.buttonSnapshot)
	w.WriteU8(c.bitPosition)
}

func (c *Controller) deserialize(r *snapshot.Reader) {
	c.buttons = r.ReadU8()
	c.shiftRegister = r.ReadU8()
	c.strobe = r.ReadBool()
	c.buttonSnapshot = r.ReadU8()
	c.bitPosition = r.ReadU8()
}
