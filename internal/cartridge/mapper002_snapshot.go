package cartridge

import "gones/internal/snapshot"

func (m *Mapper002) serializeState(w *snapshot.Writer) {
	w.WriteU8(m.prgBank)
}

func (m *Mapper002) deserializeState(r *snapshot.Reader) {
	m.prgBank = r.ReadU8()
}
