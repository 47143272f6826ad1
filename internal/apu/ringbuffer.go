package apu

// ringBuffer capacity: bridges the ~1.79 MHz CPU clock to a ~48 kHz host
// sample rate. Single-producer (APU.Step), single-consumer (LoadSamples),
// both called from the same goroutine as the rest of the emulation core,
// so no locking is needed.
const ringBufferCapacity = 0x2000

type ringBuffer struct {
	data  [ringBufferCapacity]float32
	head  int
	tail  int
	count int
}

func (r *ringBuffer) push(sample float32) {
	r.data[r.head] = sample
	r.head = (r.head + 1) % ringBufferCapacity
	if r.count == ringBufferCapacity {
		r.tail = (r.tail + 1) % ringBufferCapacity
	} else {
		r.count++
	}
}

// drain fills out with the oldest available samples, zero-filling the
// remainder on underflow, and returns how many were genuinely available.
func (r *ringBuffer) drain(out []float32) int {
	n := 0
	for n < len(out) && r.count > 0 {
		out[n] = r.data[r.tail]
		r.tail = (r.tail + 1) % ringBufferCapacity
		r.count--
		n++
	}
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
	return n
}
