package ui

// History is a fixed-capacity ring of samples, oldest first when read.
type History struct {
	samples []float64
	next    int
	full    bool
}

// NewHistory returns a ring holding up to capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{samples: make([]float64, capacity)}
}

// Push records v, dropping the oldest sample when full.
func (h *History) Push(v float64) {
	h.samples[h.next] = v
	h.next++
	if h.next == len(h.samples) {
		h.next = 0
		h.full = true
	}
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}

// Values appends the stored samples to dst in insertion order.
func (h *History) Values(dst []float64) []float64 {
	if h.full {
		dst = append(dst, h.samples[h.next:]...)
	}
	return append(dst, h.samples[:h.next]...)
}
