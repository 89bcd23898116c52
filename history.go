package scratch

// historyCap is the smoothing window: one segment needs four samples.
const historyCap = 4

// history is a fixed-capacity ring of the most recent image-space samples
// of one pointer. Pushing onto a full ring drops the oldest sample.
type history struct {
	buf   [historyCap]Point
	head  int
	count int
}

// reset starts a new stroke at p. The sample is stored twice so the
// first segment has a leading neighbour.
func (h *history) reset(p Point) {
	h.head = 0
	h.count = 0
	h.push(p)
	h.push(p)
}

func (h *history) push(p Point) {
	if h.count == historyCap {
		h.pop()
	}
	h.buf[(h.head+h.count)%historyCap] = p
	h.count++
}

// pop discards the oldest sample.
func (h *history) pop() {
	if h.count == 0 {
		return
	}
	h.head = (h.head + 1) % historyCap
	h.count--
}

func (h *history) len() int {
	return h.count
}

// window returns the samples oldest first. Only the first len() entries
// are meaningful.
func (h *history) window() [historyCap]Point {
	var w [historyCap]Point
	for i := 0; i < h.count; i++ {
		w[i] = h.buf[(h.head+i)%historyCap]
	}
	return w
}
