package scratch

// Observer is notified when the cleared percentage changes.
//
// The Controller does not own its observer; hosts register and replace it
// with WithObserver or SetObserver.
type Observer interface {
	ClearedPercentChanged(percent float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(percent float64)

// ClearedPercentChanged calls f(percent).
func (f ObserverFunc) ClearedPercentChanged(percent float64) {
	f(percent)
}

// ChanObserver publishes percentages to a channel without blocking.
// A value is dropped when the channel buffer is full, so a slow reader
// sees fewer updates but never stalls pointer processing.
type ChanObserver chan float64

// ClearedPercentChanged sends percent if the channel has room.
func (c ChanObserver) ClearedPercentChanged(percent float64) {
	select {
	case c <- percent:
	default:
	}
}
