package main

// dismisser fires once when the cleared percentage reaches a threshold.
// Hosts typically fade the top layer out past 60%.
type dismisser struct {
	threshold float64
	fired     bool
	onChange  func(percent float64)
	onDismiss func(percent float64)
}

func (d *dismisser) ClearedPercentChanged(percent float64) {
	if d.onChange != nil {
		d.onChange(percent)
	}
	if d.fired || percent < d.threshold {
		return
	}
	d.fired = true
	if d.onDismiss != nil {
		d.onDismiss(percent)
	}
}
