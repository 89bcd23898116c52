package scratch

// DefaultRadius is the brush radius, in image pixels, used when a session
// is started without a positive radius.
const DefaultRadius = 20.0

// Option configures a Controller during creation.
//
// Example:
//
//	c := scratch.New(
//	    scratch.WithObserver(obs),
//	    scratch.WithTension(0.5),
//	)
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	observer      Observer
	tension       float64
	defaultRadius float64
}

// defaultOptions returns the default controller options.
func defaultOptions() controllerOptions {
	return controllerOptions{
		tension:       DefaultTension,
		defaultRadius: DefaultRadius,
	}
}

// WithObserver registers the observer notified of percentage changes.
func WithObserver(o Observer) Option {
	return func(opts *controllerOptions) {
		opts.observer = o
	}
}

// WithTension sets the smoothing tension passed to SmoothSegment.
// Negative values are ignored.
func WithTension(t float64) Option {
	return func(opts *controllerOptions) {
		if t >= 0 {
			opts.tension = t
		}
	}
}

// WithDefaultRadius sets the radius used when BeginInteraction is called
// with a radius <= 0. Non-positive values are ignored.
func WithDefaultRadius(r float64) Option {
	return func(opts *controllerOptions) {
		if r > 0 {
			opts.defaultRadius = r
		}
	}
}
