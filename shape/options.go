package shape

const (
	// DefaultFrameDivisor is 1000/16 in integer arithmetic: a 16ms tick
	// closing the gap over one second.
	DefaultFrameDivisor   = 62
	DefaultArrivalDivisor = 25
	DefaultRotationDiv    = 10
	DefaultRotationClamp  = 0.4
)

// Options holds the engine tunables.
type Options struct {
	FrameDivisor   float64
	ArrivalDivisor float64
	RotationDiv    float64
	RotationClamp  float64
}

// Option adjusts Options.
type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		FrameDivisor:   DefaultFrameDivisor,
		ArrivalDivisor: DefaultArrivalDivisor,
		RotationDiv:    DefaultRotationDiv,
		RotationClamp:  DefaultRotationClamp,
	}
}

func WithFrameDivisor(v float64) Option {
	return func(o *Options) {
		if v > 0 {
			o.FrameDivisor = v
		}
	}
}

func WithArrivalDivisor(v float64) Option {
	return func(o *Options) {
		if v > 0 {
			o.ArrivalDivisor = v
		}
	}
}

func WithRotationDivisor(v float64) Option {
	return func(o *Options) {
		if v > 0 {
			o.RotationDiv = v
		}
	}
}

func WithRotationClamp(v float64) Option {
	return func(o *Options) {
		if v > 0 {
			o.RotationClamp = v
		}
	}
}
