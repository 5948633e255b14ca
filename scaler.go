package dyntype

import "fmt"

// Scaler ties the host environment to the metrics used for scaling.
// Every scaled value created from a Scaler reads the environment on each
// evaluation, so changes of the user preference show up on the next read.
type Scaler struct {
	env     Environment
	metrics Metrics
}

// Option configures a Scaler.
type Option func(*Scaler)

// WithEnvironment sets the environment providing the current level.
func WithEnvironment(env Environment) Option {
	return func(s *Scaler) {
		s.env = env
	}
}

// WithMetrics sets the host scaling service.
func WithMetrics(m Metrics) Option {
	return func(s *Scaler) {
		s.metrics = m
	}
}

// NewScaler creates a Scaler. Without options the level is fixed to
// DefaultLevel and values are scaled with the default curves.
func NewScaler(opts ...Option) *Scaler {
	s := &Scaler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.env == nil {
		s.env = StaticEnvironment(DefaultLevel)
	}
	if s.metrics == nil {
		s.metrics = &CurveMetrics{curves: defaultCurves}
	}
	return s
}

// Level returns the level currently reported by the environment.
func (s *Scaler) Level() Level {
	return s.env.Level()
}

// Transform scales v relative to style at the current level.
func (s *Scaler) Transform(v float64, style TextStyle) (float64, error) {
	return s.transform(v, style, s.env.Level())
}

// TransformAt scales v relative to style at level l, ignoring the environment.
func (s *Scaler) TransformAt(v float64, style TextStyle, l Level) (float64, error) {
	return s.transform(v, style, l)
}

func (s *Scaler) transform(v float64, style TextStyle, l Level) (float64, error) {
	r, err := s.metrics.ScaledValue(v, style, l)
	if err != nil {
		return 0, fmt.Errorf("unable to scale %v relative to %v at %v: %w", v, style, l, err)
	}
	return r, nil
}
