package tracked

import "go.uber.org/zap"

// Option configures a Memo.
type Option func(*options)

type options struct {
	name    string
	log     *zap.Logger
	metrics *Metrics
}

// WithName sets the name used in logs and metric labels. Defaults to "memo".
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger recomputes are reported to at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics records hits, recomputes and compute errors.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(opts []Option) options {
	o := options{name: "memo", log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o
}
