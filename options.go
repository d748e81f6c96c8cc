package victor

import (
	"github.com/emilianobilli/victor/index"
	"github.com/emilianobilli/victor/metric"
)

type options struct {
	kind   index.Kind
	metric metric.Kind
	logger *Logger
}

func defaultOptions() options {
	return options{
		kind:   index.KindFlat,
		metric: metric.L2,
		logger: NoopLogger(),
	}
}

// Option configures constructor behavior.
type Option func(*options)

// WithKind selects the index family. Only index.KindFlat exists today.
func WithKind(k index.Kind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithMetric selects the similarity metric the index is created with.
// The metric is fixed for the lifetime of the index.
func WithMetric(m metric.Kind) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLogger configures structured logging for index operations.
// Passing nil disables logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
