package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
}

// Option configures a Factory at bootstrap.
type Option func(*options)

// WithLogger sets the logger used by the registry. The default discards logs.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers the registry's collectors on reg. Without it the
// collectors are kept but not exported.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
