package providers

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/km-arc/go-beanfactory/framework/config"
	"github.com/km-arc/go-beanfactory/framework/container"
	"github.com/km-arc/go-beanfactory/framework/routing"
)

// ErrRouterMissing is returned by RoutingServiceProvider.Boot when the router
// bean was not instantiated.
var ErrRouterMissing = errors.New("providers: router bean missing")

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider exposes the loaded configuration as a bean.
//
// Beans:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(f *container.Factory) error {
	if p.Config == nil {
		return errors.New("providers: nil config")
	}
	f.Register(container.FromValue(p.Config))
	return nil
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider exposes the application logger as a bean.
//
// Beans:
//   - *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(f *container.Factory) error {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	f.Register(container.FromValue(logger))
	return nil
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider exposes the Prometheus registry as a bean. With a
// nil Registry the provider opts out and the bean stays absent.
//
// Beans:
//   - *prometheus.Registry
type MetricsServiceProvider struct {
	container.BaseProvider
	Registry *prometheus.Registry
}

func (p *MetricsServiceProvider) Register(f *container.Factory) error {
	reg := p.Registry
	f.Register(container.FromOptionalFunc(func() (*prometheus.Registry, bool) {
		return reg, reg != nil
	}))
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. When Metrics is set the
// router serves it on /metrics.
//
// Beans:
//   - *routing.Router
type RoutingServiceProvider struct {
	Logger  *zap.Logger
	Metrics *prometheus.Registry
}

func (p *RoutingServiceProvider) Register(f *container.Factory) error {
	logger, reg := p.Logger, p.Metrics
	f.Register(container.FromFunc(func() *routing.Router {
		r := routing.New(logger)
		if reg != nil {
			r.Mount("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		}
		return r
	}))
	return nil
}

func (p *RoutingServiceProvider) Boot(ctx context.Context, f *container.Factory) error {
	if _, ok := container.GetBean[*routing.Router](ctx, f); !ok {
		return ErrRouterMissing
	}
	return nil
}
