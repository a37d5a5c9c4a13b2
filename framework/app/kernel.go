package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/km-arc/go-beanfactory/framework/config"
	"github.com/km-arc/go-beanfactory/framework/container"
	"github.com/km-arc/go-beanfactory/framework/logging"
	"github.com/km-arc/go-beanfactory/framework/providers"
	"github.com/km-arc/go-beanfactory/framework/routing"
)

const shutdownTimeout = 10 * time.Second

// Application is the composition root: it owns the bean factory and the
// provider registry, plus the ambient services every provider may need.
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	Metrics   *prometheus.Registry // nil when FACTORY_METRICS=false
	Factory   *container.Factory
	Providers *container.ProviderRegistry
}

// New loads configuration, builds the logger and the factory, and registers
// the framework providers. Application providers are added with Register.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)

	logger, err := logging.New(cfg.Log, cfg.App.Env)
	if err != nil {
		return nil, err
	}
	mode, err := container.ParseMode(cfg.Factory.Bootstrap)
	if err != nil {
		return nil, err
	}

	opts := []container.Option{container.WithLogger(logger)}
	var metrics *prometheus.Registry
	if cfg.Factory.Metrics {
		metrics = prometheus.NewRegistry()
		metrics.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, container.WithMetrics(metrics))
	}

	f := container.Bootstrap(mode, opts...)
	a := &Application{
		Config:    cfg,
		Logger:    logger,
		Metrics:   metrics,
		Factory:   f,
		Providers: container.NewProviderRegistry(f),
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LoggingServiceProvider{Logger: logger},
		&providers.MetricsServiceProvider{Registry: metrics},
		&providers.RoutingServiceProvider{Logger: logger, Metrics: metrics},
	} {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}

	logger.Debug("application created",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("bootstrap", string(mode)),
		zap.Bool("metrics", metrics != nil))
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p container.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot runs Init and every provider's Boot. Later calls are no-ops.
func (a *Application) Boot(ctx context.Context) error {
	return a.Providers.Boot(ctx)
}

// Router returns the router bean.
func (a *Application) Router(ctx context.Context) (*routing.Router, error) {
	r, ok := container.GetBean[*routing.Router](ctx, a.Factory)
	if !ok {
		return nil, providers.ErrRouterMissing
	}
	return r, nil
}

// Run boots the application if needed and serves HTTP on APP_PORT until ctx
// is cancelled, then shuts the server down and stops the factory.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(ctx); err != nil {
		return err
	}
	router, err := a.Router(ctx)
	if err != nil {
		return err
	}
	defer a.Factory.Stop()

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("http server listening",
			zap.String("app", a.Config.App.Name),
			zap.String("addr", srv.Addr),
			zap.String("env", a.Config.App.Env))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.Logger.Info("http server shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// Environment returns APP_ENV.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsProduction() bool  { return a.Config.IsProduction() }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
