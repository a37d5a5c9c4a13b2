package container

import (
	"context"
	"errors"
	"fmt"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider is a module's registration function. Each module exposes
// one, and the composition root hands all of them to a ProviderRegistry in a
// known order.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(f *container.Factory) error {
//	    f.Register(container.ActorFromDefault[Mailer]())
//	    return nil
//	}
//
//	func (p *MailProvider) Boot(ctx context.Context, f *container.Factory) error {
//	    if _, ok := container.GetActor[Mailer](ctx, f); !ok {
//	        return errors.New("mailer missing")
//	    }
//	    return nil
//	}
type ServiceProvider interface {
	// Register queues the provider's bean definitions.
	// Do NOT look up beans here: nothing is instantiated yet.
	Register(f *Factory) error

	// Boot is called after Init has been queued. Lookups made here observe
	// the instantiated beans.
	Boot(ctx context.Context, f *Factory) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op Boot.
type BaseProvider struct{}

func (BaseProvider) Boot(context.Context, *Factory) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers providers on a Factory and boots them.
type ProviderRegistry struct {
	factory    *Factory
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to f.
func NewProviderRegistry(f *Factory) *ProviderRegistry {
	return &ProviderRegistry{
		factory:    f,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls p.Register once per provider value. A provider added after
// Boot is booted immediately, but its beans are only instantiated by the
// caller's next Init.
func (r *ProviderRegistry) Register(p ServiceProvider) error {
	if r.registered[p] {
		return nil
	}
	r.registered[p] = true

	if err := p.Register(r.factory); err != nil {
		return fmt.Errorf("container: register %T: %w", p, err)
	}
	r.providers = append(r.providers, p)

	if r.booted {
		if err := p.Boot(context.Background(), r.factory); err != nil {
			return fmt.Errorf("container: boot %T: %w", p, err)
		}
	}
	return nil
}

// Boot triggers the single Init round and then runs every provider's Boot in
// registration order. Later calls are no-ops.
func (r *ProviderRegistry) Boot(ctx context.Context) error {
	if r.booted {
		return nil
	}
	r.booted = true
	r.factory.Init()

	var errs []error
	for _, p := range r.providers {
		if err := p.Boot(ctx, r.factory); err != nil {
			errs = append(errs, fmt.Errorf("container: boot %T: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Booted reports whether Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }

// Factory returns the factory the registry is bound to.
func (r *ProviderRegistry) Factory() *Factory { return r.factory }
