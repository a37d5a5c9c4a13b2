package app

import (
	"context"
	"errors"

	"github.com/km-arc/go-beanfactory/framework/container"
	"github.com/km-arc/go-beanfactory/framework/routing"
)

// ErrRouterMissing is returned by Provider.Boot when there is no router bean
// to mount the HTTP handlers on.
var ErrRouterMissing = errors.New("app: router bean missing")

// Provider declares the demo beans and, on Boot, mounts their HTTP routes.
//
//	application.Register(&app.Provider{})
type Provider struct {
	catalog *container.Catalog
}

// Catalog returns the demo definitions.
func (p *Provider) Catalog() (*container.Catalog, error) {
	if p.catalog != nil {
		return p.catalog, nil
	}
	cat := container.NewCatalog()
	if err := container.Declare[ConfigService](cat, container.ParseCapabilities("actor, register")); err != nil {
		return nil, err
	}
	if err := container.Declare[ConfigApi](cat, container.ParseCapabilities("inject, register")); err != nil {
		return nil, err
	}
	p.catalog = cat
	return cat, nil
}

func (p *Provider) Register(f *container.Factory) error {
	cat, err := p.Catalog()
	if err != nil {
		return err
	}
	return cat.Register(f)
}

// Boot mounts the /api/v1 routes. It needs the router bean; the ConfigApi
// may be absent, in which case the config routes answer 503.
func (p *Provider) Boot(ctx context.Context, f *container.Factory) error {
	router, ok := container.GetBean[*routing.Router](ctx, f)
	if !ok {
		return ErrRouterMissing
	}
	api, _ := container.GetActor[ConfigApi](ctx, f)
	NewHandlers(f, api).Routes(router)
	return nil
}
