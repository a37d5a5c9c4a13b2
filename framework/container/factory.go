package container

import (
	"context"

	"github.com/km-arc/go-beanfactory/framework/actor"
)

// Factory is the client handle of a bean registry. It is cheap to copy and
// safe for concurrent use: every call is queued on the registry's mailbox.
//
// Register and Init never block. Query and Keys wait for the registry to
// reach them, so they observe every Register and Init queued before them.
// If the registry is gone, or ctx ends first, they return the empty result.
type Factory struct {
	addr *actor.Addr[*core]
}

// Register queues def. A definition with an existing key replaces it.
func (f *Factory) Register(def BeanDefinition) {
	f.addr.Tell(registerBean{def: def})
}

// RegisterAll queues defs in order.
func (f *Factory) RegisterAll(defs ...BeanDefinition) {
	for _, def := range defs {
		f.Register(def)
	}
}

// Init queues an Init round: every provider is invoked and the injection
// protocol runs. Calling Init again re-creates and re-notifies every bean.
func (f *Factory) Init() {
	f.addr.Tell(initFactory{})
}

// Stop stops the registry loop. Queued messages are dropped and later
// lookups resolve to the empty result. Beans are not stopped.
func (f *Factory) Stop() {
	f.addr.Stop()
}

// Query returns the erased instance stored under key.
func (f *Factory) Query(ctx context.Context, key string) (any, bool) {
	v, err := f.addr.Ask(ctx, queryBean{key: key})
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// Keys returns every registered definition key, instantiated or not.
func (f *Factory) Keys(ctx context.Context) []string {
	keys, err := actor.Request[[]string](ctx, f.addr, queryBeanKeys{})
	if err != nil {
		return nil
	}
	return keys
}

// ── Typed lookups ─────────────────────────────────────────────────────────────

// GetBean returns the bean stored under T's type key.
//
//	cfg, ok := container.GetBean[*config.Config](ctx, f)
func GetBean[T any](ctx context.Context, f *Factory) (T, bool) {
	return GetBeanByName[T](ctx, f, TypeKey[T]())
}

// GetBeanByName returns the bean stored under key, downcast to T.
func GetBeanByName[T any](ctx context.Context, f *Factory, key string) (T, bool) {
	return cast[T](f.Query(ctx, key))
}

// GetActor returns the address of actor A stored under A's type key.
//
//	api, ok := container.GetActor[ConfigApi](ctx, f)
func GetActor[A any](ctx context.Context, f *Factory) (*actor.Addr[*A], bool) {
	return GetActorByName[A](ctx, f, TypeKey[A]())
}

// GetActorByName returns the address of actor A stored under key.
func GetActorByName[A any](ctx context.Context, f *Factory, key string) (*actor.Addr[*A], bool) {
	return cast[*actor.Addr[*A]](f.Query(ctx, key))
}
