package container

import (
	"reflect"

	"github.com/km-arc/go-beanfactory/framework/actor"
)

// ── Definition ────────────────────────────────────────────────────────────────

// Provider builds a bean's runtime value. Returning false opts out: the key
// stays absent from the instance map. Providers run once per Init, so they
// must tolerate repeated calls.
type Provider func() (any, bool)

// Notifier forwards a lifecycle event to the concrete component behind an
// erased instance. A notifier that cannot downcast the instance does nothing.
type Notifier func(instance any, ev Event)

// BeanDefinition describes one singleton: its key, how to build it and,
// optionally, how to deliver injection events to it.
//
// Definitions are values; Named and WithNotifier return modified copies.
type BeanDefinition struct {
	key      string
	provider Provider
	notifier Notifier
}

// NewBeanDefinition builds a definition from raw parts. notifier may be nil.
func NewBeanDefinition(key string, provider Provider, notifier Notifier) BeanDefinition {
	return BeanDefinition{key: key, provider: provider, notifier: notifier}
}

// Key returns the identity key the bean is registered under.
func (d BeanDefinition) Key() string { return d.key }

// HasNotifier reports whether the bean takes part in the injection protocol.
func (d BeanDefinition) HasNotifier() bool { return d.notifier != nil }

// Named returns a copy registered under key instead of the type key.
//
//	primary := container.FromFunc(openPrimaryDB).Named("db.primary")
//	replica := container.FromFunc(openReplicaDB).Named("db.replica")
func (d BeanDefinition) Named(key string) BeanDefinition {
	d.key = key
	return d
}

// WithNotifier returns a copy that delivers events through n.
func (d BeanDefinition) WithNotifier(n Notifier) BeanDefinition {
	d.notifier = n
	return d
}

func (d BeanDefinition) provide() (any, bool) {
	if d.provider == nil {
		return nil, false
	}
	v, ok := d.provider()
	if !ok || isNil(v) {
		return nil, false
	}
	return v, true
}

// isNil also catches typed nils such as a (*T)(nil) returned through any.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ── Plain beans ───────────────────────────────────────────────────────────────

// FromDefault registers a zero-valued *C under C's type key.
//
//	f.Register(container.FromDefault[Settings]())
//	s, ok := container.GetBean[*Settings](ctx, f)
func FromDefault[C any]() BeanDefinition {
	return BeanDefinition{
		key:      TypeKey[C](),
		provider: func() (any, bool) { return new(C), true },
	}
}

// FromFunc registers the result of fn under T's type key.
func FromFunc[T any](fn func() T) BeanDefinition {
	return BeanDefinition{
		key:      TypeKey[T](),
		provider: func() (any, bool) { return fn(), true },
	}
}

// FromOptionalFunc is FromFunc for providers that may decline to build a value.
func FromOptionalFunc[T any](fn func() (T, bool)) BeanDefinition {
	return BeanDefinition{
		key: TypeKey[T](),
		provider: func() (any, bool) {
			v, ok := fn()
			return v, ok
		},
	}
}

// FromValue registers a pre-built value. Every Init stores the same value.
func FromValue[T any](v T) BeanDefinition {
	return BeanDefinition{
		key:      TypeKey[T](),
		provider: func() (any, bool) { return v, true },
	}
}

// ── Actor beans ───────────────────────────────────────────────────────────────

// InjectablePtr constrains P to *A implementing Injectable.
type InjectablePtr[A any] interface {
	*A
	Injectable
}

// ActorFromDefault starts a zero-valued A as an actor on every Init and
// registers its *actor.Addr[*A] under A's type key.
func ActorFromDefault[A any]() BeanDefinition {
	return ActorFromFunc[A](func() *actor.Addr[*A] { return actor.Start(new(A)) })
}

// ActorFromFunc registers the address returned by fn under A's type key.
func ActorFromFunc[A any](fn func() *actor.Addr[*A]) BeanDefinition {
	return BeanDefinition{
		key: TypeKey[A](),
		provider: func() (any, bool) { return fn(), true },
	}
}

// InjectActorFromDefault is ActorFromDefault for components that receive
// Inject and Complete events.
//
//	f.Register(container.InjectActorFromDefault[ConfigApi]())
func InjectActorFromDefault[A any, P InjectablePtr[A]]() BeanDefinition {
	return ActorFromDefault[A]().WithNotifier(actorNotifier[A]())
}

// InjectActorFromFunc is ActorFromFunc for components that receive Inject and
// Complete events.
func InjectActorFromFunc[A any, P InjectablePtr[A]](fn func() *actor.Addr[*A]) BeanDefinition {
	return ActorFromFunc[A](fn).WithNotifier(actorNotifier[A]())
}

// actorNotifier downcasts the instance to *actor.Addr[*A] and queues the
// event on that actor's mailbox, so the component handles it on its own loop
// in order with its other messages.
func actorNotifier[A any]() Notifier {
	return func(instance any, ev Event) {
		addr, ok := instance.(*actor.Addr[*A])
		if !ok {
			return
		}
		addr.Do(func(a *A) {
			if target, ok := any(a).(Injectable); ok {
				Dispatch(target, ev)
			}
		})
	}
}
