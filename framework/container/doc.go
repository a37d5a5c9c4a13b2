// Package container provides the bean factory: a registry of long-lived
// singleton components whose concrete types it never needs to know.
//
// # Overview
//
// A BeanDefinition pairs a key with a provider that builds the bean and,
// optionally, a notifier that delivers lifecycle events to it. The registry
// itself is an actor: Register, Init and every lookup are queued on one
// mailbox, so no two operations ever touch the registry's maps at once.
//
// # Lifecycle
//
//  1. Create:   f := container.New()            (or container.Spawn())
//  2. Register: f.Register(def)                 (any time, last key wins)
//  3. Init:     f.Init()                        (instantiate + inject)
//  4. Look up:  container.GetActor[Api](ctx, f)
//
// # Definitions
//
//	// Plain value, zero-initialized
//	f.Register(container.FromDefault[Settings]())
//
//	// Plain value from a constructor
//	f.Register(container.FromFunc(func() *Cache { return NewCache(128) }))
//
//	// Actor, addressed by *actor.Addr[*ConfigService]
//	f.Register(container.ActorFromDefault[ConfigService]())
//
//	// Actor that receives Inject / Complete
//	f.Register(container.InjectActorFromDefault[ConfigApi]())
//
//	// Any definition under an explicit key
//	f.Register(container.FromValue(primaryDSN).Named("dsn.primary"))
//
// # Injection
//
// Init calls every provider, then sends InjectEvent to each notifier-bearing
// bean with a Snapshot of all instances, and only after every Inject has been
// dispatched sends CompleteEvent to the same beans. A bean always sees its own
// Inject before its own Complete. Nothing orders one bean's Complete against
// another bean's Inject: Complete means the factory finished dispatching.
//
//	func (a *ConfigApi) Inject(data *container.Snapshot, _ *container.Factory) {
//	    a.service, _ = container.ActorOf[ConfigService](data)
//	}
//
// # Failure model
//
// Lookups never fail loudly. A missing key, a provider that opted out, a type
// mismatch and a stopped registry all resolve to (zero, false).
//
// # Composition
//
// Instead of load-time self-registration, each module exposes a
// ServiceProvider (or fills a Catalog) and one composition root registers
// them in a fixed order:
//
//	registry := container.NewProviderRegistry(f)
//	_ = registry.Register(&app.Provider{})
//	_ = registry.Boot(ctx)
package container
