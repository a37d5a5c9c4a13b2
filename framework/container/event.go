package container

// ── Events ────────────────────────────────────────────────────────────────────

// Event is delivered to notifier-bearing beans during Init. It is either an
// InjectEvent or a CompleteEvent.
type Event interface {
	event()
}

// InjectEvent carries the snapshot of every instantiated bean. The receiver
// pulls the peers it needs from Data and keeps the references.
type InjectEvent struct {
	Factory *Factory
	Data    *Snapshot
	// Round identifies the Init pass that produced this event.
	Round string
}

// CompleteEvent follows the receiver's own InjectEvent. It means the factory
// finished dispatching this round, not that every peer finished wiring.
type CompleteEvent struct {
	Factory *Factory
	Round   string
}

func (InjectEvent) event()   {}
func (CompleteEvent) event() {}

// Injectable is the contract of components that take part in injection.
//
//	type ConfigApi struct{ service *actor.Addr[*ConfigService] }
//
//	func (a *ConfigApi) Inject(data *container.Snapshot, _ *container.Factory) {
//	    a.service, _ = container.ActorOf[ConfigService](data)
//	}
//
//	func (a *ConfigApi) Complete(*container.Factory) {}
type Injectable interface {
	Inject(data *Snapshot, factory *Factory)
	Complete(factory *Factory)
}

// Dispatch routes ev to the matching Injectable method.
func Dispatch(target Injectable, ev Event) {
	switch e := ev.(type) {
	case InjectEvent:
		target.Inject(e.Data, e.Factory)
	case CompleteEvent:
		target.Complete(e.Factory)
	}
}
