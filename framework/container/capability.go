package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInjectRequiresActor rejects injection for components that are not
	// actors: only an actor has a mailbox to receive events on.
	ErrInjectRequiresActor = errors.New("container: inject capability requires an actor component")

	// ErrNotInjectable is returned when inject is requested for a type whose
	// pointer does not implement Injectable.
	ErrNotInjectable = errors.New("container: component does not implement Injectable")
)

// Capabilities selects how a component type is declared.
//
//	Actor    - the component runs as an actor; its address is the bean
//	Inject   - the component receives Inject and Complete events
//	Register - Declare adds the definition to the catalog
type Capabilities struct {
	Actor    bool
	Inject   bool
	Register bool
}

// ParseCapabilities reads a comma separated list such as "actor, inject,
// register". "inject" implies "actor". Unknown names are ignored.
func ParseCapabilities(s string) Capabilities {
	var c Capabilities
	for _, item := range strings.Split(s, ",") {
		switch strings.TrimSpace(item) {
		case "actor":
			c.Actor = true
		case "inject":
			c.Actor = true
			c.Inject = true
		case "register":
			c.Register = true
		}
	}
	return c
}

// String renders c in the form ParseCapabilities accepts.
func (c Capabilities) String() string {
	var parts []string
	if c.Actor {
		parts = append(parts, "actor")
	}
	if c.Inject {
		parts = append(parts, "inject")
	}
	if c.Register {
		parts = append(parts, "register")
	}
	return strings.Join(parts, ", ")
}

// Validate reports selections that can never work.
func (c Capabilities) Validate() error {
	if c.Inject && !c.Actor {
		return ErrInjectRequiresActor
	}
	return nil
}

// Component builds the definition caps selects for C. The Register flag is
// not consulted here; see Declare.
func Component[C any](caps Capabilities) (BeanDefinition, error) {
	if err := caps.Validate(); err != nil {
		return BeanDefinition{}, fmt.Errorf("%w: %s", err, TypeKey[C]())
	}
	switch {
	case caps.Inject:
		if _, ok := any(new(C)).(Injectable); !ok {
			return BeanDefinition{}, fmt.Errorf("%w: %s", ErrNotInjectable, TypeKey[C]())
		}
		return ActorFromDefault[C]().WithNotifier(actorNotifier[C]()), nil
	case caps.Actor:
		return ActorFromDefault[C](), nil
	default:
		return FromDefault[C](), nil
	}
}

// Declare validates caps for C and, when caps.Register is set, adds the
// definition to cat. Without Register the caller registers C explicitly.
//
//	err := container.Declare[ConfigApi](cat, container.ParseCapabilities("inject, register"))
func Declare[C any](cat *Catalog, caps Capabilities) error {
	def, err := Component[C](caps)
	if err != nil {
		return err
	}
	if caps.Register {
		cat.Add(def)
	}
	return nil
}
