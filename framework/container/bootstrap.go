package container

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/km-arc/go-beanfactory/framework/actor"
)

// Mode selects where the registry loop runs.
type Mode string

const (
	// ModeInContext runs the registry on a goroutine of the caller's runtime.
	ModeInContext Mode = "in-context"
	// ModeDedicated runs the registry on its own locked OS thread.
	ModeDedicated Mode = "dedicated"
)

// ParseMode parses a bootstrap mode name. The empty string is ModeInContext.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeInContext:
		return ModeInContext, nil
	case ModeDedicated:
		return ModeDedicated, nil
	}
	return "", fmt.Errorf("container: unknown bootstrap mode %q", s)
}

// Bootstrap creates a registry in the given mode.
func Bootstrap(mode Mode, opts ...Option) *Factory {
	if mode == ModeDedicated {
		return Spawn(opts...)
	}
	return New(opts...)
}

// New creates a registry whose loop runs on a new goroutine and returns its
// handle.
//
//	f := container.New(container.WithLogger(logger))
//	f.Register(container.ActorFromDefault[ConfigService]())
//	f.Init()
func New(opts ...Option) *Factory {
	addr := actor.Start(newCore(buildOptions(opts)))
	return &Factory{addr: addr}
}

// Spawn creates a registry on a dedicated worker and blocks until the worker
// hands back the handle.
//
// The worker locks itself to an OS thread and drives the registry loop on it
// until Factory.Stop. The thread exits with the loop.
func Spawn(opts ...Option) *Factory {
	o := buildOptions(opts)
	handoff := make(chan *Factory, 1)

	go func() {
		runtime.LockOSThread()
		addr := actor.New(newCore(o))
		handoff <- &Factory{addr: addr}
		addr.Run()
	}()

	return <-handoff
}
