package container_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beanfactory/framework/actor"
	"github.com/km-arc/go-beanfactory/framework/container"
)

// ── stub components ───────────────────────────────────────────────────────────

// plain is a notifier-less value bean.
type plain struct{ n int }

// peer is an actor without injection.
type peer struct{}

// ghost is never registered.
type ghost struct{}

type stateQuery struct{}

type wiredState struct {
	log     []string
	peer    *actor.Addr[*peer]
	plain   *plain
	missing bool
	size    int
}

// wired is an injectable actor that records what it observed.
type wired struct {
	name  string
	sink  chan<- string
	state wiredState
}

func (w *wired) Inject(data *container.Snapshot, _ *container.Factory) {
	w.state.log = append(w.state.log, "inject")
	w.state.peer, _ = container.ActorOf[peer](data)
	w.state.plain, _ = container.Bean[*plain](data)
	_, found := container.ActorOf[ghost](data)
	w.state.missing = !found
	w.state.size = data.Len()
	w.emit("inject")
}

func (w *wired) Complete(*container.Factory) {
	w.state.log = append(w.state.log, "complete")
	w.emit("complete")
}

func (w *wired) Receive(msg any) (any, error) {
	if _, ok := msg.(stateQuery); ok {
		st := w.state
		st.log = append([]string(nil), w.state.log...)
		return st, nil
	}
	return nil, nil
}

func (w *wired) emit(ev string) {
	if w.sink != nil {
		w.sink <- w.name + ":" + ev
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// stateOf asks the actor for its recorded state. Events the registry queued
// before this call are handled first, since the mailbox is FIFO.
func stateOf(t *testing.T, addr *actor.Addr[*wired]) wiredState {
	t.Helper()
	st, err := actor.Request[wiredState](testCtx(t), addr, stateQuery{})
	require.NoError(t, err)
	return st
}
