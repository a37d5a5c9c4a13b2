package container_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beanfactory/framework/actor"
	"github.com/km-arc/go-beanfactory/framework/container"
)

// TestProtocol_OwnInjectBeforeOwnComplete verifies every injectable bean sees
// its Inject before its Complete, however many siblings share the round.
func TestProtocol_OwnInjectBeforeOwnComplete(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	const siblings = 50
	f := container.New()
	for i := 0; i < siblings; i++ {
		f.Register(container.InjectActorFromDefault[wired]().Named(fmt.Sprintf("wired-%02d", i)))
	}
	f.Init()

	for i := 0; i < siblings; i++ {
		addr, ok := container.GetActorByName[wired](ctx, f, fmt.Sprintf("wired-%02d", i))
		require.True(t, ok)
		st := stateOf(t, addr)
		assert.Equal(t, []string{"inject", "complete"}, st.log, "bean %d", i)
		assert.Equal(t, siblings, st.size)
	}
}

// TestProtocol_MissingPeerResolvesToAbsent verifies a lookup of an
// unregistered peer neither fails nor blocks.
func TestProtocol_MissingPeerResolvesToAbsent(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	f := container.New()
	f.Register(container.InjectActorFromDefault[wired]())
	f.Init()

	addr, ok := container.GetActor[wired](ctx, f)
	require.True(t, ok)

	st := stateOf(t, addr)
	assert.True(t, st.missing)
	assert.Nil(t, st.peer)
	assert.Nil(t, st.plain)
	assert.Equal(t, []string{"inject", "complete"}, st.log)
}

// TestProtocol_ActorPeerIsInjected verifies an actor peer's address reaches
// the injectable bean.
func TestProtocol_ActorPeerIsInjected(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	f := container.New()
	f.Register(container.InjectActorFromDefault[wired]())
	f.Register(container.ActorFromDefault[peer]())
	f.Init()

	p, ok := container.GetActor[peer](ctx, f)
	require.True(t, ok)
	w, ok := container.GetActor[wired](ctx, f)
	require.True(t, ok)

	assert.Same(t, p, stateOf(t, w).peer)
}

// TestProtocol_SecondInitRebroadcasts verifies a bean whose provider returns
// the same address receives two full Inject/Complete sequences.
func TestProtocol_SecondInitRebroadcasts(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	shared := actor.Start(&wired{})
	t.Cleanup(shared.Stop)

	f := container.New()
	f.Register(container.InjectActorFromFunc[wired](func() *actor.Addr[*wired] { return shared }))
	f.Init()
	f.Init()

	addr, ok := container.GetActor[wired](ctx, f)
	require.True(t, ok)
	require.Same(t, shared, addr)

	assert.Equal(t, []string{"inject", "complete", "inject", "complete"}, stateOf(t, addr).log)
}

// TestProtocol_SecondInitCreatesFreshInstance verifies a fresh-value provider
// yields a new identity per Init and four events overall.
func TestProtocol_SecondInitCreatesFreshInstance(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	sink := make(chan string, 8)
	n := 0
	f := container.New()
	f.Register(container.InjectActorFromFunc[wired](func() *actor.Addr[*wired] {
		n++
		return actor.Start(&wired{name: fmt.Sprint(n), sink: sink})
	}))

	f.Init()
	first, ok := container.GetActor[wired](ctx, f)
	require.True(t, ok)

	f.Init()
	second, ok := container.GetActor[wired](ctx, f)
	require.True(t, ok)
	assert.NotSame(t, first, second)

	perInstance := map[string][]string{}
	for i := 0; i < 4; i++ {
		select {
		case ev := <-sink:
			name, kind, _ := strings.Cut(ev, ":")
			perInstance[name] = append(perInstance[name], kind)
		case <-time.After(5 * time.Second):
			t.Fatalf("received %d of 4 events", i)
		}
	}
	assert.Equal(t, map[string][]string{
		"1": {"inject", "complete"},
		"2": {"inject", "complete"},
	}, perInstance)
}

// TestProtocol_NotifierSeesRoundAndSnapshot verifies a custom notifier gets
// Inject then Complete for the same round, and that notifier-less beans are
// in the snapshot but not notified.
func TestProtocol_NotifierSeesRoundAndSnapshot(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	events := make(chan container.Event, 4)
	f := container.New()
	f.Register(container.FromValue(7).Named("seven").WithNotifier(func(instance any, ev container.Event) {
		assert.Equal(t, 7, instance)
		events <- ev
	}))
	f.Register(container.FromDefault[plain]())
	f.Init()

	// Query is served after Init, so both events are already queued.
	_, ok := f.Query(ctx, "seven")
	require.True(t, ok)
	require.Len(t, events, 2)

	inject, ok := (<-events).(container.InjectEvent)
	require.True(t, ok, "first event must be Inject")
	complete, ok := (<-events).(container.CompleteEvent)
	require.True(t, ok, "second event must be Complete")

	assert.NotEmpty(t, inject.Round)
	assert.Equal(t, inject.Round, complete.Round)
	assert.NotNil(t, inject.Factory)
	assert.ElementsMatch(t, []string{"seven", container.TypeKey[plain]()}, inject.Data.Keys())

	v, ok := container.BeanByName[int](inject.Data, "seven")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

// TestProtocol_FactoryInEventIsUsable verifies the handle passed with events
// reaches the same registry.
func TestProtocol_FactoryInEventIsUsable(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	handles := make(chan *container.Factory, 1)
	f := container.New()
	f.Register(container.FromValue("v").Named("k").WithNotifier(func(_ any, ev container.Event) {
		if e, ok := ev.(container.CompleteEvent); ok {
			handles <- e.Factory
		}
	}))
	f.Init()

	select {
	case h := <-handles:
		got, ok := container.GetBeanByName[string](ctx, h, "k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	case <-ctx.Done():
		t.Fatal("no Complete event")
	}
}
