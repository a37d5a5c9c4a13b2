package container_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beanfactory/framework/container"
)

func TestMetrics_CountRegistryActivity(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	reg := prometheus.NewRegistry()
	f := container.New(container.WithMetrics(reg))
	f.Register(container.FromDefault[plain]())
	f.Register(container.FromDefault[plain]())
	f.Register(container.InjectActorFromDefault[wired]())
	f.Init()
	f.Init()
	container.GetBean[*plain](ctx, f)
	f.Keys(ctx)

	expected := `
# HELP beanfactory_definitions Registered bean definitions.
# TYPE beanfactory_definitions gauge
beanfactory_definitions 2
# HELP beanfactory_inits_total Init rounds processed.
# TYPE beanfactory_inits_total counter
beanfactory_inits_total 2
# HELP beanfactory_notifications_total Lifecycle events dispatched to notifiers, by event.
# TYPE beanfactory_notifications_total counter
beanfactory_notifications_total{event="complete"} 2
beanfactory_notifications_total{event="inject"} 2
# HELP beanfactory_overwrites_total Registrations that replaced an existing definition.
# TYPE beanfactory_overwrites_total counter
beanfactory_overwrites_total 1
# HELP beanfactory_queries_total Request-reply operations served, by operation.
# TYPE beanfactory_queries_total counter
beanfactory_queries_total{op="get"} 1
beanfactory_queries_total{op="keys"} 1
# HELP beanfactory_registrations_total Bean definitions registered, including overwrites.
# TYPE beanfactory_registrations_total counter
beanfactory_registrations_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"beanfactory_definitions",
		"beanfactory_inits_total",
		"beanfactory_notifications_total",
		"beanfactory_overwrites_total",
		"beanfactory_queries_total",
		"beanfactory_registrations_total",
	))
}

func TestMetrics_WithoutRegistererIsUnexported(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	reg := prometheus.NewRegistry()
	f := container.New()
	f.Register(container.FromDefault[plain]())
	f.Init()
	f.Keys(ctx)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Zero(t, n)
}
