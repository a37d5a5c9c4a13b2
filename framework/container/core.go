package container

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/km-arc/go-beanfactory/framework/actor"
)

// ── Messages ──────────────────────────────────────────────────────────────────

type registerBean struct{ def BeanDefinition }

type initFactory struct{}

type queryBean struct{ key string }

type queryBeanKeys struct{}

// ── Core ──────────────────────────────────────────────────────────────────────

// core is the registry actor. Its maps are only touched by Receive, which the
// actor loop runs one message at a time.
type core struct {
	definitions map[string]BeanDefinition
	instances   map[string]any

	// factory is the handle passed to components in lifecycle events.
	factory *Factory

	log     *zap.Logger
	metrics *metrics
}

func newCore(o options) *core {
	return &core{
		definitions: make(map[string]BeanDefinition),
		instances:   make(map[string]any),
		log:         o.logger.Named("beanfactory"),
		metrics:     newMetrics(o.registerer),
	}
}

// Started implements actor.Starter.
func (c *core) Started(self *actor.Addr[*core]) {
	c.factory = &Factory{addr: self}
	c.log.Info("bean factory started")
}

// Receive implements actor.Handler.
func (c *core) Receive(msg any) (any, error) {
	switch m := msg.(type) {
	case registerBean:
		c.register(m.def)
	case initFactory:
		c.init()
	case queryBean:
		c.metrics.queries.WithLabelValues("get").Inc()
		return c.instances[m.key], nil
	case queryBeanKeys:
		c.metrics.queries.WithLabelValues("keys").Inc()
		return slices.Sorted(maps.Keys(c.definitions)), nil
	}
	return nil, nil
}

func (c *core) register(def BeanDefinition) {
	if _, exists := c.definitions[def.key]; exists {
		c.metrics.overwrites.Inc()
		c.log.Debug("bean definition replaced", zap.String("key", def.key))
	} else {
		c.log.Debug("bean definition registered", zap.String("key", def.key))
	}
	c.definitions[def.key] = def
	c.metrics.registrations.Inc()
	c.metrics.definitions.Set(float64(len(c.definitions)))
}

// init instantiates every definition and runs the injection protocol. It is
// not guarded: each call re-invokes every provider and re-broadcasts.
func (c *core) init() {
	round := uuid.NewString()
	created := 0
	for _, key := range slices.Sorted(maps.Keys(c.definitions)) {
		v, ok := c.definitions[key].provide()
		if !ok {
			c.metrics.optOuts.Inc()
			c.log.Debug("provider returned no value", zap.String("key", key), zap.String("round", round))
			continue
		}
		c.instances[key] = v
		created++
	}
	c.metrics.inits.Inc()
	c.metrics.instances.Set(float64(len(c.instances)))
	c.log.Info("bean factory initialized",
		zap.String("round", round),
		zap.Int("definitions", len(c.definitions)),
		zap.Int("created", created),
		zap.Int("instances", len(c.instances)))

	c.inject(round)
}

// inject dispatches Inject to every notifier-bearing bean, then Complete to
// the same set. Dispatch only queues the event on the receiver; there is no
// barrier between one bean's Complete and another bean's Inject handling.
func (c *core) inject(round string) {
	data := newSnapshot(c.instances)
	c.notify("inject", InjectEvent{Factory: c.factory, Data: data, Round: round})
	c.notify("complete", CompleteEvent{Factory: c.factory, Round: round})
}

func (c *core) notify(name string, ev Event) {
	for _, key := range slices.Sorted(maps.Keys(c.definitions)) {
		def := c.definitions[key]
		if def.notifier == nil {
			continue
		}
		instance, ok := c.instances[key]
		if !ok {
			continue
		}
		def.notifier(instance, ev)
		c.metrics.notifications.WithLabelValues(name).Inc()
	}
}
