package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-beanfactory/framework/actor"
	"github.com/km-arc/go-beanfactory/framework/container"
)

// ErrConfigServiceMissing is returned by ConfigApi when no ConfigService was
// injected.
var ErrConfigServiceMissing = errors.New("config api: config service not injected")

const forwardTimeout = 5 * time.Second

// ConfigApi fronts ConfigService. It resolves the service and the logger
// from the injection snapshot and forwards config commands to the service.
type ConfigApi struct {
	service *actor.Addr[*ConfigService]
	log     *zap.Logger
	ready   bool
}

func (a *ConfigApi) Inject(data *container.Snapshot, _ *container.Factory) {
	if l, ok := container.Bean[*zap.Logger](data); ok {
		a.log = l.Named("config-api")
	} else {
		a.log = zap.NewNop()
	}

	var ok bool
	a.service, ok = container.ActorOf[ConfigService](data)
	if ok {
		a.log.Info("config service injected")
	} else {
		a.log.Warn("config service not found")
	}
}

func (a *ConfigApi) Complete(*container.Factory) {
	a.ready = true
	a.log.Debug("injection complete")
}

func (a *ConfigApi) Receive(msg any) (any, error) {
	switch msg.(type) {
	case SetConfig, QueryConfig:
	default:
		return nil, fmt.Errorf("config api: unexpected message %T", msg)
	}
	if a.service == nil {
		return nil, ErrConfigServiceMissing
	}
	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()
	return actor.Request[ConfigResult](ctx, a.service, msg)
}

// Ready reports whether the ConfigApi behind addr has seen Complete.
func Ready(ctx context.Context, addr *actor.Addr[*ConfigApi]) bool {
	ready := make(chan bool, 1)
	if !addr.Do(func(a *ConfigApi) { ready <- a.ready }) {
		return false
	}
	select {
	case r := <-ready:
		return r
	case <-ctx.Done():
		return false
	}
}
