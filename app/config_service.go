// Package app holds the demo beans: a key/value ConfigService actor and a
// ConfigApi actor that reaches it through injection.
package app

import "fmt"

// ── Messages ──────────────────────────────────────────────────────────────────

// SetConfig stores Value under Key. The reply is an empty ConfigResult.
type SetConfig struct {
	Key   string
	Value string
}

// QueryConfig looks up Key.
type QueryConfig struct {
	Key string
}

// ConfigResult is the reply to every config command.
type ConfigResult struct {
	Value string
	Found bool
}

// ── ConfigService ─────────────────────────────────────────────────────────────

// ConfigService is an in-memory key/value store. Its zero value is ready to
// start as an actor.
type ConfigService struct {
	values map[string]string
}

func (s *ConfigService) Receive(msg any) (any, error) {
	switch m := msg.(type) {
	case SetConfig:
		if s.values == nil {
			s.values = make(map[string]string)
		}
		s.values[m.Key] = m.Value
		return ConfigResult{}, nil
	case QueryConfig:
		v, ok := s.values[m.Key]
		return ConfigResult{Value: v, Found: ok}, nil
	}
	return nil, fmt.Errorf("config service: unexpected message %T", msg)
}
