package container

import (
	"maps"
	"slices"

	"github.com/km-arc/go-beanfactory/framework/actor"
)

// Snapshot is an immutable, point-in-time view of the instance map, shared
// by every receiver of one Init round.
type Snapshot struct {
	beans map[string]any
}

func newSnapshot(instances map[string]any) *Snapshot {
	return &Snapshot{beans: maps.Clone(instances)}
}

// Get returns the erased bean stored under key.
func (s *Snapshot) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.beans[key]
	return v, ok
}

// Keys returns the instantiated keys in sorted order.
func (s *Snapshot) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.beans))
}

// Len returns the number of beans in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.beans)
}

// Bean looks up a plain bean by T's type key.
func Bean[T any](s *Snapshot) (T, bool) {
	return BeanByName[T](s, TypeKey[T]())
}

// BeanByName looks up a plain bean stored under key.
func BeanByName[T any](s *Snapshot, key string) (T, bool) {
	return cast[T](s.Get(key))
}

// ActorOf looks up the address of actor A by A's type key.
func ActorOf[A any](s *Snapshot) (*actor.Addr[*A], bool) {
	return ActorByName[A](s, TypeKey[A]())
}

// ActorByName looks up the address of actor A stored under key.
func ActorByName[A any](s *Snapshot, key string) (*actor.Addr[*A], bool) {
	return cast[*actor.Addr[*A]](s.Get(key))
}
