package container

import "reflect"

// ── Type identity ─────────────────────────────────────────────────────────────

// TypeKey returns the stable identity key of T: the package-qualified type
// name with any pointer indirection removed, so T and *T share a key.
//
//	container.TypeKey[*UserRepository]()  // "github.com/acme/app.UserRepository"
//	container.TypeKey[UserRepository]()   // same
func TypeKey[T any]() string {
	return keyOf(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeKeyOf returns the identity key of v's dynamic type.
func TypeKeyOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	return keyOf(t)
}

func keyOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Erasure ───────────────────────────────────────────────────────────────────

// cast is the single checked downcast from an erased bean to T. A missing
// value, a nil value or a type mismatch all resolve to absence.
func cast[T any](v any, ok bool) (T, bool) {
	var zero T
	if !ok || v == nil {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
