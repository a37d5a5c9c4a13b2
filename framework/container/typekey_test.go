package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-beanfactory/framework/container"
)

func TestTypeKey(t *testing.T) {
	t.Parallel()

	const pkg = "github.com/km-arc/go-beanfactory/framework/container_test"

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"named struct", container.TypeKey[plain](), pkg + ".plain"},
		{"pointer stripped", container.TypeKey[*plain](), pkg + ".plain"},
		{"double pointer stripped", container.TypeKey[**plain](), pkg + ".plain"},
		{"builtin", container.TypeKey[string](), "string"},
		{"unnamed", container.TypeKey[[]int](), "[]int"},
		{"interface", container.TypeKey[container.Injectable](), "github.com/km-arc/go-beanfactory/framework/container.Injectable"},
		{"of value", container.TypeKeyOf(&plain{}), pkg + ".plain"},
		{"of nil", container.TypeKeyOf(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
