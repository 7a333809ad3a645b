package event_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fooddash/pkg/event"
)

func TestBus_FireOrdersNamedBeforeAny(t *testing.T) {
	bus := event.NewBus()
	var got []string

	bus.Listen(event.Any, func(_ context.Context, e event.Event) { got = append(got, "any:"+e.Name) })
	bus.Listen("order.created", func(_ context.Context, e event.Event) { got = append(got, "named:"+e.Payload.(string)) })

	bus.Fire(context.Background(), "order.created", "o1")
	bus.Fire(context.Background(), "user.deleted", "u1")

	assert.Equal(t, []string{"named:o1", "any:order.created", "any:user.deleted"}, got)
}

func TestBus_NilIsNoop(t *testing.T) {
	var bus *event.Bus
	assert.NotPanics(t, func() {
		bus.Fire(context.Background(), "x", nil)
		bus.Flush()
	})
}

func TestBus_Flush(t *testing.T) {
	bus := event.NewBus()
	calls := 0
	bus.Listen("x", func(context.Context, event.Event) { calls++ })
	bus.Flush()
	bus.Fire(context.Background(), "x", nil)
	assert.Zero(t, calls)
}
