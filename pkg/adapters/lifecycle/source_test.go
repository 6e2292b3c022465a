package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	noirlifecycle "github.com/aretw0/noir/pkg/adapters/lifecycle"
	"github.com/aretw0/noir/pkg/core"
)

func TestSource_ForwardsNoteEvents(t *testing.T) {
	in := make(chan core.Event, 2)
	src := noirlifecycle.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventCreate, Date: "2024-05-01"}
	close(in)

	select {
	case e := <-src.Events():
		assert.Equal(t, "CREATE 2024-05-01", e.String())
	case <-time.After(time.Second):
		t.Fatal("event not forwarded")
	}

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output closes after input closes")
	case <-time.After(time.Second):
		t.Fatal("output not closed")
	}
}

func TestSource_ForwardsCaptures(t *testing.T) {
	bus := core.NewCaptureBus(1, nil)
	src := noirlifecycle.NewSource(bus.Events())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	require.True(t, bus.Publish("clipboard text"))
	select {
	case e := <-src.Events():
		assert.Equal(t, "clipboard text", e.String())
	case <-time.After(time.Second):
		t.Fatal("capture not forwarded")
	}
	bus.Close()
}
