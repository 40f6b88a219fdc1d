package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDismissGate_ConfirmCallsOnce(t *testing.T) {
	calls := 0
	g := NewDismissGate(func() { calls++ })

	assert.False(t, g.Visible())
	assert.False(t, g.Confirm(), "confirm on a closed gate is a no-op")
	assert.Equal(t, 0, calls)

	assert.True(t, g.RequestDismiss())
	assert.True(t, g.Visible())
	assert.Equal(t, GateConfirmOpen, g.State())
	assert.False(t, g.RequestDismiss(), "second request while open changes nothing")

	assert.True(t, g.Confirm())
	assert.Equal(t, 1, calls)
	assert.Equal(t, GateClosed, g.State())

	assert.False(t, g.Confirm())
	assert.Equal(t, 1, calls)
}

func TestDismissGate_CancelIsIdempotent(t *testing.T) {
	calls := 0
	g := NewDismissGate(func() { calls++ })

	assert.False(t, g.Cancel())

	g.RequestDismiss()
	assert.True(t, g.Cancel())
	assert.False(t, g.Cancel())
	assert.False(t, g.Visible())
	assert.Equal(t, 0, calls)
}

func TestDismissGate_NilCallback(t *testing.T) {
	g := NewDismissGate(nil)
	g.RequestDismiss()
	assert.NotPanics(t, func() { g.Confirm() })
}

func TestGateStateString(t *testing.T) {
	assert.Equal(t, "closed", GateClosed.String())
	assert.Equal(t, "confirm-open", GateConfirmOpen.String())
	assert.Equal(t, "unknown", GateState(42).String())
}
