package flow

// GateState is the state of a DismissGate.
type GateState int

const (
	GateClosed      GateState = iota // No confirmation pending
	GateConfirmOpen                  // Waiting for the user to confirm or cancel
)

// String returns the state name.
func (s GateState) String() string {
	switch s {
	case GateClosed:
		return "closed"
	case GateConfirmOpen:
		return "confirm-open"
	default:
		return "unknown"
	}
}

// DismissGate intercepts requests to leave the wizard and holds them until
// the user confirms. It never touches the controller's step.
type DismissGate struct {
	state     GateState
	onDismiss func()
}

// NewDismissGate creates a closed gate. onDismiss may be nil.
func NewDismissGate(onDismiss func()) *DismissGate {
	return &DismissGate{onDismiss: onDismiss}
}

// RequestDismiss opens the confirmation. It reports whether the gate changed.
func (g *DismissGate) RequestDismiss() bool {
	if g.state != GateClosed {
		return false
	}
	g.state = GateConfirmOpen
	return true
}

// Confirm closes an open gate and invokes the dismiss callback.
// It is a no-op when the gate is closed.
func (g *DismissGate) Confirm() bool {
	if g.state != GateConfirmOpen {
		return false
	}
	g.state = GateClosed
	if g.onDismiss != nil {
		g.onDismiss()
	}
	return true
}

// Cancel closes an open gate without invoking the callback.
// Calling it on a closed gate does nothing.
func (g *DismissGate) Cancel() bool {
	if g.state != GateConfirmOpen {
		return false
	}
	g.state = GateClosed
	return true
}

// State returns the current gate state.
func (g *DismissGate) State() GateState {
	return g.state
}

// Visible reports whether the confirmation modal should be shown.
func (g *DismissGate) Visible() bool {
	return g.state == GateConfirmOpen
}
