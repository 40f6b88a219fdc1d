package flow

import "fmt"

// Advancer is implemented by step bodies that gate forward navigation on
// local input (a selected method, a non-empty signature, an acknowledgement).
type Advancer interface {
	CanAdvance() bool
}

// Options configures a Controller.
type Options struct {
	// InitialStep is the step the session starts on. Defaults to the
	// wizard's initial step. Any other valid step resumes a session.
	InitialStep Step

	// OnComplete runs once when the terminal step is reached.
	OnComplete func()

	// OnDismiss runs when the user confirms leaving the wizard.
	OnDismiss func()

	// OnStepChange runs after every change of the current step.
	OnStepChange func(from, to Step)
}

// Controller owns a wizard session and moves it along the step graph.
type Controller struct {
	current    Step
	completed  bool
	gate       *DismissGate
	onComplete func()
	onChange   func(from, to Step)
}

// New creates a controller. It panics if opts.InitialStep is not a valid step.
func New(opts Options) *Controller {
	initial := opts.InitialStep
	if initial == "" {
		initial = Initial()
	}
	if !initial.Valid() {
		panic(fmt.Sprintf("flow: invalid initial step %q", string(initial)))
	}
	return &Controller{
		current:    initial,
		completed:  IsTerminal(initial),
		gate:       NewDismissGate(opts.OnDismiss),
		onComplete: opts.OnComplete,
		onChange:   opts.OnStepChange,
	}
}

// Current returns the current step.
func (c *Controller) Current() Step {
	return c.current
}

// Progress returns the completion percentage of the current step.
func (c *Controller) Progress() int {
	return ProgressFor(c.current)
}

// Completed reports whether the terminal step has been reached.
func (c *Controller) Completed() bool {
	return c.completed
}

// DismissRequested reports whether the exit confirmation is open.
func (c *Controller) DismissRequested() bool {
	return c.gate.Visible()
}

// Gate returns the controller's dismiss gate.
func (c *Controller) Gate() *DismissGate {
	return c.gate
}

// Advance moves to the next step and reports whether the step changed.
// The caller is trusted to have satisfied the current step; use AdvanceIf to
// check an Advancer first. Advancing from the terminal step does nothing.
func (c *Controller) Advance() bool {
	next, ok := Next(c.current)
	if !ok {
		return false
	}
	c.move(next)
	if IsTerminal(next) && !c.completed {
		c.completed = true
		if c.onComplete != nil {
			c.onComplete()
		}
	}
	return true
}

// AdvanceIf advances only when a reports that its step is satisfied.
func (c *Controller) AdvanceIf(a Advancer) bool {
	if a == nil || !a.CanAdvance() {
		return false
	}
	return c.Advance()
}

// GoBack moves to the previous step and reports whether the step changed.
// It does nothing on the initial step and once the session is complete.
func (c *Controller) GoBack() bool {
	if c.completed || IsTerminal(c.current) {
		return false
	}
	prev, ok := Previous(c.current)
	if !ok {
		return false
	}
	c.move(prev)
	return true
}

// Dismiss asks the gate for exit confirmation. The session is left as is.
func (c *Controller) Dismiss() bool {
	return c.gate.RequestDismiss()
}

func (c *Controller) move(to Step) {
	from := c.current
	c.current = to
	if c.onChange != nil {
		c.onChange(from, to)
	}
}
