package flow

import "fmt"

// forward is the forward edge table. Every forward transition is
// unconditional here; step bodies gate when Advance may be called.
var forward = map[Step]Step{
	StepTransferMethod:      StepVerification,
	StepVerification:        StepDocumentIntro,
	StepDocumentIntro:       StepPPMReview,
	StepPPMReview:           StepLLCSigning,
	StepLLCSigning:          StepSubscriptionSigning,
	StepSubscriptionSigning: StepConfirmRequest,
	StepConfirmRequest:      StepWireTransfer,
	StepWireTransfer:        StepComplete,
}

// backward is the structural inverse of forward.
var backward = func() map[Step]Step {
	m := make(map[Step]Step, len(forward))
	for from, to := range forward {
		if _, dup := m[to]; dup {
			panic(fmt.Sprintf("flow: step %q has two forward predecessors", to))
		}
		m[to] = from
	}
	return m
}()

// Next returns the step after s. ok is false at the terminal step.
func Next(s Step) (next Step, ok bool) {
	mustIndex(s)
	next, ok = forward[s]
	return next, ok
}

// Previous returns the step before s. ok is false at the initial step.
// The graph defines an edge out of the terminal step; the Controller refuses
// to take it.
func Previous(s Step) (prev Step, ok bool) {
	mustIndex(s)
	prev, ok = backward[s]
	return prev, ok
}

// IsTerminal reports whether s has no forward edge.
func IsTerminal(s Step) bool {
	mustIndex(s)
	_, ok := forward[s]
	return !ok
}

// IsInitial reports whether s is the first step of the wizard.
func IsInitial(s Step) bool {
	return mustIndex(s) == 0
}

// Initial returns the wizard's first step.
func Initial() Step {
	return steps[0]
}
