// Package flow implements the investment wizard's step state machine: the
// ordered step graph, the progress map, the flow controller and the dismiss
// confirmation gate.
//
// Everything in this package is synchronous and is expected to be driven from
// a single goroutine (the Bubble Tea update loop). Looking up a step that is
// not part of the vocabulary is a programmer error and panics.
package flow

import (
	"fmt"
	"strings"
)

// Step identifies one stage of the investment wizard.
type Step string

// Step vocabulary in canonical forward order.
const (
	StepTransferMethod      Step = "transfer-method"
	StepVerification        Step = "verification"
	StepDocumentIntro       Step = "document-intro"
	StepPPMReview           Step = "ppm-review"
	StepLLCSigning          Step = "llc-signing"
	StepSubscriptionSigning Step = "subscription-signing"
	StepConfirmRequest      Step = "confirm-request"
	StepWireTransfer        Step = "wire-transfer"
	StepComplete            Step = "complete"
)

// steps is the canonical forward path. The graph and the progress map are
// both derived from or checked against it.
var steps = []Step{
	StepTransferMethod,
	StepVerification,
	StepDocumentIntro,
	StepPPMReview,
	StepLLCSigning,
	StepSubscriptionSigning,
	StepConfirmRequest,
	StepWireTransfer,
	StepComplete,
}

// Steps returns the step vocabulary in canonical order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// String returns the step identifier.
func (s Step) String() string {
	return string(s)
}

// Valid reports whether s belongs to the step vocabulary.
func (s Step) Valid() bool {
	_, ok := stepIndex[s]
	return ok
}

// Index returns the zero-based position of s on the forward path.
func (s Step) Index() int {
	return mustIndex(s)
}

// Title returns a short human label for the step.
func (s Step) Title() string {
	switch s {
	case StepTransferMethod:
		return "Transfer Method"
	case StepVerification:
		return "Verification"
	case StepDocumentIntro:
		return "Documents"
	case StepPPMReview:
		return "Private Placement Memorandum"
	case StepLLCSigning:
		return "LLC Agreement"
	case StepSubscriptionSigning:
		return "Subscription Agreement"
	case StepConfirmRequest:
		return "Confirm Request"
	case StepWireTransfer:
		return "Wire Transfer"
	case StepComplete:
		return "Complete"
	}
	panic(fmt.Sprintf("flow: unknown step %q", string(s)))
}

// ParseStep parses a step identifier. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseStep(s string) (Step, error) {
	step := Step(strings.ToLower(strings.TrimSpace(s)))
	if !step.Valid() {
		return "", fmt.Errorf("invalid step: %q", s)
	}
	return step, nil
}

var stepIndex = func() map[Step]int {
	m := make(map[Step]int, len(steps))
	for i, s := range steps {
		m[s] = i
	}
	return m
}()

func mustIndex(s Step) int {
	i, ok := stepIndex[s]
	if !ok {
		panic(fmt.Sprintf("flow: unknown step %q", string(s)))
	}
	return i
}

// TransferMethod is how the investor will fund the investment.
type TransferMethod string

const (
	TransferDomestic      TransferMethod = "domestic"
	TransferInternational TransferMethod = "international"
)

// TransferMethods returns the selectable methods in display order.
func TransferMethods() []TransferMethod {
	return []TransferMethod{TransferDomestic, TransferInternational}
}

// Label returns the display label of the method.
func (m TransferMethod) Label() string {
	switch m {
	case TransferDomestic:
		return "Domestic wire"
	case TransferInternational:
		return "International wire"
	default:
		return string(m)
	}
}
