package flow

import "fmt"

var progress = map[Step]int{
	StepTransferMethod:      10,
	StepVerification:        20,
	StepDocumentIntro:       30,
	StepPPMReview:           40,
	StepLLCSigning:          55,
	StepSubscriptionSigning: 70,
	StepConfirmRequest:      80,
	StepWireTransfer:        95,
	StepComplete:            100,
}

// ProgressFor returns the completion percentage (0-100) shown while s is the
// current step. It panics for a step without an entry.
func ProgressFor(s Step) int {
	p, ok := progress[s]
	if !ok {
		panic(fmt.Sprintf("flow: no progress value for step %q", string(s)))
	}
	return p
}
