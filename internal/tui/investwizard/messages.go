package investwizard

import "github.com/mark3labs/investflow/internal/flow"

// StepSatisfiedMsg is sent by a step body when the investor asks to continue
// from it. The wizard still checks CanAdvance before moving.
type StepSatisfiedMsg struct {
	Step flow.Step
}

// journalWrittenMsg reports the outcome of one journal write.
type journalWrittenMsg struct {
	what string
	err  error
}
