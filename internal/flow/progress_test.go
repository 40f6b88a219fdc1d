package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressStrictlyIncreasing(t *testing.T) {
	prev := -1
	for _, s := range Steps() {
		p := ProgressFor(s)
		assert.Greater(t, p, prev, "progress for %s", s)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestProgressValues(t *testing.T) {
	tests := []struct {
		step Step
		want int
	}{
		{StepTransferMethod, 10},
		{StepVerification, 20},
		{StepDocumentIntro, 30},
		{StepPPMReview, 40},
		{StepLLCSigning, 55},
		{StepSubscriptionSigning, 70},
		{StepConfirmRequest, 80},
		{StepWireTransfer, 95},
		{StepComplete, 100},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressFor(tt.step))
		})
	}
}

func TestProgressUnmappedPanics(t *testing.T) {
	assert.Panics(t, func() { ProgressFor(Step("subscription-review")) })
}
