package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPreviousInverse(t *testing.T) {
	for _, s := range Steps() {
		next, ok := Next(s)
		if !ok {
			continue
		}
		prev, ok := Previous(next)
		require.True(t, ok, "%s should have a back edge", next)
		assert.Equal(t, s, prev, "Previous(Next(%s))", s)
	}
}

func TestForwardPathVisitsEveryStep(t *testing.T) {
	var visited []Step
	s := Initial()
	for {
		visited = append(visited, s)
		next, ok := Next(s)
		if !ok {
			break
		}
		s = next
	}
	assert.Equal(t, Steps(), visited)
	assert.True(t, IsTerminal(s))
	assert.Equal(t, StepComplete, s)
}

func TestBoundaries(t *testing.T) {
	assert.True(t, IsInitial(StepTransferMethod))
	assert.False(t, IsInitial(StepVerification))
	assert.True(t, IsTerminal(StepComplete))
	assert.False(t, IsTerminal(StepWireTransfer))

	_, ok := Previous(StepTransferMethod)
	assert.False(t, ok, "initial step has no back edge")

	_, ok = Next(StepComplete)
	assert.False(t, ok, "terminal step has no forward edge")
}

func TestSigningFollowsReviewDirectly(t *testing.T) {
	next, ok := Next(StepPPMReview)
	require.True(t, ok)
	assert.Equal(t, StepLLCSigning, next)

	next, ok = Next(StepLLCSigning)
	require.True(t, ok)
	assert.Equal(t, StepSubscriptionSigning, next)
}

func TestUnknownStepPanics(t *testing.T) {
	bogus := Step("llc-review")
	assert.Panics(t, func() { Next(bogus) })
	assert.Panics(t, func() { Previous(bogus) })
	assert.Panics(t, func() { IsTerminal(bogus) })
	assert.Panics(t, func() { IsInitial(bogus) })
	assert.Panics(t, func() { bogus.Title() })
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		input   string
		want    Step
		wantErr bool
	}{
		{"transfer-method", StepTransferMethod, false},
		{"  WIRE-TRANSFER ", StepWireTransfer, false},
		{"complete", StepComplete, false},
		{"llc-review", "", true},
		{"subscription-review", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStep(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepsReturnsCopy(t *testing.T) {
	s := Steps()
	s[0] = StepComplete
	assert.Equal(t, StepTransferMethod, Steps()[0])
}
