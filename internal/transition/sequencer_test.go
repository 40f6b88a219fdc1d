package transition

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastTiming keeps the frame structure of the default timing while letting
// tests run the full lifecycle in a few milliseconds.
func fastTiming() Timing {
	return Timing{
		FadeOut: 3 * time.Millisecond,
		FadeIn:  4 * time.Millisecond,
		Reveal:  time.Millisecond,
		Frame:   time.Millisecond,
	}
}

// drain runs cmd and every follow-up tick until the sequencer stops
// scheduling work. It returns the messages that were delivered.
func drain(t *testing.T, s *Sequencer, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var msgs []tea.Msg
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "sequencer did not settle")
		msg := cmd()
		msgs = append(msgs, msg)
		cmd = s.Update(msg)
	}
	return msgs
}

func TestSequencer_InitialReveal(t *testing.T) {
	s := New(fastTiming())
	assert.False(t, s.Mounted())

	cmd := s.Mount(flow.StepTransferMethod)
	require.NotNil(t, cmd)
	assert.Equal(t, PhaseSwapping, s.Phase(), "first mount skips fade-out")
	assert.False(t, s.Visible())
	assert.Equal(t, flow.StepTransferMethod, s.RenderedStep())

	msgs := drain(t, s, cmd)

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.True(t, s.Visible())
	assert.Equal(t, 1.0, s.Opacity())
	assert.True(t, s.Settled())
	require.NotEmpty(t, msgs)
	assert.Equal(t, SettledMsg{Step: flow.StepTransferMethod}, msgs[len(msgs)-1])
}

func TestSequencer_ChangeBeforeMountMounts(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Change(flow.StepVerification))
	assert.Equal(t, flow.StepVerification, s.RenderedStep())
	assert.True(t, s.Settled())
}

func TestSequencer_StepChangeLifecycle(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepTransferMethod))

	cmd := s.Change(flow.StepVerification)
	require.NotNil(t, cmd)
	assert.Equal(t, PhaseFadingOut, s.Phase())
	assert.False(t, s.Visible(), "content hides as soon as fade-out starts")
	assert.Equal(t, flow.StepTransferMethod, s.RenderedStep(), "old content stays mounted during fade-out")
	assert.Equal(t, flow.StepVerification, s.Target())

	var phases []Phase
	for cmd != nil {
		msg := cmd()
		cmd = s.Update(msg)
		if len(phases) == 0 || phases[len(phases)-1] != s.Phase() {
			phases = append(phases, s.Phase())
		}
	}

	assert.Equal(t, []Phase{PhaseFadingOut, PhaseSwapping, PhaseFadingIn, PhaseIdle}, phases)
	assert.Equal(t, flow.StepVerification, s.RenderedStep())
	assert.True(t, s.Visible())
	assert.Equal(t, 1.0, s.Opacity())
}

func TestSequencer_OpacityMovesMonotonically(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepTransferMethod))

	cmd := s.Change(flow.StepVerification)
	last := s.Opacity()
	for cmd != nil && s.Phase() == PhaseFadingOut {
		cmd = s.Update(cmd())
		assert.LessOrEqual(t, s.Opacity(), last)
		last = s.Opacity()
	}
	assert.Equal(t, 0.0, s.Opacity())

	for cmd != nil {
		cmd = s.Update(cmd())
		assert.GreaterOrEqual(t, s.Opacity(), last)
		last = s.Opacity()
	}
	assert.Equal(t, 1.0, s.Opacity())
}

func TestSequencer_LatestChangeWins(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepTransferMethod))

	first := s.Change(flow.StepVerification)
	staleMsg := first()

	second := s.Change(flow.StepDocumentIntro)
	require.NotNil(t, second)

	assert.Nil(t, s.Update(staleMsg), "tick from the superseded sequence is dropped")

	drain(t, s, second)

	assert.Equal(t, flow.StepDocumentIntro, s.RenderedStep())
	assert.True(t, s.Visible())
	assert.Equal(t, PhaseIdle, s.Phase())

	// A stale tick arriving after the newer sequence settled changes nothing.
	assert.Nil(t, s.Update(staleMsg))
	assert.True(t, s.Visible())
	assert.Equal(t, flow.StepDocumentIntro, s.RenderedStep())
}

func TestSequencer_InterruptDuringFadeIn(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepTransferMethod))

	cmd := s.Change(flow.StepVerification)
	for s.Phase() != PhaseFadingIn {
		cmd = s.Update(cmd())
		require.NotNil(t, cmd)
	}
	stale := cmd

	drain(t, s, s.Change(flow.StepDocumentIntro))
	assert.Nil(t, s.Update(stale()))

	assert.Equal(t, flow.StepDocumentIntro, s.RenderedStep())
	assert.True(t, s.Settled())
	assert.True(t, s.Visible())
}

func TestSequencer_ReturnToRenderedStepFadesBackIn(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepVerification))

	cmd := s.Change(flow.StepDocumentIntro)
	cmd = s.Update(cmd())
	require.Equal(t, PhaseFadingOut, s.Phase())

	back := s.Change(flow.StepVerification)
	assert.Equal(t, PhaseFadingIn, s.Phase(), "no swap needed when heading back to mounted content")
	assert.True(t, s.Visible())
	assert.Nil(t, s.Update(cmd()))

	drain(t, s, back)
	assert.Equal(t, flow.StepVerification, s.RenderedStep())
	assert.True(t, s.Settled())
}

func TestSequencer_ChangeToCurrentIsNoop(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepVerification))
	token := s.Token()

	assert.Nil(t, s.Change(flow.StepVerification))
	assert.Equal(t, token, s.Token())
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestSequencer_StopCancelsTicks(t *testing.T) {
	s := New(fastTiming())
	drain(t, s, s.Mount(flow.StepTransferMethod))

	cmd := s.Change(flow.StepVerification)
	s.Stop()

	assert.Nil(t, s.Update(cmd()))
	assert.Equal(t, PhaseFadingOut, s.Phase())
	assert.Nil(t, s.Change(flow.StepDocumentIntro))
	assert.Nil(t, s.Mount(flow.StepDocumentIntro))
}

func TestSequencer_ReducedMotion(t *testing.T) {
	s := New(ReducedMotion())
	drain(t, s, s.Mount(flow.StepTransferMethod))
	assert.True(t, s.Settled())

	drain(t, s, s.Change(flow.StepVerification))
	assert.Equal(t, flow.StepVerification, s.RenderedStep())
	assert.True(t, s.Visible())
	assert.Equal(t, 1.0, s.Opacity())
}

func TestSequencer_IgnoresForeignMessages(t *testing.T) {
	s := New(fastTiming())
	assert.Nil(t, s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Nil(t, s.Update(SettledMsg{}))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "fading-out", PhaseFadingOut.String())
	assert.Equal(t, "swapping", PhaseSwapping.String())
	assert.Equal(t, "fading-in", PhaseFadingIn.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
