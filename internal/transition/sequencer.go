// Package transition sequences the fade-out/swap/fade-in lifecycle of the
// wizard's step content.
//
// The Sequencer is a Bubble Tea component: Change and Update return tea.Cmds
// that schedule the next tick. Every tick carries the token of the sequence
// that scheduled it, and any change of target bumps the token, so ticks from
// an interrupted sequence are dropped instead of racing the newer one.
package transition

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
)

// Phase is the visual lifecycle state of the sequencer.
type Phase int

const (
	PhaseIdle      Phase = iota // Content settled and fully visible
	PhaseFadingOut              // Old content fading out, target pending
	PhaseSwapping               // Content swapped, waiting for the next frame
	PhaseFadingIn               // New content fading in
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseSwapping:
		return "swapping"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "unknown"
	}
}

// TickMsg advances an in-flight transition.
type TickMsg struct {
	Token uint64
}

// SettledMsg is emitted when a sequence reaches PhaseIdle.
type SettledMsg struct {
	Step flow.Step
}

// Sequencer animates step changes. The zero value is not usable; call New.
type Sequencer struct {
	timing Timing

	phase    Phase
	visible  bool
	mounted  bool
	stopped  bool
	rendered flow.Step
	target   flow.Step

	token    uint64
	frame    int
	frames   int
	interval time.Duration

	opacity float64 // Current opacity
	from    float64 // Opacity when the current fade started
}

// New creates an unmounted sequencer.
func New(timing Timing) *Sequencer {
	return &Sequencer{timing: timing}
}

// Mount shows the first step with the short initial reveal: no fade-out,
// a settle of Timing.Reveal, then a fade-in.
func (s *Sequencer) Mount(step flow.Step) tea.Cmd {
	if s.stopped {
		return nil
	}
	s.mounted = true
	s.token++
	s.rendered = step
	s.target = step
	s.visible = false
	s.opacity = 0
	s.from = 0
	s.phase = PhaseSwapping
	s.frame = 0
	s.frames = 1
	s.interval = s.timing.Reveal
	return s.tick()
}

// Change starts (or redirects) a transition toward step. The newest target
// always wins: an in-flight sequence is cancelled and restarted from the
// current opacity so the content never pops.
func (s *Sequencer) Change(step flow.Step) tea.Cmd {
	if s.stopped {
		return nil
	}
	if !s.mounted {
		return s.Mount(step)
	}
	if step == s.target {
		return nil
	}

	s.token++
	s.target = step
	if step == s.rendered {
		// Heading back to the content still on screen: fade it back in.
		s.visible = true
		s.startFade(PhaseFadingIn, s.timing.FadeIn)
		return s.tick()
	}

	s.visible = false
	if s.opacity <= 0 {
		// Nothing on screen to fade out; swap on the next frame.
		s.rendered = step
		s.phase = PhaseSwapping
		s.frame = 0
		s.frames = 1
		s.interval = s.timing.Frame
		return s.tick()
	}
	s.startFade(PhaseFadingOut, s.timing.FadeOut)
	return s.tick()
}

// Update handles tick messages. Ticks from a superseded sequence are ignored.
func (s *Sequencer) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || s.stopped || tick.Token != s.token {
		return nil
	}

	switch s.phase {
	case PhaseFadingOut:
		s.frame++
		s.opacity = s.from * (1 - easeInOut(s.progress()))
		if s.frame < s.frames {
			return s.tick()
		}
		// Swap in the same frame the old content disappears.
		s.opacity = 0
		s.rendered = s.target
		s.phase = PhaseSwapping
		s.frame = 0
		s.frames = 1
		s.interval = s.timing.Frame
		return s.tick()

	case PhaseSwapping:
		s.visible = true
		s.startFade(PhaseFadingIn, s.timing.FadeIn)
		return s.tick()

	case PhaseFadingIn:
		s.frame++
		s.opacity = s.from + (1-s.from)*easeInOut(s.progress())
		if s.frame < s.frames {
			return s.tick()
		}
		s.opacity = 1
		s.phase = PhaseIdle
		step := s.rendered
		return func() tea.Msg { return SettledMsg{Step: step} }
	}
	return nil
}

// Stop cancels any in-flight sequence. Outstanding ticks become no-ops and
// later calls to Change or Mount do nothing.
func (s *Sequencer) Stop() {
	s.stopped = true
	s.token++
}

// Phase returns the current lifecycle phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Visible reports whether the content is meant to be shown. It turns false as
// soon as a fade-out starts and true when the new content starts fading in.
func (s *Sequencer) Visible() bool {
	return s.visible
}

// Opacity returns the animated opacity of the rendered content in [0,1].
func (s *Sequencer) Opacity() float64 {
	return s.opacity
}

// RenderedStep returns the step whose content is currently mounted.
func (s *Sequencer) RenderedStep() flow.Step {
	return s.rendered
}

// Target returns the step the sequencer is heading toward.
func (s *Sequencer) Target() flow.Step {
	return s.target
}

// Settled reports whether the sequencer is idle on its target.
func (s *Sequencer) Settled() bool {
	return s.mounted && s.phase == PhaseIdle && s.rendered == s.target
}

// Mounted reports whether Mount has run.
func (s *Sequencer) Mounted() bool {
	return s.mounted
}

// Token returns the current transition token.
func (s *Sequencer) Token() uint64 {
	return s.token
}

func (s *Sequencer) startFade(phase Phase, d time.Duration) {
	s.phase = phase
	s.from = s.opacity
	s.frame = 0
	s.interval, s.frames = s.timing.frames(d)
}

func (s *Sequencer) progress() float64 {
	if s.frames <= 0 {
		return 1
	}
	return float64(s.frame) / float64(s.frames)
}

func (s *Sequencer) tick() tea.Cmd {
	token := s.token
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Token: token}
	})
}
