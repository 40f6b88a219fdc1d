// Package investwizard is the full-screen investment wizard. It drives a
// flow.Controller from keyboard input, animates step changes with a
// transition.Sequencer and journals the session when a recorder is given.
package investwizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/journal"
	"github.com/mark3labs/investflow/internal/logger"
	"github.com/mark3labs/investflow/internal/transition"
	"github.com/mark3labs/investflow/internal/tui/wizard"
)

// ErrDismissed is returned by Run when the investor confirms leaving.
var ErrDismissed = errors.New("wizard dismissed by user")

// ErrCancelled is returned by Run when the program is interrupted with ctrl+c.
var ErrCancelled = errors.New("wizard cancelled by user")

const writeTimeout = 2 * time.Second

// Recorder receives the session's events. *journal.Recorder implements it.
type Recorder interface {
	RecordStep(ctx context.Context, from, to flow.Step) error
	RecordControl(ctx context.Context, action string) error
	RecordDetail(ctx context.Context, key, value string) error
}

// Options configures a wizard run.
type Options struct {
	Timing transition.Timing

	// InitialStep resumes a session. Empty starts from the beginning.
	InitialStep flow.Step

	// Method pre-selects a transfer method, typically from a resumed session.
	Method flow.TransferMethod

	// Recorder journals the session. Nil runs the wizard without saving.
	Recorder Recorder
}

// Result describes how the wizard ended.
type Result struct {
	Step       flow.Step
	Completed  bool
	Dismissed  bool
	Cancelled  bool
	Persisted  bool
	Investment Investment
}

// Model is the Bubble Tea model of the investment wizard.
type Model struct {
	ctrl       *flow.Controller
	seq        *transition.Sequencer
	bodies     map[flow.Step]stepBody
	investment *Investment
	buttons    *wizard.ButtonBar
	progress   progress.Model

	recorder Recorder
	writes   []journalWrite
	writing  bool
	notice   string

	queued []tea.Cmd

	width     int
	height    int
	dismissed bool
	cancelled bool
	exiting   bool
}

// journalWrite is one pending journal append. fn runs off the Update loop
// and may only touch the recorder it is handed.
type journalWrite struct {
	what string
	fn   func(ctx context.Context, r Recorder) error
}

// New creates the wizard model. It panics if opts.InitialStep is not a
// valid step.
func New(opts Options) *Model {
	inv := &Investment{Method: opts.Method}
	m := &Model{
		seq:        transition.New(opts.Timing),
		investment: inv,
		bodies:     newBodies(inv),
		buttons:    wizard.NewButtonBar(nil),
		progress:   progress.New(progress.WithWidth(40), progress.WithoutPercentage()),
		recorder:   opts.Recorder,
		width:      80,
		height:     24,
	}
	m.ctrl = flow.New(flow.Options{
		InitialStep:  opts.InitialStep,
		OnComplete:   m.onComplete,
		OnDismiss:    m.onDismiss,
		OnStepChange: m.onStepChange,
	})
	m.resize()
	m.syncButtons()
	return m
}

// Run starts a Bubble Tea program for the wizard and blocks until it exits.
// A dismissed or cancelled wizard returns its result together with
// ErrDismissed or ErrCancelled.
func Run(ctx context.Context, opts Options) (*Result, error) {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	res := m.Result()
	switch {
	case res.Dismissed:
		return &res, ErrDismissed
	case res.Cancelled:
		return &res, ErrCancelled
	}
	return &res, nil
}

// Result reports the current outcome of the wizard.
func (m *Model) Result() Result {
	return Result{
		Step:       m.ctrl.Current(),
		Completed:  m.ctrl.Completed(),
		Dismissed:  m.dismissed,
		Cancelled:  m.cancelled,
		Persisted:  m.persisting(),
		Investment: *m.investment,
	}
}

// Controller exposes the flow controller for inspection.
func (m *Model) Controller() *flow.Controller {
	return m.ctrl
}

// Sequencer exposes the transition sequencer for inspection.
func (m *Model) Sequencer() *transition.Sequencer {
	return m.seq
}

// Init mounts the first step with the initial reveal.
func (m *Model) Init() tea.Cmd {
	current := m.ctrl.Current()
	logger.Info("Wizard started at step %s", current)
	return tea.Batch(
		m.seq.Mount(current),
		m.body(current).Focus(),
	)
}

func (m *Model) body(step flow.Step) stepBody {
	return m.bodies[step]
}

// persisting reports whether progress is currently being journaled.
func (m *Model) persisting() bool {
	return m.recorder != nil
}

func (m *Model) onStepChange(from, to flow.Step) {
	logger.Debug("Step changed: %s -> %s (%d%%)", from, to, flow.ProgressFor(to))

	m.body(from).Blur()
	m.buttons.Blur()
	m.queue(m.seq.Change(to))
	m.queue(m.body(to).Focus())

	if from == flow.StepTransferMethod && m.investment.Method != "" {
		method := string(m.investment.Method)
		m.record("transfer method", func(ctx context.Context, r Recorder) error {
			return r.RecordDetail(ctx, journal.DetailTransferMethod, method)
		})
	}
	m.record("step "+string(to), func(ctx context.Context, r Recorder) error {
		return r.RecordStep(ctx, from, to)
	})
}

func (m *Model) onComplete() {
	logger.Info("Investment flow completed")
	m.record("completion", func(ctx context.Context, r Recorder) error {
		return r.RecordControl(ctx, journal.ActionComplete)
	})
}

func (m *Model) onDismiss() {
	logger.Info("Wizard dismissed at step %s", m.ctrl.Current())
	m.dismissed = true
	m.record("dismissal", func(ctx context.Context, r Recorder) error {
		return r.RecordControl(ctx, journal.ActionDismissed)
	})
	m.exit()
}

// queue schedules cmd to be returned from the current Update.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

// flush returns everything queued during this Update plus extra.
func (m *Model) flush(extra ...tea.Cmd) tea.Cmd {
	cmds := append(m.queued, extra...)
	m.queued = nil
	return tea.Batch(cmds...)
}

// exit stops the sequencer and quits once pending journal writes finish.
func (m *Model) exit() {
	m.exiting = true
	m.seq.Stop()
	if !m.writing {
		m.queue(tea.Quit)
	}
}

// record appends a journal write. Writes run one at a time in the order
// they were recorded so the journal replays in step order.
func (m *Model) record(what string, fn func(ctx context.Context, r Recorder) error) {
	if m.recorder == nil {
		return
	}
	m.writes = append(m.writes, journalWrite{what: what, fn: fn})
	if !m.writing {
		m.queue(m.nextWrite())
	}
}

func (m *Model) nextWrite() tea.Cmd {
	if len(m.writes) == 0 || m.recorder == nil {
		m.writing = false
		return nil
	}
	w := m.writes[0]
	m.writes = m.writes[1:]
	m.writing = true

	r := m.recorder
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return journalWrittenMsg{what: w.what, err: w.fn(ctx, r)}
	}
}

func (m *Model) handleJournalWritten(msg journalWrittenMsg) {
	m.writing = false
	if msg.err != nil {
		logger.Warn("Journal write (%s) failed, continuing without saving: %v", msg.what, msg.err)
		m.notice = "Progress can no longer be saved for this session."
		m.recorder = nil
		m.writes = nil
	}
	m.queue(m.nextWrite())
	if m.exiting && !m.writing {
		m.queue(tea.Quit)
	}
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, m.flush()

	case transition.TickMsg:
		m.queue(m.seq.Update(msg))
		return m, m.flush()

	case transition.SettledMsg:
		logger.Debug("Transition settled on %s", msg.Step)
		return m, m.flush()

	case journalWrittenMsg:
		m.handleJournalWritten(msg)
		return m, m.flush()

	case StepSatisfiedMsg:
		m.satisfy(msg.Step)
		m.syncButtons()
		return m, m.flush()

	case tea.KeyPressMsg:
		m.handleKey(msg)
		m.syncButtons()
		return m, m.flush()
	}

	if _, ok := msg.(tea.PasteMsg); ok && !m.inputReady() {
		return m, m.flush()
	}
	if !m.exiting {
		m.queue(m.body(m.ctrl.Current()).Update(msg))
	}
	return m, m.flush()
}

// inputReady reports whether the current step's body is the one on screen.
// A body that is still waiting for the sequencer to swap it in gets no input.
func (m *Model) inputReady() bool {
	return m.seq.RenderedStep() == m.ctrl.Current()
}

// satisfy advances from step if it is still current and its body agrees.
func (m *Model) satisfy(step flow.Step) {
	if m.exiting || step != m.ctrl.Current() {
		return
	}
	if step != m.seq.RenderedStep() {
		logger.Debug("Advance from %s refused, step not on screen yet", step)
		return
	}
	if flow.IsTerminal(step) {
		m.exit()
		return
	}
	if !m.ctrl.AdvanceIf(m.body(step)) {
		logger.Debug("Advance from %s refused", step)
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg) {
	key := msg.String()

	if key == "ctrl+c" {
		logger.Info("Wizard interrupted at step %s", m.ctrl.Current())
		m.cancelled = true
		m.exit()
		return
	}
	if m.exiting {
		return
	}

	gate := m.ctrl.Gate()
	if gate.Visible() {
		switch key {
		case "y", "Y":
			gate.Confirm()
		case "n", "N", "esc":
			gate.Cancel()
			m.record("dismiss cancel", func(ctx context.Context, r Recorder) error {
				return r.RecordControl(ctx, journal.ActionDismissCancelled)
			})
		}
		return
	}

	switch key {
	case "esc":
		if flow.IsTerminal(m.ctrl.Current()) {
			m.exit()
			return
		}
		m.dismiss()
		return
	case "tab":
		if !m.buttons.FocusNext() {
			m.queue(m.body(m.ctrl.Current()).Focus())
		} else {
			m.body(m.ctrl.Current()).Blur()
		}
		return
	case "shift+tab":
		if !m.buttons.FocusPrev() {
			m.queue(m.body(m.ctrl.Current()).Focus())
		} else {
			m.body(m.ctrl.Current()).Blur()
		}
		return
	}

	if m.buttons.Focused() {
		switch key {
		case "left":
			m.buttons.FocusPrev()
			if !m.buttons.Focused() {
				m.buttons.FocusFirst()
			}
		case "right":
			m.buttons.FocusNext()
			if !m.buttons.Focused() {
				m.buttons.FocusLast()
			}
		case "enter", "space":
			m.press(m.buttons.FocusedButton())
		}
		return
	}

	if !m.inputReady() {
		logger.Debug("Dropped %q, %s still fading in", key, m.ctrl.Current())
		return
	}
	m.queue(m.body(m.ctrl.Current()).Update(msg))
}

// press activates a button from the button bar.
func (m *Model) press(id wizard.ButtonID) {
	switch id {
	case wizard.ButtonBack:
		if !m.ctrl.GoBack() {
			logger.Debug("Back from %s ignored", m.ctrl.Current())
		}
	case wizard.ButtonNext:
		m.satisfy(m.ctrl.Current())
	case wizard.ButtonCancel:
		m.dismiss()
	}
}

func (m *Model) dismiss() {
	if m.ctrl.Dismiss() {
		m.buttons.Blur()
		m.record("dismiss request", func(ctx context.Context, r Recorder) error {
			return r.RecordControl(ctx, journal.ActionDismissRequested)
		})
	}
}

// syncButtons rebuilds the button bar for the current step.
func (m *Model) syncButtons() {
	current := m.ctrl.Current()
	canAdvance := m.body(current).CanAdvance()

	label := "Next →"
	switch current {
	case flow.StepConfirmRequest:
		label = "Confirm"
	case flow.StepWireTransfer:
		label = "Funds Sent"
	case flow.StepComplete:
		label = "Finish"
	}

	if flow.IsInitial(current) {
		m.buttons.SetButtons(wizard.CreateCancelNextButtons(canAdvance, label))
		return
	}
	_, canGoBack := flow.Previous(current)
	canGoBack = canGoBack && !flow.IsTerminal(current)
	m.buttons.SetButtons(wizard.CreateBackNextButtons(canGoBack, canAdvance, label))
}
