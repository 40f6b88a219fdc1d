package investwizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

// stepBody is the content shown for one step. Bodies only receive input
// while their step is current and the button bar is not focused.
type stepBody interface {
	flow.Advancer
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Hints returns key/description pairs for the hint bar.
	Hints() []string
}

// newBodies builds one body per step, all sharing inv.
func newBodies(inv *Investment) map[flow.Step]stepBody {
	return map[flow.Step]stepBody{
		flow.StepTransferMethod:      newMethodBody(inv),
		flow.StepVerification:        newVerificationBody(inv),
		flow.StepDocumentIntro:       newDocumentIntroBody(),
		flow.StepPPMReview:           newPPMBody(inv),
		flow.StepLLCSigning:          newSigningBody(flow.StepLLCSigning, "llc.md", &inv.LLCSignature),
		flow.StepSubscriptionSigning: newSigningBody(flow.StepSubscriptionSigning, "subscription.md", &inv.SubscriptionSignature),
		flow.StepConfirmRequest:      newConfirmBody(inv),
		flow.StepWireTransfer:        newWireBody(inv),
		flow.StepComplete:            newCompleteBody(inv),
	}
}

// satisfied returns a command announcing that step wants to continue.
func satisfied(step flow.Step) tea.Cmd {
	return func() tea.Msg { return StepSatisfiedMsg{Step: step} }
}

// newInput creates a text input styled for the current theme.
func newInput(placeholder string, width int) textinput.Model {
	t := theme.Current()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	ti.SetWidth(width)
	return ti
}
