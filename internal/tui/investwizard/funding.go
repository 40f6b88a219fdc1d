package investwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

// confirmBody summarizes the request before funding.
type confirmBody struct {
	inv *Investment
}

func newConfirmBody(inv *Investment) *confirmBody { return &confirmBody{inv: inv} }

func (b *confirmBody) CanAdvance() bool { return true }
func (b *confirmBody) Focus() tea.Cmd   { return nil }
func (b *confirmBody) Blur()            {}
func (b *confirmBody) SetSize(_, _ int) {}
func (b *confirmBody) Hints() []string  { return []string{"enter", "confirm"} }

func (b *confirmBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return satisfied(flow.StepConfirmRequest)
	}
	return nil
}

func (b *confirmBody) View() string {
	s := theme.Current().S()

	method := ""
	if b.inv.Method != "" {
		method = b.inv.Method.Label()
	}
	dob := ""
	if !b.inv.DateOfBirth.IsZero() {
		dob = b.inv.DateOfBirth.Format(dobLayout)
	}

	rows := [][2]string{
		{"Transfer method", orDash(method)},
		{"Investor", orDash(b.inv.FullName)},
		{"Date of birth", orDash(dob)},
		{"Country", orDash(b.inv.Country)},
		{"Memorandum", checkmark(b.inv.PPMAcknowledged, "acknowledged")},
		{"LLC Agreement", checkmark(b.inv.LLCSignature != "", "signed")},
		{"Subscription Agreement", checkmark(b.inv.SubscriptionSignature != "", "signed")},
	}

	lines := []string{s.Body.Render("Please confirm your investment request."), ""}
	for _, row := range rows {
		label := s.Muted.Render(fmt.Sprintf("%-24s", row[0]))
		lines = append(lines, label+s.Emphasis.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}

func checkmark(ok bool, label string) string {
	if ok {
		return "✓ " + label
	}
	return "—"
}

// wireInstructions are the funding details shown per transfer method.
var wireInstructions = map[flow.TransferMethod][][2]string{
	flow.TransferDomestic: {
		{"Bank", "Meridian Trust Bank, N.A."},
		{"Routing (ABA)", "021000089"},
		{"Account", "4417 2290 3385"},
		{"Beneficiary", "Investflow Fund I, LLC"},
	},
	flow.TransferInternational: {
		{"Bank", "Meridian Trust Bank, N.A."},
		{"SWIFT/BIC", "MTBKUS33"},
		{"Account", "4417 2290 3385"},
		{"Beneficiary", "Investflow Fund I, LLC"},
		{"Intermediary", "Use your bank's USD correspondent"},
	},
}

// wireBody shows wire instructions while the wizard waits for the investor
// to send funds.
type wireBody struct {
	inv     *Investment
	spinner spinner.Model
}

func newWireBody(inv *Investment) *wireBody {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))
	return &wireBody{inv: inv, spinner: sp}
}

// CanAdvance requires a transfer method. Without one there are no
// instructions to follow.
func (b *wireBody) CanAdvance() bool { return b.inv.Method != "" }
func (b *wireBody) Blur()            {}
func (b *wireBody) SetSize(_, _ int) {}

func (b *wireBody) Focus() tea.Cmd {
	return b.spinner.Tick
}

func (b *wireBody) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd
	case tea.KeyPressMsg:
		if msg.String() == "enter" && b.CanAdvance() {
			return satisfied(flow.StepWireTransfer)
		}
	}
	return nil
}

func (b *wireBody) View() string {
	s := theme.Current().S()

	method := b.inv.Method
	if _, ok := wireInstructions[method]; !ok {
		return strings.Join([]string{
			s.Warning.Render("Transfer method unknown."),
			"",
			s.Body.Render("Go back to Transfer Method and choose how you will send funds"),
			s.Body.Render("before wiring anything."),
		}, "\n")
	}

	lines := []string{
		s.Body.Render("Send a " + strings.ToLower(method.Label()) + " using these details:"),
		"",
	}
	for _, row := range wireInstructions[method] {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("%-16s", row[0]))+s.Emphasis.Render(row[1]))
	}
	reference := orDash(b.inv.FullName)
	lines = append(lines,
		s.Muted.Render(fmt.Sprintf("%-16s", "Reference"))+s.Emphasis.Render(reference),
		"",
		b.spinner.View()+" "+s.Muted.Render("Awaiting funds. Press enter once the wire is sent."),
	)
	return strings.Join(lines, "\n")
}

func (b *wireBody) Hints() []string {
	if !b.CanAdvance() {
		return []string{"tab", "back"}
	}
	return []string{"enter", "funds sent"}
}

// completeBody is the success screen.
type completeBody struct {
	inv *Investment
}

func newCompleteBody(inv *Investment) *completeBody { return &completeBody{inv: inv} }

func (b *completeBody) CanAdvance() bool { return true }
func (b *completeBody) Focus() tea.Cmd   { return nil }
func (b *completeBody) Blur()            {}
func (b *completeBody) SetSize(_, _ int) {}

func (b *completeBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return satisfied(flow.StepComplete)
	}
	return nil
}

func (b *completeBody) View() string {
	s := theme.Current().S()

	name := "Thank you"
	if b.inv.FullName != "" {
		name = "Thank you, " + b.inv.FullName
	}
	return strings.Join([]string{
		s.Success.Render("✓ Investment request submitted"),
		"",
		s.Body.Render(name + ". We'll email you when your funds arrive"),
		s.Body.Render("and your subscription is accepted."),
	}, "\n")
}

func (b *completeBody) Hints() []string {
	return []string{"enter", "exit"}
}
