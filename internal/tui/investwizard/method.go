package investwizard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

var methodDescriptions = map[flow.TransferMethod]string{
	flow.TransferDomestic:      "Bank wire from a US account.\nUsually arrives the same day.",
	flow.TransferInternational: "SWIFT wire from a bank abroad.\nAllow 2-5 business days.",
}

// methodBody lets the investor pick how they will fund the investment.
// Moving between cards selects; nothing advances until enter.
type methodBody struct {
	inv    *Investment
	cursor int
	width  int
}

func newMethodBody(inv *Investment) *methodBody {
	b := &methodBody{inv: inv, width: 60}
	for i, m := range flow.TransferMethods() {
		if m == inv.Method {
			b.cursor = i
		}
	}
	return b
}

func (b *methodBody) CanAdvance() bool {
	return b.inv.Method != ""
}

func (b *methodBody) Focus() tea.Cmd { return nil }
func (b *methodBody) Blur()          {}

func (b *methodBody) SetSize(width, _ int) {
	b.width = width
}

func (b *methodBody) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	methods := flow.TransferMethods()
	switch key.String() {
	case "left", "up", "h", "k":
		if b.cursor > 0 {
			b.cursor--
		}
		b.inv.Method = methods[b.cursor]
	case "right", "down", "l", "j":
		if b.cursor < len(methods)-1 {
			b.cursor++
		}
		b.inv.Method = methods[b.cursor]
	case "space":
		b.inv.Method = methods[b.cursor]
	case "enter":
		if b.CanAdvance() {
			return satisfied(flow.StepTransferMethod)
		}
	}
	return nil
}

func (b *methodBody) View() string {
	s := theme.Current().S()

	cardWidth := (b.width - 4) / 2
	if cardWidth < 24 {
		cardWidth = 24
	}

	cards := make([]string, 0, 2)
	for _, m := range flow.TransferMethods() {
		marker := "○ "
		style := s.Card
		if m == b.inv.Method {
			marker = "● "
			style = s.CardSelected
		}
		content := s.Emphasis.Render(marker+m.Label()) + "\n\n" + s.Muted.Render(methodDescriptions[m])
		cards = append(cards, style.Width(cardWidth).Render(content))
	}

	prompt := s.Body.Render("How will you fund this investment?")
	return lipgloss.JoinVertical(lipgloss.Left,
		prompt,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1]),
	)
}

func (b *methodBody) Hints() []string {
	return []string{"←→", "select", "enter", "continue"}
}
