package investwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

// documentIntroBody lists the documents the investor is about to review.
type documentIntroBody struct{}

func newDocumentIntroBody() *documentIntroBody { return &documentIntroBody{} }

func (b *documentIntroBody) CanAdvance() bool          { return true }
func (b *documentIntroBody) Focus() tea.Cmd            { return nil }
func (b *documentIntroBody) Blur()                     {}
func (b *documentIntroBody) SetSize(width, height int) {}

func (b *documentIntroBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return satisfied(flow.StepDocumentIntro)
	}
	return nil
}

func (b *documentIntroBody) View() string {
	s := theme.Current().S()

	lines := []string{
		s.Body.Render("Next you'll review and sign the offering documents:"),
		"",
	}
	for i, step := range []flow.Step{flow.StepPPMReview, flow.StepLLCSigning, flow.StepSubscriptionSigning} {
		action := "sign"
		if step == flow.StepPPMReview {
			action = "read and acknowledge"
		}
		lines = append(lines, fmt.Sprintf("  %d. %s %s",
			i+1, s.Emphasis.Render(step.Title()), s.Muted.Render("("+action+")")))
	}
	lines = append(lines, "", s.Muted.Render("Each document takes a few minutes."))
	return strings.Join(lines, "\n")
}

func (b *documentIntroBody) Hints() []string {
	return []string{"enter", "begin"}
}

// ppmBody shows the memorandum in a scrollable viewport. Continuing
// requires an explicit acknowledgement.
type ppmBody struct {
	inv      *Investment
	viewport viewport.Model
	width    int
}

func newPPMBody(inv *Investment) *ppmBody {
	return &ppmBody{
		inv: inv,
		viewport: viewport.New(
			viewport.WithWidth(60),
			viewport.WithHeight(10),
		),
	}
}

func (b *ppmBody) CanAdvance() bool { return b.inv.PPMAcknowledged }
func (b *ppmBody) Focus() tea.Cmd   { return nil }
func (b *ppmBody) Blur()            {}

func (b *ppmBody) SetSize(width, height int) {
	// Two lines go to the acknowledgement line below the viewport.
	vpHeight := height - 2
	if vpHeight < 5 {
		vpHeight = 5
	}
	b.viewport.SetHeight(vpHeight)
	if width == b.width {
		return
	}
	b.width = width
	b.viewport.SetWidth(width)
	b.viewport.SetContent(renderMarkdown(document("ppm.md"), width))
	b.viewport.GotoTop()
}

func (b *ppmBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "a":
			b.inv.PPMAcknowledged = !b.inv.PPMAcknowledged
			return nil
		case "enter":
			if b.CanAdvance() {
				return satisfied(flow.StepPPMReview)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return cmd
}

func (b *ppmBody) View() string {
	s := theme.Current().S()

	ack := s.Warning.Render("☐ Press a to acknowledge you have read the memorandum")
	if b.inv.PPMAcknowledged {
		ack = s.Success.Render("☑ Memorandum acknowledged")
	}
	scroll := s.Muted.Render(fmt.Sprintf("%3.0f%%", b.viewport.ScrollPercent()*100))
	return b.viewport.View() + "\n\n" + ack + "  " + scroll
}

func (b *ppmBody) Hints() []string {
	return []string{"↑↓", "scroll", "a", "acknowledge", "enter", "continue"}
}

// signingBody shows a document summary and takes a typed signature.
type signingBody struct {
	step      flow.Step
	doc       string
	signature *string
	input     textinput.Model
	rendered  string
	width     int
}

func newSigningBody(step flow.Step, doc string, signature *string) *signingBody {
	return &signingBody{
		step:      step,
		doc:       doc,
		signature: signature,
		input:     newInput("Type your full legal name", 40),
	}
}

func (b *signingBody) CanAdvance() bool {
	return validSignature(b.input.Value())
}

func (b *signingBody) Focus() tea.Cmd {
	return b.input.Focus()
}

func (b *signingBody) Blur() {
	b.input.Blur()
}

func (b *signingBody) SetSize(width, _ int) {
	w := width - 4
	if w > 50 {
		w = 50
	}
	b.input.SetWidth(w)
	if width == b.width && b.rendered != "" {
		return
	}
	b.width = width
	b.rendered = renderMarkdown(document(b.doc), width)
}

func (b *signingBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		if b.CanAdvance() {
			return satisfied(b.step)
		}
		return nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	*b.signature = strings.TrimSpace(b.input.Value())
	return cmd
}

func (b *signingBody) View() string {
	s := theme.Current().S()

	if b.rendered == "" {
		b.rendered = renderMarkdown(document(b.doc), 60)
	}
	return b.rendered + "\n\n" + s.Emphasis.Render("Signature") + "\n" + b.input.View()
}

func (b *signingBody) Hints() []string {
	return []string{"enter", "sign"}
}
