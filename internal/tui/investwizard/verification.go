package investwizard

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

const (
	fieldName = iota
	fieldDOB
	fieldCountry
	fieldCount
)

var fieldLabels = [fieldCount]string{"Full legal name", "Date of birth", "Country of residence"}

// verificationBody collects the investor's identity details.
type verificationBody struct {
	inv    *Investment
	inputs [fieldCount]textinput.Model
	focus  int
	now    func() time.Time
}

func newVerificationBody(inv *Investment) *verificationBody {
	b := &verificationBody{inv: inv, now: time.Now}
	b.inputs[fieldName] = newInput("Jane Q. Investor", 40)
	b.inputs[fieldDOB] = newInput("YYYY-MM-DD", 40)
	b.inputs[fieldCountry] = newInput("United States", 40)
	return b
}

func (b *verificationBody) CanAdvance() bool {
	_, dobOK := parseDOB(b.inputs[fieldDOB].Value(), b.now())
	return strings.TrimSpace(b.inputs[fieldName].Value()) != "" &&
		strings.TrimSpace(b.inputs[fieldCountry].Value()) != "" &&
		dobOK
}

func (b *verificationBody) Focus() tea.Cmd {
	return b.focusField(b.focus)
}

func (b *verificationBody) Blur() {
	for i := range b.inputs {
		b.inputs[i].Blur()
	}
}

func (b *verificationBody) SetSize(width, _ int) {
	w := width - 4
	if w > 50 {
		w = 50
	}
	for i := range b.inputs {
		b.inputs[i].SetWidth(w)
	}
}

func (b *verificationBody) focusField(i int) tea.Cmd {
	b.Blur()
	b.focus = i
	return b.inputs[i].Focus()
}

func (b *verificationBody) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "up":
			if b.focus > 0 {
				return b.focusField(b.focus - 1)
			}
			return nil
		case "down":
			if b.focus < fieldCount-1 {
				return b.focusField(b.focus + 1)
			}
			return nil
		case "enter":
			if b.CanAdvance() {
				return satisfied(flow.StepVerification)
			}
			if b.focus < fieldCount-1 {
				return b.focusField(b.focus + 1)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputs[b.focus], cmd = b.inputs[b.focus].Update(msg)
	b.sync()
	return cmd
}

// sync copies the inputs into the shared investment.
func (b *verificationBody) sync() {
	b.inv.FullName = strings.TrimSpace(b.inputs[fieldName].Value())
	b.inv.Country = strings.TrimSpace(b.inputs[fieldCountry].Value())
	if dob, ok := parseDOB(b.inputs[fieldDOB].Value(), b.now()); ok {
		b.inv.DateOfBirth = dob
	} else {
		b.inv.DateOfBirth = time.Time{}
	}
}

func (b *verificationBody) View() string {
	s := theme.Current().S()

	var sb strings.Builder
	sb.WriteString(s.Body.Render("We need a few details to verify your identity."))
	sb.WriteString("\n")
	for i := range b.inputs {
		label := s.Muted.Render(fieldLabels[i])
		if i == b.focus {
			label = s.Emphasis.Render(fieldLabels[i])
		}
		sb.WriteString("\n" + label + "\n" + b.inputs[i].View() + "\n")
	}

	if v := strings.TrimSpace(b.inputs[fieldDOB].Value()); v != "" {
		if _, ok := parseDOB(v, b.now()); !ok {
			sb.WriteString("\n" + s.Error.Render("Date of birth must be a past date in YYYY-MM-DD form."))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b *verificationBody) Hints() []string {
	return []string{"↑↓", "field", "enter", "continue"}
}
