package investwizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/tui/theme"
	"github.com/mark3labs/investflow/internal/tui/wizard"
)

const (
	minFrameWidth = 60
	maxFrameWidth = 100
	// chromeHeight is the rows the frame spends on everything except the body.
	chromeHeight = 14
)

// frameWidth returns the outer width of the wizard frame.
func (m *Model) frameWidth() int {
	w := m.width - 10
	if w < minFrameWidth {
		w = minFrameWidth
	}
	if w > maxFrameWidth {
		w = maxFrameWidth
	}
	return w
}

// contentWidth is the width available inside the frame's border and padding.
func (m *Model) contentWidth() int {
	return m.frameWidth() - 6
}

func (m *Model) resize() {
	w := m.contentWidth()
	h := m.height - chromeHeight
	if h < 8 {
		h = 8
	}
	for _, b := range m.bodies {
		b.SetSize(w, h)
	}
	m.buttons.SetWidth(w)
	m.progress.SetWidth(w - 6)
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	canvas := uv.NewScreenBuffer(m.width, m.height)
	screen := uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	}

	frame := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderFrame())
	uv.NewStyledString(frame).Draw(canvas, screen)

	if m.ctrl.Gate().Visible() {
		dialog := m.renderDismissDialog()
		w, h := lipgloss.Width(dialog), lipgloss.Height(dialog)
		x := max((m.width-w)/2, 0)
		y := max((m.height-h)/2, 0)
		uv.NewStyledString(dialog).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: x, Y: y},
			Max: uv.Position{X: x + w, Y: y + h},
		})
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderFrame draws the header, progress bar, step body, buttons and hints.
func (m *Model) renderFrame() string {
	s := theme.Current().S()
	current := m.ctrl.Current()

	sections := []string{
		m.renderHeader(current),
		m.progress.ViewAs(float64(m.ctrl.Progress())/100) + " " +
			s.Muted.Render(fmt.Sprintf("%3d%%", m.ctrl.Progress())),
		"",
		m.renderBody(),
		"",
	}
	if m.notice != "" {
		sections = append(sections, s.Warning.Render(m.notice), "")
	}
	sections = append(sections,
		m.buttons.Render(),
		"",
		lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, m.renderHints()),
	)

	return s.ModalContainer.Width(m.frameWidth()).Render(strings.Join(sections, "\n"))
}

func (m *Model) renderHeader(current flow.Step) string {
	s := theme.Current().S()
	t := theme.Current()

	title := theme.ApplyGradient("Invest", t.Primary, t.Secondary)
	if flow.IsTerminal(current) {
		return title + s.HeaderStep.Render("  ·  ") + s.HeaderTitle.Render(current.Title())
	}
	// The terminal step is not counted as a step of its own.
	total := len(flow.Steps()) - 1
	step := s.HeaderStep.Render(fmt.Sprintf("  ·  Step %d of %d: ", current.Index()+1, total))
	return title + step + s.HeaderTitle.Render(current.Title())
}

func (m *Model) renderHints() string {
	step := m.ctrl.Current()
	if m.seq.Mounted() {
		step = m.seq.RenderedStep()
	}
	pairs := m.body(step).Hints()
	if m.buttons.Focused() {
		pairs = []string{"←→", "button", "enter", "press"}
	}
	pairs = append(pairs, "tab", "buttons", "esc", "exit")
	return wizard.RenderHintBar(pairs...)
}

// renderBody renders the step the sequencer has on screen, faded to the
// sequencer's opacity.
func (m *Model) renderBody() string {
	if !m.seq.Mounted() {
		return ""
	}
	content := m.body(m.seq.RenderedStep()).View()
	return fade(content, m.seq.Opacity())
}

// fade renders content at the given opacity. Partially faded text is drawn
// in a single color between the background and the foreground; fully
// hidden content keeps its size so the layout does not jump.
func fade(content string, opacity float64) string {
	if opacity >= 0.99 {
		return content
	}

	plain := ansi.Strip(content)
	if opacity <= 0.05 {
		lines := strings.Split(plain, "\n")
		for i, line := range lines {
			lines[i] = strings.Repeat(" ", ansi.StringWidth(line))
		}
		return strings.Join(lines, "\n")
	}

	t := theme.Current()
	color := theme.InterpolateColor(t.BgBase, t.FgBase, opacity)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderDismissDialog renders the exit confirmation. It only promises that
// progress was saved when the journal is actually recording.
func (m *Model) renderDismissDialog() string {
	message := "Your answers on this device will be lost and you will start over next time."
	if m.persisting() {
		message = "Your progress has been saved. Run invest --resume to pick up at " +
			m.ctrl.Current().Title() + "."
	}
	return wizard.RenderConfirmation("Leave your investment?", message)
}
