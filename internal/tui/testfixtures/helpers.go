package testfixtures

import (
	"bytes"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output stable across terminals and CI.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// CmdTimeout bounds how long Drive waits on a single command. Transition
// ticks under reduced motion return at once; spinner and cursor-blink ticks
// are slower and get abandoned.
const CmdTimeout = 50 * time.Millisecond

// Plain strips every escape sequence from s, as a non-terminal writer would.
func Plain(s string) string {
	var buf bytes.Buffer
	w := &colorprofile.Writer{Forward: &buf, Profile: colorprofile.NoTTY}
	_, _ = w.WriteString(s)
	return buf.String()
}

// RenderCanvas draws content onto a canonical-size screen buffer and
// returns the plain text.
func RenderCanvas(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: TestTermWidth, Y: TestTermHeight},
	})
	return Plain(canvas.Render())
}

// Key builds a key press for a key name as reported by KeyPressMsg.String.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r, _ := utf8.DecodeRuneInString(name)
	return tea.KeyPressMsg{Code: r, Text: name}
}

// Type returns one key press per rune of text.
func Type(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// Driver feeds messages into a model and runs the commands it returns,
// delivering the resulting messages back until the model goes quiet.
type Driver struct {
	Model tea.Model
	// Keep filters which command results are delivered. Nil keeps all.
	Keep func(tea.Msg) bool
	// Quit is set once any command produced tea.QuitMsg.
	Quit bool
}

// NewDriver creates a driver around model.
func NewDriver(model tea.Model, keep func(tea.Msg) bool) *Driver {
	return &Driver{Model: model, Keep: keep}
}

// Run executes cmd and delivers its messages.
func (d *Driver) Run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 10000; steps++ {
		next := queue[0]
		queue = queue[1:]
		for _, msg := range execute(next) {
			if _, ok := msg.(tea.QuitMsg); ok {
				d.Quit = true
				continue
			}
			if d.Keep != nil && !d.Keep(msg) {
				continue
			}
			var out tea.Cmd
			d.Model, out = d.Model.Update(msg)
			queue = append(queue, out)
		}
	}
}

// Send delivers msgs one by one, running the commands each produces.
func (d *Driver) Send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		var cmd tea.Cmd
		d.Model, cmd = d.Model.Update(msg)
		d.Run(cmd)
	}
}

// execute runs cmd, flattening batches. Commands slower than CmdTimeout
// are abandoned.
func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, execute(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(CmdTimeout):
		return nil
	}
}
