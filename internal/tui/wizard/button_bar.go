package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/investflow/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies a button independent of its label.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonBack
	ButtonNext
	ButtonCancel
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard
// focus. Disabled buttons are skipped when cycling focus.
type ButtonBar struct {
	buttons []Button
	focus   int // index into buttons, -1 when the bar is not focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetButtons replaces the buttons, keeping focus on the same ID if it is
// still enabled.
func (b *ButtonBar) SetButtons(buttons []Button) {
	focused := b.FocusedButton()
	b.buttons = buttons
	b.focus = -1
	if focused == ButtonNone {
		return
	}
	for i, btn := range b.buttons {
		if btn.ID == focused && btn.State != ButtonDisabled {
			b.focus = i
			return
		}
	}
	b.FocusFirst()
}

// Buttons returns the buttons as currently configured.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Focused reports whether any button holds focus.
func (b *ButtonBar) Focused() bool {
	return b.focus >= 0
}

// FocusedButton returns the ID of the focused button or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return ButtonNone
	}
	return b.buttons[b.focus].ID
}

// FocusFirst focuses the first enabled button. Returns false if none is enabled.
func (b *ButtonBar) FocusFirst() bool {
	b.focus = -1
	for i, btn := range b.buttons {
		if btn.State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	return false
}

// FocusLast focuses the last enabled button. Returns false if none is enabled.
func (b *ButtonBar) FocusLast() bool {
	b.focus = -1
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	return false
}

// FocusNext moves focus right. It returns false, and blurs the bar, when
// focus falls off the end.
func (b *ButtonBar) FocusNext() bool {
	return b.step(1)
}

// FocusPrev moves focus left. It returns false, and blurs the bar, when
// focus falls off the start.
func (b *ButtonBar) FocusPrev() bool {
	return b.step(-1)
}

func (b *ButtonBar) step(dir int) bool {
	if b.focus < 0 {
		if dir > 0 {
			return b.FocusFirst()
		}
		return b.FocusLast()
	}
	for i := b.focus + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// Render renders the button bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()

	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focus && state != ButtonDisabled {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates the standard Back/Next button set.
// nextLabel customizes the forward button (e.g., "Next", "Finish").
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: enabledState(backEnabled)},
		{ID: ButtonNext, Label: nextLabel, State: enabledState(nextEnabled)},
	}
}

// CreateCancelNextButtons creates the Cancel/Next button set used on the
// first step, where there is nothing to go back to.
func CreateCancelNextButtons(nextEnabled bool, nextLabel string) []Button {
	return []Button{
		{ID: ButtonCancel, Label: "Cancel", State: ButtonNormal},
		{ID: ButtonNext, Label: nextLabel, State: enabledState(nextEnabled)},
	}
}

func enabledState(enabled bool) ButtonState {
	if enabled {
		return ButtonNormal
	}
	return ButtonDisabled
}
