package testfixtures

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRecorder_Records(t *testing.T) {
	rec := NewMockRecorder()
	ctx := context.Background()

	require.NoError(t, rec.RecordStep(ctx, flow.StepTransferMethod, flow.StepVerification))
	require.NoError(t, rec.RecordControl(ctx, "complete"))
	require.NoError(t, rec.RecordDetail(ctx, "transfer_method", "domestic"))

	assert.Equal(t, []flow.Step{flow.StepVerification}, rec.Targets())
	assert.Equal(t, []string{"complete"}, rec.ControlActions())
	assert.Equal(t, "domestic", rec.Details["transfer_method"])
	assert.Equal(t, 3, rec.Calls)
}

func TestMockRecorder_Err(t *testing.T) {
	rec := NewMockRecorder()
	rec.Err = errors.New("boom")

	assert.Error(t, rec.RecordStep(context.Background(), flow.StepTransferMethod, flow.StepVerification))
	assert.Empty(t, rec.Targets())
	assert.Equal(t, 1, rec.Calls)
}

func TestKey_String(t *testing.T) {
	for _, name := range []string{"enter", "esc", "tab", "shift+tab", "space", "up", "down", "left", "right", "ctrl+c", "a", "y"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, Key(name).String())
		})
	}
}

func TestType(t *testing.T) {
	msgs := Type("hé")
	require.Len(t, msgs, 2)
	assert.Equal(t, "é", msgs[1].(tea.KeyPressMsg).Text)
}

type echoMsg int

// counter is a tiny model that re-emits echoMsg until it reaches 3.
type counter struct{ n int }

func (c *counter) Init() tea.Cmd { return nil }
func (c *counter) View() tea.View {
	return tea.View{}
}

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(echoMsg); ok {
		c.n++
		if c.n >= 3 {
			return c, tea.Quit
		}
		return c, tea.Batch(func() tea.Msg { return echoMsg(c.n) }, nil)
	}
	return c, nil
}

func TestDriver_RunsUntilQuiet(t *testing.T) {
	c := &counter{}
	d := NewDriver(c, nil)

	d.Send(echoMsg(0))

	assert.Equal(t, 3, c.n)
	assert.True(t, d.Quit)
}

func TestDriver_KeepFilters(t *testing.T) {
	c := &counter{}
	d := NewDriver(c, func(tea.Msg) bool { return false })

	d.Send(echoMsg(0))

	assert.Equal(t, 1, c.n, "follow-up messages were filtered out")
	assert.False(t, d.Quit)
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "hello", Plain("\x1b[1mhello\x1b[0m"))
}
