package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/journal"
	"github.com/mark3labs/investflow/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
)

func TestRenderSteps(t *testing.T) {
	out := ansi.Strip(renderSteps())

	for _, s := range flow.Steps() {
		assert.Contains(t, out, string(s))
	}
	assert.Contains(t, out, "PROGRESS")
	assert.Contains(t, out, "100%")
	assert.Equal(t, len(flow.Steps())+4, strings.Count(out, "\n")+1, "header, separator, borders and one row per step")
}

func TestFormatState(t *testing.T) {
	st := &journal.State{
		Session: testfixtures.FixedSessionName,
		Step:    flow.StepVerification,
		Events: []journal.Event{{
			Timestamp: testfixtures.FixedTime,
			Type:      "step",
			Action:    journal.ActionStepChange,
			Meta:      []byte(`{"from":"transfer-method","to":"verification"}`),
		}},
	}

	out := formatState(st)
	assert.Contains(t, out, "2024-01-15 10:30:00")
	assert.Contains(t, out, `"to":"verification"`)
	assert.Contains(t, out, "Session "+testfixtures.FixedSessionName+": in progress at verification (1 events)")

	st.Dismissed = true
	assert.Contains(t, formatState(st), "dismissed at verification")
}

func TestRenderLogo(t *testing.T) {
	lines := strings.Split(ansi.Strip(renderLogo()), "\n")
	assert.Equal(t, []string{logoText1, logoText2}, lines)
}
