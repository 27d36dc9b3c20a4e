package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetThemeFallsBackToClassic(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("neon")
	assert.Equal(t, "neon", Current().Name)

	SetTheme("MONO")
	assert.Equal(t, "mono", Current().Name)

	SetTheme("solarized")
	assert.Equal(t, "classic", Current().Name)
}

func TestPanelContainsLines(t *testing.T) {
	out := Panel("first", "second")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 3)
}

func TestButtonShowsKeyAndLabel(t *testing.T) {
	out := Button("f2", "TodoList")
	assert.Contains(t, out, "f2")
	assert.Contains(t, out, "TodoList")
}

func TestOKAndFail(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "done")
	Fail(&buf, "broken")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "broken")
}
