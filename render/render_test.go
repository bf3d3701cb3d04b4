package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/render"
	"github.com/katalvlaran/wordgrid/wordfinder"
)

// TestBox draws a 2×3 grid.
func TestBox(t *testing.T) {
	g, err := grid.New([]string{"abc", "def"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Box(&buf, g))

	want := "┌─┬─┬─┐\n" +
		"│a│b│c│\n" +
		"├─┼─┼─┤\n" +
		"│d│e│f│\n" +
		"└─┴─┴─┘\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Box mismatch (-want +got):\n%s", diff)
	}
}

// TestBox_SingleCell has no inner separators.
func TestBox_SingleCell(t *testing.T) {
	g, err := grid.New([]string{"x"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Box(&buf, g))
	assert.Equal(t, "┌─┐\n│x│\n└─┘\n", buf.String())
}

// TestResults prints one line per match.
func TestResults(t *testing.T) {
	var buf bytes.Buffer
	err := render.Results(&buf, []wordfinder.Match{{Word: "dog", Count: 2}, {Word: "car", Count: 1}})
	require.NoError(t, err)
	assert.Equal(t, "- dog (2)\n- car (1)\n", buf.String())
}

// TestResults_Empty prints the no-match message.
func TestResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Results(&buf, nil))
	assert.Equal(t, render.NoMatches+"\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteErrors surfaces writer failures on flush.
func TestWriteErrors(t *testing.T) {
	g, err := grid.New([]string{"ab"})
	require.NoError(t, err)

	assert.EqualError(t, render.Box(failWriter{}, g), "disk full")
	assert.EqualError(t, render.Results(failWriter{}, nil), "disk full")
}
