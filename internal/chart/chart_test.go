package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "sweep title", []float64{0, 0.5, 1},
		Series{Name: "cell 6", Values: []float64{-0.04, 0.1, 0.35}},
		Series{Name: "cell 8", Values: []float64{0.7, 0.75, 0.79}},
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "sweep title")
	assert.Contains(t, html, "cell 6")
	assert.Contains(t, html, "cell 8")
	assert.Contains(t, html, "0.50")
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, "t", nil, Series{Name: "x"}), ErrNoSeries)
	assert.ErrorIs(t, Render(&buf, "t", []float64{1}), ErrNoSeries)
	assert.Error(t, Render(&buf, "t", []float64{0, 1}, Series{Name: "x", Values: []float64{1}}))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "utility.html")
	require.NoError(t, WriteFile(path, "t", []float64{1}, Series{Name: "cell 1", Values: []float64{-0.04}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cell 1")
}
