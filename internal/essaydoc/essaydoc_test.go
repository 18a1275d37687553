package essaydoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("Why Us Essay", "# Draft\n\nMy **first** paragraph.\n\n- point one\n- point two")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Why Us Essay</title>")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>first</strong>")
	assert.Contains(t, out, "<li>point one</li>")
}

func TestRender_DefaultTitleAndEscaping(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("", "plain text")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Essay</title>")

	out, err = r.Render(`<script>"x"</script>`, "body")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_HardWraps(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("Essay", "line one\nline two")
	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}
