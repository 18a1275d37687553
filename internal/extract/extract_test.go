package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("resume.pdf"))
	assert.True(t, Supported("Background.DOCX"))
	assert.True(t, Supported("notes.txt"))
	assert.True(t, Supported("notes.md"))
	assert.False(t, Supported("photo.png"))
	assert.False(t, Supported("archive"))
}

func TestText_PlainFiles(t *testing.T) {
	content := "GPA: 3.8\nMajor: Computer Science\n"

	got, err := Text(strings.NewReader(content), "background.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	got, err = Text(strings.NewReader(content), "background.md")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestText_UnsupportedExtension(t *testing.T) {
	_, err := Text(strings.NewReader("x"), "photo.png")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text(strings.NewReader("not a pdf at all"), "broken.pdf")
	assert.Error(t, err)
}

func TestText_CorruptDOCX(t *testing.T) {
	_, err := Text(strings.NewReader("not a zip archive"), "broken.docx")
	assert.Error(t, err)
}
