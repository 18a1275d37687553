package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/uniapply.db", cfg.DBPath)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "glm-4-plus", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.PDFTimeout)
}

func TestLoad_MissingFileIsOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
db_path: /tmp/app.db
llm:
  base_url: http://localhost:11434
  model: test-model
pdf_timeout: 45s
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/app.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, 45*time.Second, cfg.PDFTimeout)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, 500*time.Millisecond, cfg.AutofillStepDelay)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prot: \"9090\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_MODEL", "glm-4-flash")
	t.Setenv("PDF_TIMEOUT", "10s")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "glm-4-flash", cfg.LLM.Model)
	assert.Equal(t, 10*time.Second, cfg.PDFTimeout)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoad_BadEnvValueFallsBack(t *testing.T) {
	t.Setenv("PDF_TIMEOUT", "soon")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.PDFTimeout)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}
