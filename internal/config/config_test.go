package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadMissingFilesGivesDefaults(t *testing.T) {
	cfg, err := Read(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestReadMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")
	write(t, name, `{
		// shared settings
		base_url: "https://elite.finviz.com",
		timeout: "10s",
		rate: 2,
	}`)
	write(t, filepath.Join(dir, "config.local.json5"), `{proxy: "http://127.0.0.1:7890", rate: 0.5,}`)

	cfg, err := Read(name)
	require.NoError(t, err)

	assert.Equal(t, "https://elite.finviz.com", cfg.BaseURL)
	assert.Equal(t, "http://127.0.0.1:7890", cfg.Proxy)
	assert.Equal(t, 0.5, cfg.Rate)
	assert.Equal(t, "curl/7.82.0", cfg.UserAgent)
	assert.Equal(t, 1, cfg.Burst)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestReadLocalOverrideResetsToZero(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")
	write(t, name, `{render: true, rate: 2, proxy: "http://proxy:3128"}`)
	write(t, filepath.Join(dir, "config.local.json5"), `{render: false, rate: 0}`)

	cfg, err := Read(name)
	require.NoError(t, err)

	assert.False(t, cfg.Render)
	assert.Zero(t, cfg.Rate)
	assert.Equal(t, "http://proxy:3128", cfg.Proxy)
}

func TestReadInvalid(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.json5")
	write(t, name, `{base_url: `)

	_, err := Read(name)
	assert.Error(t, err)
}

func TestLocalPath(t *testing.T) {
	assert.Equal(t, filepath.Join("conf", "config.local.json5"), LocalPath(filepath.Join("conf", "config.json5")))
}

func TestTimeoutDurationInvalid(t *testing.T) {
	_, err := Config{Timeout: "soon"}.TimeoutDuration()
	assert.Error(t, err)
}
