package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func resetConfig(t *testing.T) {
	t.Helper()
	prev := Config
	t.Cleanup(func() { Config = prev })
}

func TestLoadAppConfig(t *testing.T) {
	resetConfig(t)
	p := writeFile(t, t.TempDir(), "config.yml", `
server:
  port: 9000
input:
  network: net.csv
  gtfsrt:
    - https://example.org/vp.pb
output:
  format: geojson
snap:
  workers: 4
`)
	require.NoError(t, LoadAppConfig(p))

	assert.Equal(t, 9000, Config.Server.Port)
	assert.Equal(t, "net.csv", Config.Input.Network)
	assert.Equal(t, "trace.csv", Config.Input.Trace, "defaults survive partial files")
	assert.Equal(t, []string{"https://example.org/vp.pb"}, Config.Input.GTFSRT)
	assert.Equal(t, "geojson", Config.Output.Format)
	assert.Equal(t, "matched.txt", Config.Output.Path)
	assert.Equal(t, 4, Config.Snap.Workers)
	assert.Equal(t, "info", Config.Logging.Level)
}

func TestLoadAppConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad format", "output:\n  format: xml\n"},
		{"negative workers", "snap:\n  workers: -1\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"empty feed", "input:\n  gtfsrt: ['']\n"},
		{"not yaml", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfig(t)
			before := Config
			p := writeFile(t, t.TempDir(), "config.yml", tt.body)
			assert.Error(t, LoadAppConfig(p))
			assert.Equal(t, before, Config)
		})
	}
}

func TestLoadAppConfigMissingExplicitPath(t *testing.T) {
	resetConfig(t)
	assert.Error(t, LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestLoadAppConfigDefaultsWithoutFile(t *testing.T) {
	resetConfig(t)
	t.Chdir(t.TempDir())
	require.NoError(t, LoadAppConfig(""))
	assert.Equal(t, Default(), Config)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TRACESNAP_PORT", "8080")
	t.Setenv("TRACESNAP_OUT", "out.json")
	t.Setenv("TRACESNAP_FORMAT", "json")
	t.Setenv("TRACESNAP_GTFSRT", "a.pb, b.pb,,")

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "out.json", cfg.Output.Path)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, []string{"a.pb", "b.pb"}, cfg.Input.GTFSRT)

	t.Setenv("TRACESNAP_WORKERS", "many")
	assert.Error(t, ApplyEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "TRACESNAP_VEHICLE=bus-7\n")
	t.Setenv("TRACESNAP_VEHICLE", "")
	require.NoError(t, os.Unsetenv("TRACESNAP_VEHICLE"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), p))
	assert.Equal(t, "bus-7", os.Getenv("TRACESNAP_VEHICLE"))
}
