package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fzdarsky/netreport/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "8.8.8.8", cfg.Probe.Target)
	assert.Equal(t, 53, cfg.Probe.Port)
	assert.Equal(t, "2s", cfg.Probe.Timeout)
	assert.Equal(t, "2s", cfg.Report.Deadline)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "human", cfg.Logging.Format)

	timeout, err := cfg.GetProbeTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, timeout)

	deadline, err := cfg.GetReportDeadline()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, deadline)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
probe:
  target: "1.1.1.1"
  port: 443
  timeout: "500ms"

report:
  deadline: "1s"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.1.1.1", cfg.Probe.Target)
	assert.Equal(t, 443, cfg.Probe.Port)

	timeout, err := cfg.GetProbeTimeout()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, timeout)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
probe:
  target: "9.9.9.9"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9.9.9.9", cfg.Probe.Target)
	assert.Equal(t, 53, cfg.Probe.Port)
	assert.Equal(t, "2s", cfg.Probe.Timeout)
	assert.Equal(t, "2s", cfg.Report.Deadline)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "probe: [not: a: mapping")

	_, err := config.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "hostname target",
			content: "probe:\n  target: \"dns.google\"\n",
			wantErr: "probe.target must be an IPv4 address",
		},
		{
			name:    "ipv6 target",
			content: "probe:\n  target: \"2001:db8::1\"\n",
			wantErr: "probe.target must be an IPv4 address",
		},
		{
			name:    "port out of range",
			content: "probe:\n  port: 70000\n",
			wantErr: "probe.port must be between 1 and 65535",
		},
		{
			name:    "bad probe timeout",
			content: "probe:\n  timeout: \"soon\"\n",
			wantErr: "invalid probe.timeout",
		},
		{
			name:    "negative deadline",
			content: "report:\n  deadline: \"-1s\"\n",
			wantErr: "report.deadline must be positive",
		},
		{
			name:    "unknown log level",
			content: "logging:\n  level: \"verbose\"\n",
			wantErr: "logging.level must be one of",
		},
		{
			name:    "unknown log format",
			content: "logging:\n  format: \"xml\"\n",
			wantErr: "logging.format must be json or human",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := config.Load(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
