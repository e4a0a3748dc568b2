package hostinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fzdarsky/netreport/internal/hostinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadOSRelease_PrettyNamePreferred(t *testing.T) {
	path := writeOSRelease(t, `
NAME="Fedora Linux"
VERSION_ID=42
PRETTY_NAME="Fedora Linux 42 (Workstation Edition)"
`)

	name, err := hostinfo.ReadOSRelease(path)

	require.NoError(t, err)
	assert.Equal(t, "Fedora Linux 42 (Workstation Edition)", name)
}

func TestReadOSRelease_NameVersionFallback(t *testing.T) {
	path := writeOSRelease(t, `
# comment line
NAME="Debian GNU/Linux"
VERSION_ID="13"
`)

	name, err := hostinfo.ReadOSRelease(path)

	require.NoError(t, err)
	assert.Equal(t, "Debian GNU/Linux 13", name)
}

func TestReadOSRelease_NameOnly(t *testing.T) {
	path := writeOSRelease(t, "NAME=Arch\n")

	name, err := hostinfo.ReadOSRelease(path)

	require.NoError(t, err)
	assert.Equal(t, "Arch", name)
}

func TestReadOSRelease_MissingFile(t *testing.T) {
	_, err := hostinfo.ReadOSRelease(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestReadOSRelease_NoUsableKeys(t *testing.T) {
	path := writeOSRelease(t, "ID=unknown\n")

	_, err := hostinfo.ReadOSRelease(path)

	assert.Error(t, err)
}

func TestArchitecture(t *testing.T) {
	arch := hostinfo.Architecture()

	assert.NotEmpty(t, arch)
	// Go architecture names are mapped to their uname equivalents.
	assert.NotContains(t, []string{"amd64", "arm64"}, arch)
}

func TestCollect(t *testing.T) {
	summary := hostinfo.Collect()

	assert.NotEmpty(t, summary.Hostname)
	assert.NotEmpty(t, summary.OS)
	assert.NotEmpty(t, summary.Architecture)
}
