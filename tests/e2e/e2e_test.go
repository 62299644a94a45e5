package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sitelint/sitelint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "sitelint-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "sitelint")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/sitelint")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/sites", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Audit Tests ---
// Only the healthy fixture is exercised end-to-end: it has no external
// links, so these tests never touch the network.

func TestE2E_Audit(t *testing.T) {
	out, code := run(t, "audit", fixturePath("healthy"))
	defer os.RemoveAll(filepath.Join(fixturePath("healthy"), ".sitelint"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "sitelint")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "A+")
}

func TestE2E_AuditJSON(t *testing.T) {
	out, code := run(t, "audit", fixturePath("healthy"), "--json")
	defer os.RemoveAll(filepath.Join(fixturePath("healthy"), ".sitelint"))
	assert.Equal(t, 0, code)

	var res domain.AuditResult
	err := json.Unmarshal([]byte(out), &res)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 4, res.PagesScanned)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.ExternalLinks)
}

func TestE2E_AuditCI(t *testing.T) {
	_, code := run(t, "audit", fixturePath("healthy"), "--ci", "--min", "999")
	defer os.RemoveAll(filepath.Join(fixturePath("healthy"), ".sitelint"))
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_AuditBadge(t *testing.T) {
	out, code := run(t, "audit", fixturePath("healthy"), "--badge")
	defer os.RemoveAll(filepath.Join(fixturePath("healthy"), ".sitelint"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "img.shields.io")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "sitelint")
}

func TestE2E_AuditMissingDir(t *testing.T) {
	_, code := run(t, "audit", filepath.Join(os.TempDir(), "does-not-exist"))
	assert.NotEqual(t, 0, code)
}
