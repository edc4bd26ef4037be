package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runNeon(t, binaryPath, home, "", "account", "add", "--name", "Acme")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runNeon(t, binaryPath, home, "", "account", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "1\tAcme\n", stdout)

	stdout, stderr, err = runNeon(t, binaryPath, home, `{"overview":{"title":"Overview"},"costs":{}}`, "boards", "import", "-")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "imported 2 boards into Acme")

	stdout, stderr, err = runNeon(t, binaryPath, home, "", "boards", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Boards (2)")
	assert.Contains(t, stdout, "costs")
	assert.Contains(t, stdout, "overview")

	stdout, stderr, err = runNeon(t, binaryPath, home, "", "boards", "show", "overview")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"title": "Overview"`)

	_, _, err = runNeon(t, binaryPath, home, "", "boards", "show", "missing")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "neon-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/neon")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build neon binary: %s", string(output))
	return binaryPath
}

func runNeon(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cleanEnv(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv drops NEON_ overrides from the caller's environment.
func cleanEnv() []string {
	env := make([]string, 0, len(os.Environ()))
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NEON_") {
			continue
		}
		env = append(env, kv)
	}

	return env
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
