//go:build integration

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// sharedReefPath holds the path to a shared reef binary built once for all tests.
	sharedReefPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getReefBinary returns the path to the reef binary, building it once if needed.
func getReefBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "reef-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		reefPath := filepath.Join(tempDir, "reef")
		buildCmd := exec.Command("go", "build", "-o", reefPath, "./cmd/reef")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build reef: %v\n%s", err, out))
		}

		sharedReefPath = reefPath
	})

	return sharedReefPath
}

// requireGit skips the test when no git binary is available.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// makeRepo creates a repository with one empty commit per date (YYYY-MM-DD),
// each made at noon by author.
func makeRepo(t *testing.T, author string, dates ...string) string {
	t.Helper()
	dir := t.TempDir()
	git := func(env []string, args ...string) {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(), env...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	git(nil, "init", "-q")
	for _, d := range dates {
		stamp := d + "T12:00:00"
		git([]string{"GIT_AUTHOR_DATE=" + stamp, "GIT_COMMITTER_DATE=" + stamp},
			"-c", "user.name="+author, "-c", "user.email=dev@example.com", "-c", "commit.gpgsign=false",
			"commit", "-q", "--allow-empty", "-m", "commit on "+d)
	}
	return dir
}
