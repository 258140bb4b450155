package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/reef/schema"
)

// commitLogFormat yields one "hash|date|author" line per commit.
const commitLogFormat = "--format=%H|%ad|%an"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// run executes a git command in repoPath and returns its stdout.
func (c *LocalGitClient) run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	LogDebug("running git", "args", strings.Join(fullArgs, " "))
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v. Ensure Git is installed and available on your PATH", ErrGitUnavailable, err)
	}
	return out, nil
}

// IsRepository implements the GitClient interface.
func (c *LocalGitClient) IsRepository(ctx context.Context, path string) bool {
	out, err := c.run(ctx, path, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// ListCommits implements the GitClient interface.
func (c *LocalGitClient) ListCommits(ctx context.Context, repoPath string, filters schema.Filters) ([]schema.CommitRecord, error) {
	out, err := c.run(ctx, repoPath, CommitLogArgs(filters)...)
	if err != nil {
		return nil, err
	}
	commits, skipped := ParseCommitLog(out)
	if skipped > 0 {
		LogDebug("skipped malformed git log lines", "count", skipped)
	}
	return commits, nil
}

// CommitLogArgs builds the git log arguments for the given filters.
func CommitLogArgs(filters schema.Filters) []string {
	args := []string{"log", commitLogFormat, "--date=short"}
	if filters.Author != "" {
		args = append(args, "--author="+filters.Author)
	}
	if filters.Since != "" {
		args = append(args, "--since="+filters.Since)
	}
	if filters.Until != "" {
		args = append(args, "--until="+filters.Until)
	}
	return args
}

// ParseCommitLog parses "hash|date|author" lines. Blank lines are ignored and
// lines that do not parse are counted in skipped. Author names may contain '|'.
func ParseCommitLog(out []byte) (commits []schema.CommitRecord, skipped int) {
	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 {
			skipped++
			continue
		}
		date, err := schema.ParseDate(strings.TrimSpace(parts[1]))
		if err != nil {
			skipped++
			continue
		}
		commits = append(commits, schema.CommitRecord{
			Hash:   strings.TrimSpace(parts[0]),
			Date:   date,
			Author: parts[2],
		})
	}
	return commits, skipped
}
