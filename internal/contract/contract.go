// Package contract provides interfaces and shared utilities for reef's internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/reef/schema"
)

// GitClient is the commit source for reef.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// IsRepository reports whether path is inside a git working tree.
	// It never returns an error; any failure means false.
	IsRepository(ctx context.Context, path string) bool

	// ListCommits returns the commits matching filters in git's native order.
	ListCommits(ctx context.Context, repoPath string, filters schema.Filters) ([]schema.CommitRecord, error)
}
