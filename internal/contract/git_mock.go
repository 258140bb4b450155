package contract

import (
	"context"

	"github.com/huangsam/reef/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is an in-memory GitClient for tests.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// IsRepository implements the GitClient interface.
func (m *MockGitClient) IsRepository(ctx context.Context, path string) bool {
	ret := m.Called(ctx, path)
	return ret.Bool(0)
}

// ListCommits implements the GitClient interface.
func (m *MockGitClient) ListCommits(ctx context.Context, repoPath string, filters schema.Filters) ([]schema.CommitRecord, error) {
	ret := m.Called(ctx, repoPath, filters)
	commits, _ := ret.Get(0).([]schema.CommitRecord)
	return commits, ret.Error(1)
}
