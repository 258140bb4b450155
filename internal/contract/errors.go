package contract

import "errors"

// Error kinds surfaced to the user. Callers wrap these with context and
// match them with errors.Is.
var (
	// ErrNotARepository means there is no usable commit source at the given path.
	ErrNotARepository = errors.New("not a git repository")

	// ErrInvalidArgument means a user-supplied value failed parsing or range checks.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrGitUnavailable means the git executable could not be started.
	ErrGitUnavailable = errors.New("git is unavailable")
)

// NotARepositoryHint is printed after the error for ErrNotARepository.
const NotARepositoryHint = "Run this command from inside a git repository, or navigate to one first."
