package cli

import "github.com/junioryono/beca/fault"

// Exit statuses.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitTransient = 2
)

// ExitCode maps err to a process exit status. Database failures are worth
// retrying and get their own status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case fault.Transient(err):
		return ExitTransient
	default:
		return ExitFailure
	}
}
