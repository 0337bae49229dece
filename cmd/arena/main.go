// Command arena is the terminal client for the sports arena platform. It
// signs in through the gateway or directly against the IdP, keeps the
// session between runs, and exposes the booking, field, event, and
// notification surfaces per role.
package main

import (
	"os"

	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitStatus(err)) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

// exitStatus maps error categories to distinct exit codes so scripts can
// tell bad input from auth problems from an unreachable gateway.
func exitStatus(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return 2
	case apperrors.IsUnauthorized(err) || apperrors.IsForbidden(err):
		return 3
	case apperrors.IsNetwork(err):
		return 4
	default:
		return 1
	}
}
