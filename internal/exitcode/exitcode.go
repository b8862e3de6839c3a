package exitcode

import (
	"os"
	"strings"

	"github.com/forgelabs/forgectl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// SetupError indicates a workspace provisioning or install failure
	SetupError = 3

	// AuthError indicates the identity provider rejected the credentials
	AuthError = 5

	// NetworkError indicates the identity provider could not be reached
	// or returned a malformed response
	NetworkError = 6

	// Interrupted indicates the run was cancelled by the operator
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Typed error codes are checked first; string sniffing is only a fallback
// for errors that originate outside this module (cobra, stdlib).
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch code := errors.CodeOf(err); {
	case code == errors.ErrCodeLoginRejected || code == errors.ErrCodeTokenExchange:
		return AuthError
	case code == errors.ErrCodeIdentityTransport || code == errors.ErrCodeIdentityProtocol:
		return NetworkError
	case strings.HasPrefix(string(code), "SETUP-"):
		return SetupError
	case strings.HasPrefix(string(code), "CONFIG-"):
		return UsageError
	case code != "":
		return GeneralError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") {
		return NetworkError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case SetupError:
		return "Workspace setup failed"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
