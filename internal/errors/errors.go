package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Identity provider errors (IDP-001 to IDP-099)
	ErrCodeIdentityTransport ErrorCode = "IDP-001"
	ErrCodeIdentityProtocol  ErrorCode = "IDP-002"

	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeLoginRejected ErrorCode = "AUTH-001"
	ErrCodeTokenExchange ErrorCode = "AUTH-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeSessionWrite    ErrorCode = "IO-001"
	ErrCodeSessionRead     ErrorCode = "IO-002"
	ErrCodeDirectoryFailed ErrorCode = "IO-003"
	ErrCodeFileWriteFailed ErrorCode = "IO-004"

	// Setup errors (SETUP-001 to SETUP-099)
	ErrCodeDownloadFailed   ErrorCode = "SETUP-001"
	ErrCodeInstallFailed    ErrorCode = "SETUP-002"
	ErrCodeNoPackageManager ErrorCode = "SETUP-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodePresetUnknown ErrorCode = "CONFIG-002"
)

// ForgeError represents an enhanced error with code, suggestions, and documentation
type ForgeError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *ForgeError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// New creates a new ForgeError
func New(code ErrorCode, message string) *ForgeError {
	return &ForgeError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ForgeError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ForgeError {
	return &ForgeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ForgeError) WithSuggestion(suggestion string) *ForgeError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ForgeError) WithSuggestions(suggestions ...string) *ForgeError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *ForgeError) WithDocs(url string) *ForgeError {
	e.DocsURL = url
	return e
}

// CodeOf returns the error code carried by err, or "" if err is not a ForgeError
func CodeOf(err error) ErrorCode {
	var forgeErr *ForgeError
	if stderrors.As(err, &forgeErr) {
		return forgeErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Common error constructors for frequently used errors

// NewTransportError creates an error for a request that could not be sent
// or that received no response
func NewTransportError(endpoint string, cause error) *ForgeError {
	return Wrap(ErrCodeIdentityTransport, fmt.Sprintf("identity service unreachable: %s", endpoint), cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify FORGE_IDENTITY_URL points at the right environment")
}

// NewProtocolError creates an error for a malformed or unexpected-shape response
func NewProtocolError(endpoint string, details string) *ForgeError {
	return New(ErrCodeIdentityProtocol, fmt.Sprintf("unexpected response from %s: %s", endpoint, details)).
		WithSuggestion("The identity service may be down or behind a proxy returning HTML").
		WithSuggestion("Run with --verbose to see the raw response")
}

// NewLoginRejectedError creates an error carrying the provider-derived
// rejection reason. The reason is the message itself, so the operator sees
// the provider's own wording.
func NewLoginRejectedError(reason string) *ForgeError {
	return New(ErrCodeLoginRejected, reason).
		WithSuggestions(
			"Check your email and password",
			"Run 'forgectl login' to try again").
		WithDocs("https://docs.forgelabs.io/cli/login")
}

// NewSessionWriteError creates an error for a failed session record write
func NewSessionWriteError(path string, cause error) *ForgeError {
	return Wrap(ErrCodeSessionWrite, fmt.Sprintf("failed to write session record: %s", path), cause).
		WithSuggestion("Check that the directory exists and is writable")
}

// NewNoPackageManagerError creates an error for an unrecognized system
func NewNoPackageManagerError() *ForgeError {
	return New(ErrCodeNoPackageManager, "no supported package manager found").
		WithSuggestion("Install Homebrew (macOS) or use a distribution with apt, dnf, pacman, or apk").
		WithSuggestion("Re-run with --skip-install to provision the workspace without packages")
}

// NewPresetUnknownError creates an unknown preset error
func NewPresetUnknownError(preset string) *ForgeError {
	return New(ErrCodePresetUnknown, fmt.Sprintf("unknown configuration preset: %s", preset)).
		WithSuggestion("Use one of: production, staging")
}
