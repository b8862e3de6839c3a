package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/forgelabs/forgectl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "login rejected",
			err:  errors.NewLoginRejectedError("invalid credentials"),
			want: AuthError,
		},
		{
			name: "token exchange",
			err:  errors.New(errors.ErrCodeTokenExchange, "no token field"),
			want: AuthError,
		},
		{
			name: "transport",
			err:  errors.NewTransportError("https://id.forgelabs.io", fmt.Errorf("connection refused")),
			want: NetworkError,
		},
		{
			name: "protocol",
			err:  errors.NewProtocolError("https://id.forgelabs.io/self-service/login/api", "not JSON"),
			want: NetworkError,
		},
		{
			name: "wrapped forge error",
			err:  fmt.Errorf("login: %w", errors.NewLoginRejectedError("nope")),
			want: AuthError,
		},
		{
			name: "setup failure",
			err:  errors.NewNoPackageManagerError(),
			want: SetupError,
		},
		{
			name: "preset unknown",
			err:  errors.NewPresetUnknownError("dev"),
			want: UsageError,
		},
		{
			name: "session write",
			err:  errors.NewSessionWriteError("/tmp/session.json", fmt.Errorf("read-only fs")),
			want: GeneralError,
		},
		{
			name: "cobra unknown command",
			err:  stderrors.New(`unknown command "lgoin" for "forgectl"`),
			want: UsageError,
		},
		{
			name: "plain error",
			err:  stderrors.New("something broke"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	for _, code := range []int{Success, GeneralError, UsageError, SetupError, AuthError, NetworkError, Interrupted} {
		if Description(code) == "Unknown error" {
			t.Errorf("code %d should have a description", code)
		}
	}
	if Description(99) != "Unknown error" {
		t.Errorf("unknown codes should report 'Unknown error'")
	}
}
