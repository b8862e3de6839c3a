package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/forgelabs/forgectl/internal/identity"
)

// PromptForCredentials displays an interactive form for the operator's email
// and password. Prefilled values are kept as defaults so a --email flag can
// be combined with an interactive password prompt.
func PromptForCredentials(prefill identity.Credentials) (identity.Credentials, error) {
	creds := prefill

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@company.com").
			Validate(validateEmail).
			Value(&creds.Identifier),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validateNonEmpty("password")).
			Value(&creds.Secret),
	))

	if err := form.Run(); err != nil {
		return identity.Credentials{}, fmt.Errorf("credential prompt failed: %w", err)
	}

	return creds, nil
}

func validateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("not an email address")
	}
	return nil
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
