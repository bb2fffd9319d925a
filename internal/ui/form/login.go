package form

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"
)

// Credentials are the answers of the login prompt.
type Credentials struct {
	Email    string
	Password string
}

// PromptLogin asks for an email and password. A non-empty email is used as
// the default.
func PromptLogin(ctx context.Context, email string) (Credentials, error) {
	c := Credentials{Email: email}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&c.Email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&c.Password).
				Validate(validateRequired),
		).Title("Sign in to GrantThrive"),
	).RunWithContext(ctx)
	if err != nil {
		return Credentials{}, formErr(err)
	}
	c.Email = strings.TrimSpace(c.Email)
	return c, nil
}
