package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grantthrive/grantctl/internal/ui/form"
)

// Factory function variables for auth - can be replaced in tests.
var (
	// promptLogin asks for credentials interactively.
	promptLogin = form.PromptLogin

	// stdin is where --password-stdin reads from.
	stdin io.Reader = os.Stdin
)

// LoginOptions configures Login.
type LoginOptions struct {
	Email         string
	PasswordStdin bool
}

// Login signs in and stores the bearer token.
func Login(ctx context.Context, opts LoginOptions) error {
	apiClient, cfg, err := client(ctx)
	if err != nil {
		return err
	}

	var creds form.Credentials
	switch {
	case opts.PasswordStdin:
		if opts.Email == "" {
			return errors.New("--email is required with --password-stdin")
		}
		password, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read password: %w", err)
		}
		creds = form.Credentials{Email: opts.Email, Password: strings.TrimRight(password, "\r\n")}
	case isInteractive():
		if creds, err = promptLogin(ctx, opts.Email); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: use --email with --password-stdin in scripts", ErrNotInteractive)
	}

	user, err := apiClient.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	if user != nil && user.FullName != "" {
		fmt.Printf("Signed in as %s (%s)\n", user.FullName, user.Email)
	} else {
		fmt.Printf("Signed in as %s\n", creds.Email)
	}
	fmt.Printf("Token stored in %s\n", cfg.TokenFile)
	return nil
}

// Logout ends the session and removes the stored token.
func Logout(ctx context.Context) error {
	apiClient, _, err := client(ctx)
	if err != nil {
		return err
	}
	if err := apiClient.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
