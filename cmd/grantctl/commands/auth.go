package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
)

// Login returns the command that signs in and stores the bearer token.
func Login() *cobra.Command {
	var opts handlers.LoginOptions

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to GrantThrive",
		Long: `Sign in and store the bearer token for later commands.

Examples:
  # Interactive prompt
  grantctl login

  # Scripts
  echo "$PASSWORD" | grantctl login --email ana@council.gov.au --password-stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Login(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email")
	cmd.Flags().BoolVar(&opts.PasswordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

// Logout returns the command that ends the session.
func Logout() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Logout(cmd.Context())
		},
	}
}

// Status returns the command that checks the API.
func Status() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check API health, version and the signed in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
