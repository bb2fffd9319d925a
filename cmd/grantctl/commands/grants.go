package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
	"github.com/grantthrive/grantctl/internal/api"
	"github.com/grantthrive/grantctl/internal/grant"
)

// Grants returns the command group for reading grants from the API.
func Grants() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grants",
		Short: "List and inspect grants",
	}

	cmd.AddCommand(grantsList())
	cmd.AddCommand(grantsGet())
	cmd.AddCommand(grantsCategories())

	return cmd
}

func grantsList() *cobra.Command {
	var opts api.ListOptions
	var status string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List grants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Status = grant.Status(status)
			return handlers.GrantsList(cmd.Context(), opts, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (draft, published, pending_review, ...)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search titles and descriptions")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "Grants per page")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func grantsGet() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.GrantsGet(cmd.Context(), args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func grantsCategories() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List grant categories offered by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.GrantsCategories(cmd.Context())
		},
	}
}
