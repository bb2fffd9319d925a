package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
)

// Create returns the command that runs the interactive grant wizard.
//
// Optional flags:
//
//	--file, -f: Resume from a draft file
//	--save: Write the draft to this file when the wizard ends
//	--auto-publish: Publish immediately instead of submitting for review
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a grant with the interactive wizard",
		Long: `Create a grant program in four steps:
  1. Basic Details
  2. Funding & Dates
  3. Application Form
  4. Review & Publish

A step only advances once its fields are valid. Drafts can be saved to the
API at any step; publishing checks the review committee first.

Examples:
  # Start a new grant
  grantctl create

  # Continue from a saved draft file and keep the result
  grantctl create -f garden.yaml --save garden.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DraftPath, "file", "f", "", "Resume from a draft file")
	cmd.Flags().StringVar(&opts.SavePath, "save", "", "Write the draft to this file when the wizard ends")
	cmd.Flags().BoolVar(&opts.AutoPublish, "auto-publish", false, "Publish immediately instead of submitting for review")

	return cmd
}
