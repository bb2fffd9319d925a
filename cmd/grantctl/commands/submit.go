package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
	"github.com/grantthrive/grantctl/internal/util/ptr"
)

// Submit returns the command that saves or publishes a draft file.
func Submit() *cobra.Command {
	var opts handlers.SubmitOptions
	var autoPublish bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Save or publish a draft file",
		Long: `Save a draft file to the API, or publish it with --publish.

Publishing requires at least one review committee member. Without
--auto-publish (or autoPublish in the file) the grant is submitted for
review instead of going live.

Examples:
  grantctl submit -f garden.yaml
  grantctl submit -f garden.yaml --publish --auto-publish`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("auto-publish") {
				opts.AutoPublish = ptr.To(autoPublish)
			}
			return handlers.Submit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DraftPath, "file", "f", "", "Draft file to submit (required)")
	cmd.Flags().BoolVar(&opts.Publish, "publish", false, "Publish instead of saving a draft")
	cmd.Flags().BoolVar(&autoPublish, "auto-publish", false, "Override the draft's autoPublish setting")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// Validate returns the command that checks a draft file step by step.
func Validate() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a draft file against every wizard step",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(path)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Draft file to validate (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
