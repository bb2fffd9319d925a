package commands

import (
	"github.com/spf13/cobra"

	"github.com/grantthrive/grantctl/cmd/grantctl/handlers"
)

// Archive returns the command that uploads draft snapshots to S3.
func Archive() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Upload a draft snapshot to S3-compatible storage",
		Long: `Upload a draft file to the configured archive bucket.

Configure the bucket in the config file (archive.bucket) or with
GRANTCTL_ARCHIVE_BUCKET. Credentials come from the config, the
GRANTCTL_ARCHIVE_ACCESS_KEY_ID/SECRET_ACCESS_KEY variables or the default AWS
credential chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ArchivePut(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Draft file to archive (required)")
	_ = cmd.MarkFlagRequired("file")

	cmd.AddCommand(archiveList())
	cmd.AddCommand(archiveFetch())

	return cmd
}

func archiveList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived draft snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ArchiveList(cmd.Context())
		},
	}
}

func archiveFetch() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fetch KEY",
		Short: "Download an archived snapshot to a draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ArchiveFetch(cmd.Context(), args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "draft.yaml", "Where to write the draft")

	return cmd
}
