package repos

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
)

func NewDeleteCmd() *cobra.Command {
	var repoSlug string

	cmd := &cobra.Command{
		Use:   "delete-repo",
		Short: "Delete a repository",
		Long:  `Delete a repository from the configured workspace. Use with caution as this operation cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" {
				return fmt.Errorf("--repo-slug must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			return client.DeleteRepository(cmd.Context(), repoSlug)
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug")

	return cmd
}
