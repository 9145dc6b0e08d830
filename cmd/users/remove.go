package users

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
)

func NewRemoveCmd() *cobra.Command {
	var (
		repoSlug string
		username string
	)

	cmd := &cobra.Command{
		Use:   "remove-user",
		Short: "Remove a user's access from a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" || username == "" {
				return fmt.Errorf("both --repo-slug and --username must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			return client.RevokeUserPermission(cmd.Context(), repoSlug, username)
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Bitbucket username or email to remove")

	return cmd
}
