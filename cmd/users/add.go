package users

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
)

func NewAddCmd() *cobra.Command {
	var (
		repoSlug   string
		username   string
		permission string
	)

	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Grant a user access to a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" || username == "" {
				return fmt.Errorf("both --repo-slug and --username must be specified")
			}
			if !bitbucket.ValidPermission(permission) {
				return fmt.Errorf("invalid --permission %q: must be one of read, write, admin", permission)
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			_, err = client.GrantUserPermission(cmd.Context(), repoSlug, username, permission)
			return err
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Bitbucket username or email to add")
	cmd.Flags().StringVarP(&permission, "permission", "p", bitbucket.PermissionRead, "Permission level to grant: read|write|admin")

	return cmd
}
