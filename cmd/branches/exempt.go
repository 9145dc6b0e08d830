package branches

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
)

func NewExemptCmd() *cobra.Command {
	var (
		repoSlug string
		username string
		pattern  string
	)

	cmd := &cobra.Command{
		Use:   "exempt",
		Short: "Exempt a user from the pull-request requirement",
		Long:  `Exempt a user from requiring a pull request to push changes to branches matching the pattern.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" || username == "" {
				return fmt.Errorf("both --repo-slug and --username must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			_, err = client.ExemptUserFromPush(cmd.Context(), repoSlug, username, pattern)
			return err
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Bitbucket username or email to exempt")
	cmd.Flags().StringVar(&pattern, "pattern", "master", "Glob pattern of branches the exemption applies to")

	return cmd
}
