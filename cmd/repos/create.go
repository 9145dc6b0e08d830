package repos

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
)

func NewCreateCmd() *cobra.Command {
	var (
		repoSlug   string
		projectKey string
		isPrivate  bool
	)

	cmd := &cobra.Command{
		Use:   "create-repo",
		Short: "Create a repository",
		Long:  `Create a git repository under a project in the configured workspace.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" || projectKey == "" {
				return fmt.Errorf("both --repo-slug and --project-key must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			_, err = client.CreateRepository(cmd.Context(), repoSlug, projectKey, isPrivate)
			return err
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug (lowercase, no spaces)")
	cmd.Flags().StringVarP(&projectKey, "project-key", "k", "", "Project key the repository belongs to")
	cmd.Flags().BoolVar(&isPrivate, "is-private", false, "Create the repository as private")

	return cmd
}
