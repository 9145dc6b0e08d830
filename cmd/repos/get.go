package repos

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
	"github.com/bbcloud/bbctl/utils"
)

func NewGetCmd() *cobra.Command {
	var (
		repoSlug string
		output   string
		columns  string
	)

	cmd := &cobra.Command{
		Use:   "get-repo",
		Short: "Get a repository by slug",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoSlug == "" {
				return fmt.Errorf("--repo-slug must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			repo, err := client.GetRepository(cmd.Context(), repoSlug)
			if err != nil {
				return err
			}

			return utils.PrintStructured("repository", repo, output, columns)
		},
	}

	cmd.Flags().StringVarP(&repoSlug, "repo-slug", "s", "", "Repository slug")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json|yaml|plain")
	cmd.Flags().StringVar(&columns, "columns", "slug,name,isPrivate", "Columns for plain output")

	return cmd
}
