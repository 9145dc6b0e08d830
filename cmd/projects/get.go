package projects

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/internal/bitbucket"
	"github.com/bbcloud/bbctl/utils"
)

func NewGetCmd() *cobra.Command {
	var (
		key     string
		output  string
		columns string
	)

	cmd := &cobra.Command{
		Use:   "get-project",
		Short: "Get a project by key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return fmt.Errorf("--key must be specified")
			}

			client, err := bitbucket.NewClient(context.Background())
			if err != nil {
				return err
			}

			project, err := client.GetProject(cmd.Context(), key)
			if err != nil {
				return err
			}

			return utils.PrintStructured("project", project, output, columns)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Project key")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json|yaml|plain")
	cmd.Flags().StringVar(&columns, "columns", "key,name,description", "Columns for plain output")

	return cmd
}
