package repos

import (
	"github.com/spf13/cobra"
)

func NewReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage Bitbucket repositories",
	}

	cmd.AddCommand(
		NewCreateCmd(),
		NewGetCmd(),
		NewDeleteCmd(),
	)

	return cmd
}
