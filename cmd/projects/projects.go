package projects

import (
	"github.com/spf13/cobra"
)

func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage Bitbucket projects",
	}

	cmd.AddCommand(
		NewCreateCmd(),
		NewGetCmd(),
	)

	return cmd
}
