package users

import (
	"github.com/spf13/cobra"
)

func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user permissions on repositories",
	}

	cmd.AddCommand(
		NewAddCmd(),
		NewRemoveCmd(),
	)

	return cmd
}
