package branches

import (
	"github.com/spf13/cobra"
)

func NewBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "Manage branch restrictions on repositories",
	}

	cmd.AddCommand(
		NewExemptCmd(),
		NewListCmd(),
	)

	return cmd
}
