package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbcloud/bbctl/cmd/branches"
	"github.com/bbcloud/bbctl/cmd/projects"
	"github.com/bbcloud/bbctl/cmd/repos"
	"github.com/bbcloud/bbctl/cmd/users"
	"github.com/bbcloud/bbctl/internal/config"
)

func NewRootCmd() *cobra.Command {
	var (
		debug   bool
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "bbctl",
		Short:         "CLI tool for Bitbucket Cloud workspace management",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			config.GlobalLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			config.GlobalCfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file with BITBUCKET_* variables")

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		projects.NewProjectsCmd(),
		repos.NewReposCmd(),
		users.NewUsersCmd(),
		branches.NewBranchesCmd(),
	)

	return cmd
}
