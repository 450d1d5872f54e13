package cmd

import (
	"github.com/spf13/cobra"

	"github.com/softwarewrighter/sw-checklist/internal/domain"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List the crates found under a path",
		Long: `List every Cargo.toml found under the path (default: current directory)
with the crate name, its detected kind and capabilities.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Root: pathArg(args)})
		},
	}
}
