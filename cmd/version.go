package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/softwarewrighter/sw-checklist/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build metadata and Go version used to build this tool.",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Get().Long())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Go Version:", runtime.Version())
		},
	}
}
