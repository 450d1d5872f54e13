package cmd

import (
	"github.com/spf13/cobra"

	"github.com/softwarewrighter/sw-checklist/internal/domain"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <report>",
		Short: "Display a previously saved report",
		Long:  "Display a report written with --report, in the same format as a live run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}
}
