package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rapport",
		Short: base.Wrap80("Monthly timesheet editing and PDF export on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addExport(topLevel)
	addTemplate(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
