package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rapport/pkg/commands/options"
	"tableflip.dev/rapport/pkg/runner/ui"
	"tableflip.dev/rapport/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive timesheet editor",
		Example: `
rapport ui
rapport ui --year 2026 --month 3 --template acme
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			u := ui.UI{
				Persistence: p,
				Config:      cfg,
				Year:        so.Year,
				Month:       time.Month(so.Month),
				Template:    to.Template,
			}
			return u.Do(context.Background())
		},
	}

	options.AddSheetArgs(cmd, so)
	options.AddTemplateArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
