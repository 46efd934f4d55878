package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rapport/pkg/commands/options"
	"tableflip.dev/rapport/pkg/runner/export"
	"tableflip.dev/rapport/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	to := &options.TemplateOptions{}
	outDir := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "fill the blank report form for a month",
		Long: `Fill the blank report form for a month and write the result next to
the current directory. Day cells stay blank; with --template the header
is filled from a stored personal-info template.`,
		Example: `
rapport export
rapport export --year 2026 --month 3 --template acme --out ~/reports
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			e := export.Export{
				Persistence: p,
				Config:      cfg,
				Year:        so.Year,
				Month:       time.Month(so.Month),
				Template:    to.Template,
				OutDir:      outDir,
			}
			return e.Do(context.Background())
		},
	}

	options.AddSheetArgs(cmd, so)
	options.AddTemplateArgs(cmd, to)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory.")

	topLevel.AddCommand(cmd)
}
