// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SheetOptions selects the report month.
type SheetOptions struct {
	Year  int
	Month int
}

// AddSheetArgs wires month selection flags on the provided command.
func AddSheetArgs(cmd *cobra.Command, o *SheetOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Report year. Defaults to the current year.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0,
		"Report month (1-12). Defaults to the current month.")
}

// TemplateOptions names a stored personal-info template.
type TemplateOptions struct {
	Template string
	Force    bool
}

// AddTemplateArgs wires the template selection flag.
func AddTemplateArgs(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().StringVarP(&o.Template, "template", "t", "",
		"Use the named personal-info template.")
}

// AddForceArg wires the confirmation skip flag.
func AddForceArg(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Skip the confirmation prompt.")
}

// InfoOptions captures the personal-info header fields.
type InfoOptions struct {
	Name    string
	Vorname string
	GebDat  string
	PersNr  string
}

// AddInfoArgs wires the personal-info flags.
func AddInfoArgs(cmd *cobra.Command, o *InfoOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Last name.")
	cmd.Flags().StringVar(&o.Vorname, "vorname", "", "First name.")
	cmd.Flags().StringVar(&o.GebDat, "gebdat", "", "Date of birth.")
	cmd.Flags().StringVar(&o.PersNr, "persnr", "", "Personnel number.")
}
