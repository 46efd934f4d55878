package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rapport/pkg/template"
	"tableflip.dev/rapport/pkg/timesheet"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Templates renders the stored templates as a table.
func (pp *PrettyPrint) Templates(all ...*template.Template) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.AddRow("NAME", "NAME/VORNAME", "PERS-NR", "GESPEICHERT")
	for _, t := range all {
		table.AddRow(
			t.Name,
			fmt.Sprintf("%s %s", t.Info.Name, t.Info.Vorname),
			t.Info.PersNr,
			t.SavedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(table)
	fmt.Println("")
}

// MonthSummary prints the per-day and monthly totals of a sheet.
func (pp *PrettyPrint) MonthSummary(s timesheet.Sheet) {
	table := uitable.New()
	table.AddRow("TAG", "TOTAL", "BEMERKUNG")
	for day := 1; day <= timesheet.DaysPerSheet; day++ {
		entry := s.Day(day)
		minutes := entry.Minutes()
		if minutes == 0 && entry.Remark == "" {
			continue
		}
		table.AddRow(fmt.Sprintf("%d", day), timesheet.FormatMinutes(minutes), entry.Remark)
	}
	fmt.Println(table)

	t := color.New(color.Bold)
	_, _ = t.Printf("Total: %d Std %02d Min\n", s.TotalHours(), s.RemainderMinutes())
}
