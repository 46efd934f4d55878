// Package export fills the fixed-layout Stundenrapport form from a
// sheet. The form's field-name schema is external; this package only
// populates it by name.
package export

import (
	"fmt"
	"time"

	"tableflip.dev/rapport/pkg/timesheet"
)

// Field names on the report form. The tab.* day fields are addressed
// as tab.<kind>_<slot>.<day> respectively tab.<kind>.<day>.
const (
	fieldName    = "name"
	fieldVorname = "vorname"
	fieldGebDat  = "gebdat"
	fieldPersNr  = "persnr"
	fieldYear    = "jahr"

	fieldTotalHours   = "total_std"
	fieldTotalMinutes = "total_min"

	// MonthField is the month dropdown; it takes a German month label.
	MonthField = "monat"
)

// SignatureDateFields stay editable after export so the printed form
// can be dated on signing.
var SignatureDateFields = []string{
	"datum_arbeitnehmer",
	"datum_arbeitgeber",
}

var monthLabels = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FieldNames enumerates the form's complete text-field namespace, in
// a stable order. Export locks every one of these, populated or not.
func FieldNames() []string {
	names := []string{
		fieldName, fieldVorname, fieldGebDat, fieldPersNr, fieldYear,
		fieldTotalHours, fieldTotalMinutes,
	}
	for day := 1; day <= timesheet.DaysPerSheet; day++ {
		for slot := 0; slot < timesheet.SlotsPerDay; slot++ {
			names = append(names,
				fmt.Sprintf("tab.ein_%d.%d", slot, day),
				fmt.Sprintf("tab.aus_%d.%d", slot, day),
			)
		}
		names = append(names,
			fmt.Sprintf("tab.totall_dd.%d", day),
			fmt.Sprintf("tab.bemerkung.%d", day),
		)
	}
	return names
}

// MonthLabel returns the dropdown label for a month.
func MonthLabel(m time.Month) (string, bool) {
	if m < time.January || m > time.December {
		return "", false
	}
	return monthLabels[m-1], true
}

// OutputName is the download file name for a given month.
func OutputName(year int, month time.Month) string {
	return fmt.Sprintf("Stundenrapport_%d_%d.pdf", year, int(month))
}

// FieldMap builds the complete field-name to value mapping for a sheet.
// Raw field strings are exported verbatim, valid or not; empty values
// are omitted so untouched form fields stay blank.
func FieldMap(s timesheet.Sheet) map[string]string {
	m := make(map[string]string)

	put := func(name, value string) {
		if value != "" {
			m[name] = value
		}
	}

	put(fieldName, s.Info.Name)
	put(fieldVorname, s.Info.Vorname)
	put(fieldGebDat, s.Info.GebDat)
	put(fieldPersNr, s.Info.PersNr)
	if s.Year != 0 {
		put(fieldYear, fmt.Sprintf("%d", s.Year))
	}

	for day := 1; day <= timesheet.DaysPerSheet; day++ {
		entry := s.Day(day)
		for slot, ts := range entry.Slots {
			put(fmt.Sprintf("tab.ein_%d.%d", slot, day), ts.Von)
			put(fmt.Sprintf("tab.aus_%d.%d", slot, day), ts.Bis)
		}
		if minutes := entry.Minutes(); minutes > 0 {
			put(fmt.Sprintf("tab.totall_dd.%d", day), timesheet.FormatMinutes(minutes))
		}
		put(fmt.Sprintf("tab.bemerkung.%d", day), entry.Remark)
	}

	put(fieldTotalHours, fmt.Sprintf("%d", s.TotalHours()))
	put(fieldTotalMinutes, fmt.Sprintf("%02d", s.RemainderMinutes()))

	return m
}
