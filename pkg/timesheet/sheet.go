package timesheet

import "time"

const (
	// DaysPerSheet is the fixed day-row count on the report form,
	// regardless of the actual month length.
	DaysPerSheet = 31
	// SlotsPerDay is the number of von/bis interval pairs per day.
	SlotsPerDay = 3
)

// TimeSlot is one start/end interval. Values are raw user input and may
// be empty or malformed; malformed values are preserved verbatim and
// simply contribute zero minutes.
type TimeSlot struct {
	Von string `json:"von"`
	Bis string `json:"bis"`
}

// Minutes returns the elapsed minutes of the slot.
func (s TimeSlot) Minutes() int {
	return CalculateMinutes(s.Von, s.Bis)
}

// DayEntry is one day-row: three slots plus a free-text remark.
type DayEntry struct {
	Slots  [SlotsPerDay]TimeSlot `json:"slots"`
	Remark string                `json:"remark,omitempty"`
}

// Minutes sums the day's slots.
func (d DayEntry) Minutes() int {
	total := 0
	for _, s := range d.Slots {
		total += s.Minutes()
	}
	return total
}

// PersonalInfo holds the header fields of the report form.
type PersonalInfo struct {
	Name    string `json:"name,omitempty"`
	Vorname string `json:"vorname,omitempty"`
	GebDat  string `json:"gebdat,omitempty"`
	PersNr  string `json:"persnr,omitempty"`
}

// Sheet is one month of entries. It has value semantics: the day array
// is part of the struct, so copies never share mutable state and the
// Set* methods can return an updated copy without touching the original.
type Sheet struct {
	Year  int
	Month time.Month
	Info  PersonalInfo
	Days  [DaysPerSheet]DayEntry
}

// NewSheet returns an empty sheet for the given month.
func NewSheet(year int, month time.Month) Sheet {
	return Sheet{Year: year, Month: month}
}

// Day returns the entry for a 1-based day. Out-of-range days read as empty.
func (s Sheet) Day(day int) DayEntry {
	if day < 1 || day > DaysPerSheet {
		return DayEntry{}
	}
	return s.Days[day-1]
}

// DayMinutes sums the slots of a 1-based day.
func (s Sheet) DayMinutes(day int) int {
	return s.Day(day).Minutes()
}

// TotalMinutes sums all day totals.
func (s Sheet) TotalMinutes() int {
	total := 0
	for _, d := range s.Days {
		total += d.Minutes()
	}
	return total
}

// TotalHours is the completed-hours part of the monthly total, a floor.
func (s Sheet) TotalHours() int {
	return s.TotalMinutes() / 60
}

// RemainderMinutes is the minute remainder of the monthly total.
func (s Sheet) RemainderMinutes() int {
	return s.TotalMinutes() % 60
}

// SetSlotField returns a copy with one von or bis field replaced.
// Out-of-range coordinates leave the sheet unchanged.
func (s Sheet) SetSlotField(day, slot int, bis bool, value string) Sheet {
	if day < 1 || day > DaysPerSheet || slot < 0 || slot >= SlotsPerDay {
		return s
	}
	if bis {
		s.Days[day-1].Slots[slot].Bis = value
	} else {
		s.Days[day-1].Slots[slot].Von = value
	}
	return s
}

// SetRemark returns a copy with one remark replaced.
func (s Sheet) SetRemark(day int, remark string) Sheet {
	if day < 1 || day > DaysPerSheet {
		return s
	}
	s.Days[day-1].Remark = remark
	return s
}

// Empty reports whether no field of the sheet's day grid holds a value.
func (s Sheet) Empty() bool {
	for _, d := range s.Days {
		if d.Remark != "" {
			return false
		}
		for _, sl := range d.Slots {
			if sl.Von != "" || sl.Bis != "" {
				return false
			}
		}
	}
	return true
}
