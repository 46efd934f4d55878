package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Clock is a parsed wall-clock time.
type Clock struct {
	Hours   int
	Minutes int
}

// ParseTime parses a clock string of the form "H:MM" or "HH:MM".
// Surrounding whitespace is ignored. The second return value is false
// for anything else, including out-of-range components.
func ParseTime(s string) (Clock, bool) {
	trimmed := strings.TrimSpace(s)
	if !clockPattern.MatchString(trimmed) {
		return Clock{}, false
	}
	sep := strings.IndexByte(trimmed, ':')
	hours, err := strconv.Atoi(trimmed[:sep])
	if err != nil {
		return Clock{}, false
	}
	minutes, err := strconv.Atoi(trimmed[sep+1:])
	if err != nil {
		return Clock{}, false
	}
	if hours > 23 || minutes > 59 {
		return Clock{}, false
	}
	return Clock{Hours: hours, Minutes: minutes}, true
}

// MinutesFromMidnight converts the clock to minutes since midnight.
func (c Clock) MinutesFromMidnight() int {
	return c.Hours*60 + c.Minutes
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hours, c.Minutes)
}

// CalculateMinutes returns the elapsed minutes of the interval von..bis.
// Either side failing to parse yields 0. A bis earlier than von is read
// as an end on the following day, so the interval wraps midnight; equal
// times yield 0.
func CalculateMinutes(von, bis string) int {
	start, ok := ParseTime(von)
	if !ok {
		return 0
	}
	end, ok := ParseTime(bis)
	if !ok {
		return 0
	}
	s := start.MinutesFromMidnight()
	e := end.MinutesFromMidnight()
	if e >= s {
		return e - s
	}
	return (MinutesPerDay - s) + e
}

// FormatMinutes renders a minute total as "H:MM", e.g. 510 -> "8:30".
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
