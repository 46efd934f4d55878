package template

import (
	"time"

	"tableflip.dev/rapport/pkg/timesheet"
)

// Template is a named snapshot of the personal-info header fields.
// Day entries are deliberately not part of a template.
type Template struct {
	Name    string                 `json:"name"`
	Info    timesheet.PersonalInfo `json:"personalInfo"`
	SavedAt time.Time              `json:"savedAt"`
}

func New(name string, info timesheet.PersonalInfo) *Template {
	return &Template{
		Name: name,
		Info: info,
	}
}
