package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/rapport/pkg/export"
	"tableflip.dev/rapport/pkg/store"
	"tableflip.dev/rapport/pkg/template"
	"tableflip.dev/rapport/pkg/timesheet"
)

// Service provides high-level operations over templates and exports.
// It wraps persistence and the form adapter so the TUI and CLI share logic.
type Service struct {
	Persistence store.Persistence
	Config      store.Config
}

var errNoPersistence = errors.New("app: no persistence configured")

// Templates returns all stored templates, sorted by name.
func (s *Service) Templates(ctx context.Context) ([]*template.Template, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(ctx), nil
}

// Template fetches one template by name.
func (s *Service) Template(ctx context.Context, name string) (*template.Template, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Get(ctx, name)
}

// SaveTemplate stores a personal-info snapshot under a name,
// overwriting any same-named template.
func (s *Service) SaveTemplate(ctx context.Context, name string, info timesheet.PersonalInfo) (*template.Template, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("app: template name must not be empty")
	}
	t := template.New(name, info)
	if err := s.Persistence.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTemplate removes a template by name.
func (s *Service) DeleteTemplate(ctx context.Context, name string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Delete(name)
}

// Export fills the blank form with the sheet and writes the output file
// into dir. Returns the written path.
func (s *Service) Export(ctx context.Context, sheet timesheet.Sheet, dir string) (string, error) {
	if s.Config == nil {
		return "", errors.New("app: no config, cannot locate the blank form")
	}
	return export.WriteFile(ctx, s.Config.FormPath(), dir, sheet)
}
