package tmpl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/rapport/pkg/printers"
	"tableflip.dev/rapport/pkg/store"
	"tableflip.dev/rapport/pkg/template"
	"tableflip.dev/rapport/pkg/timesheet"
)

// Save stores a personal-info snapshot under a name, overwriting any
// same-named template.
type Save struct {
	Persistence store.Persistence
	Name        string
	Info        timesheet.PersonalInfo
}

func (s *Save) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not save, no persistence")
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return errors.New("template name required")
	}
	// a same-named save replaces the stored template wholesale
	return s.Persistence.Save(template.New(name, s.Info))
}

// List prints all stored templates.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	pp := printers.PrettyPrint{}
	pp.Title("Templates")
	pp.Templates(l.Persistence.List(ctx)...)
	return nil
}

// Delete removes a template, asking for confirmation unless forced.
type Delete struct {
	Persistence store.Persistence
	Name        string
	Force       bool

	// In defaults to stdin; tests substitute a reader.
	In io.Reader
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	if !d.Force {
		in := d.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Printf("delete template %q? [y/N] ", d.Name)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}
	return d.Persistence.Delete(d.Name)
}
