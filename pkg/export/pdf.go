package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"tableflip.dev/rapport/pkg/timesheet"
)

// form JSON shapes expected by pdfcpu's fill API.
type formData struct {
	Forms []formPage `json:"forms"`
}

type formPage struct {
	TextFields []formField `json:"textfield,omitempty"`
	ComboBoxes []formField `json:"combobox,omitempty"`
}

type formField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

// buildFormData renders the sheet as pdfcpu fill JSON. The whole known
// field namespace is emitted and locked, empty cells included, so the
// output form is read-only everywhere except the signature date fields.
func buildFormData(s timesheet.Sheet) formData {
	fields := FieldMap(s)

	page := formPage{}
	for _, name := range FieldNames() {
		page.TextFields = append(page.TextFields, formField{
			Name:   name,
			Value:  fields[name],
			Locked: true,
		})
	}
	for _, name := range SignatureDateFields {
		page.TextFields = append(page.TextFields, formField{Name: name, Value: "", Locked: false})
	}
	if label, ok := MonthLabel(s.Month); ok {
		page.ComboBoxes = append(page.ComboBoxes, formField{
			Name:   MonthField,
			Value:  label,
			Locked: true,
		})
	}
	return formData{Forms: []formPage{page}}
}

// Fill populates the blank form with the sheet's values and writes the
// result to out. The form's schema is external; fields the form does
// not carry are skipped by the fill, they never fail the export.
func Fill(form io.ReadSeeker, s timesheet.Sheet, out io.Writer) error {
	data, err := json.Marshal(buildFormData(s))
	if err != nil {
		return fmt.Errorf("encoding form data: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.FillForm(form, bytes.NewReader(data), out, conf); err != nil {
		return fmt.Errorf("filling form: %w", err)
	}
	return nil
}

// FetchForm loads the blank form from a local path or an http(s) URL.
func FetchForm(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching form: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching form: unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}
	return b, nil
}

// WriteFile fetches the blank form, fills it, and writes the named
// output file into dir. Returns the output path.
func WriteFile(ctx context.Context, formPath, dir string, s timesheet.Sheet) (string, error) {
	blank, err := FetchForm(ctx, formPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Fill(bytes.NewReader(blank), s, &buf); err != nil {
		return "", err
	}

	outPath := filepath.Join(dir, OutputName(s.Year, s.Month))
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}
