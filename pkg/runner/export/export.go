package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/rapport/pkg/app"
	"tableflip.dev/rapport/pkg/store"
	"tableflip.dev/rapport/pkg/timesheet"
)

// Export produces a filled form without opening the editor. Day cells
// stay blank; the header comes from a stored template, so the result is
// a printable month form ready for manual entry.
type Export struct {
	Persistence store.Persistence
	Config      store.Config

	Year     int
	Month    time.Month
	Template string
	OutDir   string
}

func (e *Export) Do(ctx context.Context) error {
	if e.Config == nil {
		return errors.New("can not export, no config")
	}

	year, month := e.Year, e.Month
	if year == 0 || month == 0 {
		now := time.Now()
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = now.Month()
		}
	}

	sheet := timesheet.NewSheet(year, month)
	if e.Template != "" {
		if e.Persistence == nil {
			return errors.New("can not load template, no persistence")
		}
		t, err := e.Persistence.Get(ctx, e.Template)
		if err != nil {
			return err
		}
		sheet.Info = t.Info
	}

	svc := &app.Service{Persistence: e.Persistence, Config: e.Config}
	path, err := svc.Export(ctx, sheet, e.OutDir)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
