package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/rapport/pkg/app"
	"tableflip.dev/rapport/pkg/clipboard"
	"tableflip.dev/rapport/pkg/store"
	"tableflip.dev/rapport/pkg/timesheet"
	"tableflip.dev/rapport/pkg/tui"
)

// UI opens the interactive grid editor for one month.
type UI struct {
	Persistence store.Persistence
	Config      store.Config

	Year     int
	Month    time.Month
	Template string
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	year, month := u.Year, u.Month
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
	if u.Template != "" {
		t, err := u.Persistence.Get(ctx, u.Template)
		if err != nil {
			return err
		}
		sheet.Info = t.Info
	}

	svc := &app.Service{Persistence: u.Persistence, Config: u.Config}
	return tui.Run(svc, sheet, clipboard.System{})
}
