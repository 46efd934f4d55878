package timesheet

import (
	"testing"
	"time"
)

func TestDayMinutesSumsSlots(t *testing.T) {
	s := NewSheet(2026, time.March)
	s = s.SetSlotField(3, 0, false, "08:00")
	s = s.SetSlotField(3, 0, true, "12:00")
	s = s.SetSlotField(3, 1, false, "13:00")
	s = s.SetSlotField(3, 1, true, "17:30")
	s = s.SetSlotField(3, 2, false, "22:00")
	s = s.SetSlotField(3, 2, true, "23:00")

	if got := s.DayMinutes(3); got != 240+270+60 {
		t.Fatalf("expected 570 minutes, got %d", got)
	}
}

func TestTotalMinutesSumsDays(t *testing.T) {
	s := NewSheet(2026, time.March)
	for day := 1; day <= DaysPerSheet; day++ {
		s = s.SetSlotField(day, 0, false, "09:00")
		s = s.SetSlotField(day, 0, true, "10:30")
	}

	want := 0
	for day := 1; day <= DaysPerSheet; day++ {
		want += s.DayMinutes(day)
	}
	if got := s.TotalMinutes(); got != want {
		t.Fatalf("TotalMinutes %d does not match per-day sum %d", got, want)
	}
	if got := s.TotalMinutes(); got != 31*90 {
		t.Fatalf("expected %d minutes, got %d", 31*90, got)
	}
}

func TestTotalHoursIsFloor(t *testing.T) {
	s := NewSheet(2026, time.March)
	s = s.SetSlotField(1, 0, false, "09:00")
	s = s.SetSlotField(1, 0, true, "10:30") // 90 minutes

	if got := s.TotalHours(); got != 1 {
		t.Fatalf("expected floor hour 1, got %d", got)
	}
	if got := s.RemainderMinutes(); got != 30 {
		t.Fatalf("expected remainder 30, got %d", got)
	}
}

func TestSetSlotFieldDoesNotMutateSiblings(t *testing.T) {
	orig := NewSheet(2026, time.March)
	orig = orig.SetSlotField(1, 0, false, "08:00")

	updated := orig.SetSlotField(2, 1, true, "17:00")

	if orig.Day(2).Slots[1].Bis != "" {
		t.Fatalf("original sheet mutated by SetSlotField")
	}
	if updated.Day(1).Slots[0].Von != "08:00" {
		t.Fatalf("sibling day lost on update")
	}
	if updated.Day(2).Slots[1].Bis != "17:00" {
		t.Fatalf("update not applied")
	}
}

func TestSetSlotFieldOutOfRangeIsNoop(t *testing.T) {
	s := NewSheet(2026, time.March)
	for _, c := range []struct{ day, slot int }{{0, 0}, {32, 0}, {1, -1}, {1, 3}} {
		if got := s.SetSlotField(c.day, c.slot, false, "09:00"); !got.Empty() {
			t.Fatalf("SetSlotField(%d, %d) should be a no-op", c.day, c.slot)
		}
	}
}

func TestMalformedValuesPreservedButZero(t *testing.T) {
	s := NewSheet(2026, time.March)
	s = s.SetSlotField(5, 0, false, "9am")
	s = s.SetSlotField(5, 0, true, "17:00")

	if got := s.Day(5).Slots[0].Von; got != "9am" {
		t.Fatalf("malformed value not preserved, got %q", got)
	}
	if got := s.DayMinutes(5); got != 0 {
		t.Fatalf("malformed slot should contribute 0 minutes, got %d", got)
	}
}

func TestSetRemark(t *testing.T) {
	s := NewSheet(2026, time.March).SetRemark(7, "Feiertag")
	if got := s.Day(7).Remark; got != "Feiertag" {
		t.Fatalf("expected remark, got %q", got)
	}
	if got := s.SetRemark(0, "x"); !got.Empty() {
		t.Fatalf("out-of-range SetRemark should be a no-op")
	}
}
