package timetable

import (
	"testing"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func testGridConfig() GridConfig {
	return GridConfig{
		StartHour:       8,
		VisibleHours:    8,
		HourUnit:        1,
		MinDetailHeight: 0.75,
		WeekendDays:     []domain.Day{domain.DayFri, domain.DaySat},
	}
}

func TestBuildGridBackToBackBlocks(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "08:00", "09:00", "Math"),
		slot(2, 10, 100, domain.DaySun, "09:00", "10:00", "Math"),
	}

	grid := BuildGrid(slots, testGridConfig())

	if grid.Empty {
		t.Fatal("grid reported empty with two slots")
	}
	if len(grid.Days) != 7 {
		t.Fatalf("got %d day columns, want 7", len(grid.Days))
	}

	sun := grid.Days[0]
	if sun.Day != domain.DaySun {
		t.Fatalf("first column is %q, want sun", sun.Day)
	}
	if len(sun.Blocks) != 2 {
		t.Fatalf("sunday has %d blocks, want 2", len(sun.Blocks))
	}

	first, second := sun.Blocks[0], sun.Blocks[1]
	if first.Top != 0 || first.Height != 1 {
		t.Errorf("block 1 geometry = {top %v, height %v}, want {0, 1}", first.Top, first.Height)
	}
	if second.Top != 1 || second.Height != 1 {
		t.Errorf("block 2 geometry = {top %v, height %v}, want {1, 1}", second.Top, second.Height)
	}
	if first.Color != second.Color {
		t.Errorf("same class got two colors: %q vs %q", first.Color, second.Color)
	}
}

func TestBuildGridEmptyAfterFilter(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "08:00", "09:00", "Math"),
	}

	filtered := FilterSlots(slots, 0, 999)
	grid := BuildGrid(filtered, testGridConfig())

	if !grid.Empty {
		t.Error("grid not marked empty after a filter with no matches")
	}
	// the day-header scaffolding survives the empty state
	if len(grid.Days) != 7 {
		t.Errorf("got %d day columns, want 7", len(grid.Days))
	}
	for _, col := range grid.Days {
		if len(col.Blocks) != 0 {
			t.Errorf("column %q has %d blocks, want 0", col.Day, len(col.Blocks))
		}
	}
}

func TestBuildGridOverlapAccepted(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DayTue, "09:00", "11:00", "Math"),
		slot(2, 20, 200, domain.DayTue, "10:00", "12:00", "Science"),
	}

	grid := BuildGrid(slots, testGridConfig())

	tue := grid.Days[2]
	if len(tue.Blocks) != 2 {
		t.Fatalf("tuesday has %d blocks, want 2 (overlap is accepted, not resolved)", len(tue.Blocks))
	}
	for _, b := range tue.Blocks {
		if b.Height <= 0 {
			t.Errorf("slot %d got non-positive height %v", b.Slot.ID, b.Height)
		}
	}
}

func TestBuildGridWeekendSuppressed(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DayFri, "08:00", "09:00", "Math"),
		slot(2, 10, 100, domain.DaySat, "08:00", "09:00", "Math"),
		slot(3, 10, 100, domain.DaySun, "08:00", "09:00", "Math"),
	}

	grid := BuildGrid(slots, testGridConfig())

	for _, col := range grid.Days {
		switch col.Day {
		case domain.DayFri, domain.DaySat:
			if !col.Weekend {
				t.Errorf("column %q not marked weekend", col.Day)
			}
			if len(col.Blocks) != 0 {
				t.Errorf("weekend column %q has %d blocks, want 0", col.Day, len(col.Blocks))
			}
		case domain.DaySun:
			if len(col.Blocks) != 1 {
				t.Errorf("sunday has %d blocks, want 1", len(col.Blocks))
			}
		}
	}
}

func TestBuildGridSkipsMalformedSlot(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "not-a-time", "09:00", "Math"),
		slot(2, 10, 100, domain.DaySun, "09:00", "10:00", "Math"),
	}

	grid := BuildGrid(slots, testGridConfig())

	if grid.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", grid.Skipped)
	}
	if len(grid.Days[0].Blocks) != 1 {
		t.Errorf("sunday has %d blocks, want 1 (malformed slot skipped, render continues)", len(grid.Days[0].Blocks))
	}
}

func TestBuildGridDetailSuppression(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "08:00", "08:30", "Math"),  // half-hour block, below threshold
		slot(2, 10, 100, domain.DaySun, "09:00", "10:00", "Math"),
		slot(3, 10, 100, domain.DayMon, "11:00", "11:00", "Math"), // zero duration
	}

	grid := BuildGrid(slots, testGridConfig())

	sun := grid.Days[0].Blocks
	if sun[0].ShowDetail {
		t.Error("half-hour block shows detail row, want suppressed below threshold")
	}
	if !sun[1].ShowDetail {
		t.Error("full-hour block hides detail row, want shown")
	}

	mon := grid.Days[1].Blocks
	if len(mon) != 1 {
		t.Fatalf("monday has %d blocks, want 1", len(mon))
	}
	if mon[0].Height != 0 {
		t.Errorf("zero-duration block height = %v, want 0", mon[0].Height)
	}
}
