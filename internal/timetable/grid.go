package timetable

import (
	"log/slog"
	"slices"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

// GridConfig describes the visual scale of the weekly grid. HourUnit is the
// vertical size of one hour in the caller's unit (rem on the dashboard);
// blocks shorter than MinDetailHeight hide their secondary detail row.
type GridConfig struct {
	StartHour       int
	VisibleHours    int
	HourUnit        float64
	MinDetailHeight float64
	WeekendDays     []domain.Day
	Palette         []string
}

// Block is one positioned slot inside a day column.
type Block struct {
	Slot       *domain.TimetableSlot `json:"slot"`
	Top        float64               `json:"top"`
	Height     float64               `json:"height"`
	Color      string                `json:"color"`
	ShowDetail bool                  `json:"showDetail"`
}

// DayColumn is one vertical lane of the grid. Weekend columns render as
// non-interactive placeholders and carry no blocks even when slots exist for
// that key; the slots themselves are untouched, this is display policy only.
type DayColumn struct {
	Day     domain.Day `json:"day"`
	Label   string     `json:"label"`
	Weekend bool       `json:"weekend"`
	Blocks  []Block    `json:"blocks"`
}

// Grid is the renderable geometry of one week.
type Grid struct {
	Days    []DayColumn `json:"days"`
	Empty   bool        `json:"empty"`
	Dropped int         `json:"-"`
	Skipped int         `json:"-"`
}

// BuildGrid lays the (already filtered) slot collection out as absolute
// positioned blocks per day column. A slot with a malformed time is skipped
// with a diagnostic and the rest of the grid still renders. An empty
// collection sets Empty while the day columns are still emitted, so the grid
// chrome persists under the empty-state overlay.
func BuildGrid(slots []*domain.TimetableSlot, cfg GridConfig) *Grid {
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette
	}

	buckets, dropped := GroupByDay(slots, domain.Days)

	grid := &Grid{
		Days:    make([]DayColumn, 0, len(domain.Days)),
		Empty:   len(slots) == 0,
		Dropped: dropped,
	}

	for _, day := range domain.Days {
		col := DayColumn{
			Day:     day,
			Label:   day.LabelAr(),
			Weekend: slices.Contains(cfg.WeekendDays, day),
			Blocks:  []Block{},
		}

		if !col.Weekend {
			for _, slot := range buckets[day] {
				block, err := layoutSlot(slot, cfg)
				if err != nil {
					slog.Warn("skipping slot with malformed time", "slot_id", slot.ID, "error", err)
					grid.Skipped++
					continue
				}
				col.Blocks = append(col.Blocks, block)
			}
		}

		grid.Days = append(grid.Days, col)
	}

	return grid
}

func layoutSlot(slot *domain.TimetableSlot, cfg GridConfig) (Block, error) {
	start, err := TimeToOffset(slot.StartTime, cfg.StartHour)
	if err != nil {
		return Block{}, err
	}
	end, err := TimeToOffset(slot.EndTime, cfg.StartHour)
	if err != nil {
		return Block{}, err
	}

	height := (end - start) * cfg.HourUnit

	return Block{
		Slot:       slot,
		Top:        start * cfg.HourUnit,
		Height:     height,
		Color:      ColorFor(slot.ClassName, cfg.Palette),
		ShowDetail: height >= cfg.MinDetailHeight,
	}, nil
}
