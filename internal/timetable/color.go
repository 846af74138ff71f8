package timetable

// DefaultPalette is the block color cycle of the weekly grid.
var DefaultPalette = []string{
	"#2563eb", // blue
	"#7c3aed", // violet
	"#db2777", // pink
	"#ea580c", // orange
	"#16a34a", // green
	"#0d9488", // teal
	"#ca8a04", // amber
	"#dc2626", // red
}

// ColorFor maps a label (the class name) to a palette entry. The mapping is a
// pure function of the label and the palette ordering, so a class keeps its
// color across re-renders and reloads no matter which other labels have been
// seen. The empty label maps to the first entry.
func ColorFor(label string, palette []string) string {
	if len(palette) == 0 {
		return ""
	}

	var hash int32
	for _, r := range label {
		hash = hash*31 + int32(r)
	}

	// widen before negating: -MinInt32 does not fit in int32
	idx := int(hash)
	if idx < 0 {
		idx = -idx
	}

	return palette[idx%len(palette)]
}
