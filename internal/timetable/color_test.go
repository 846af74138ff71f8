package timetable

import (
	"testing"
)

func TestColorForDeterministic(t *testing.T) {
	labels := []string{"Math", "الرياضيات", "العلوم", "English", "", "اللغة العربية"}

	first := make(map[string]string)
	for _, label := range labels {
		first[label] = ColorFor(label, DefaultPalette)
	}

	// interleave other labels and call again in reverse order; the assignment
	// must not depend on call order or on what else has been seen
	ColorFor("التاريخ", DefaultPalette)
	ColorFor("Physics", DefaultPalette)
	for i := len(labels) - 1; i >= 0; i-- {
		label := labels[i]
		if got := ColorFor(label, DefaultPalette); got != first[label] {
			t.Errorf("ColorFor(%q) = %q on second call, want %q", label, got, first[label])
		}
	}
}

func TestColorForInRange(t *testing.T) {
	labels := []string{"", "a", "Math", "الرياضيات", "صف طويل الاسم جداً للتجربة", "zz top"}
	for size := 1; size <= len(DefaultPalette); size++ {
		palette := DefaultPalette[:size]
		for _, label := range labels {
			got := ColorFor(label, palette)
			found := false
			for _, c := range palette {
				if c == got {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("ColorFor(%q, palette[:%d]) = %q, not a palette entry", label, size, got)
			}
		}
	}
}

func TestColorForEmptyLabel(t *testing.T) {
	if got := ColorFor("", DefaultPalette); got != DefaultPalette[0] {
		t.Errorf("ColorFor(\"\") = %q, want first palette entry %q", got, DefaultPalette[0])
	}
}

func TestColorForEmptyPalette(t *testing.T) {
	if got := ColorFor("Math", nil); got != "" {
		t.Errorf("ColorFor with empty palette = %q, want empty string", got)
	}
}
