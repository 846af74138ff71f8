package timetable

import (
	"testing"
)

func TestTimeToOffset(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		startHour int
		want      float64
		wantErr   bool
	}{
		{name: "grid start", value: "08:00", startHour: 8, want: 0},
		{name: "ninety minutes in", value: "09:30", startHour: 8, want: 1.5},
		{name: "before grid start", value: "07:00", startHour: 8, want: -1},
		{name: "seconds ignored", value: "10:15:59", startHour: 8, want: 2.25},
		{name: "midnight", value: "00:00", startHour: 0, want: 0},
		{name: "end of day", value: "23:59", startHour: 0, want: 23 + 59.0/60},
		{name: "no colon", value: "0800", wantErr: true},
		{name: "too many components", value: "08:00:00:00", wantErr: true},
		{name: "non numeric hour", value: "ab:00", wantErr: true},
		{name: "non numeric minute", value: "08:xx", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "08:60", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeToOffset(tt.value, tt.startHour)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TimeToOffset(%q, %d) error = %v, wantErr %v", tt.value, tt.startHour, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("TimeToOffset(%q, %d) = %v, want %v", tt.value, tt.startHour, got, tt.want)
			}
		})
	}
}

func TestTimeToOffsetMonotonic(t *testing.T) {
	// lexicographic order of HH:MM strings matches wall-clock order, so the
	// offsets must be strictly increasing as well
	times := []string{"00:00", "00:01", "06:59", "07:00", "08:00", "09:30", "12:00", "18:45", "23:59"}

	prev := 0.0
	for i, value := range times {
		got, err := TimeToOffset(value, 8)
		if err != nil {
			t.Fatalf("TimeToOffset(%q) error = %v", value, err)
		}
		if i > 0 && got <= prev {
			t.Errorf("TimeToOffset(%q) = %v, want > %v", value, got, prev)
		}
		prev = got
	}
}
