package utils

import (
	"testing"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func TestValidateSlotTime(t *testing.T) {
	tests := []struct {
		name    string
		slot    domain.TimetableSlot
		wantErr bool
	}{
		{"valid slot", domain.TimetableSlot{Day: domain.DayMon, StartTime: "08:00", EndTime: "09:30"}, false},
		{"valid with seconds", domain.TimetableSlot{Day: domain.DaySun, StartTime: "10:00:00", EndTime: "11:00:00"}, false},
		{"unknown day", domain.TimetableSlot{Day: "monday", StartTime: "08:00", EndTime: "09:00"}, true},
		{"malformed start", domain.TimetableSlot{Day: domain.DayMon, StartTime: "8am", EndTime: "09:00"}, true},
		{"malformed end", domain.TimetableSlot{Day: domain.DayMon, StartTime: "08:00", EndTime: "25:00"}, true},
		{"end equals start", domain.TimetableSlot{Day: domain.DayMon, StartTime: "08:00", EndTime: "08:00"}, true},
		{"end before start", domain.TimetableSlot{Day: domain.DayMon, StartTime: "09:00", EndTime: "08:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotTime(&tt.slot)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlotTime() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
