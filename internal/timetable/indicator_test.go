package timetable

import (
	"context"
	"testing"
	"time"
)

func TestCurrentTimeOffset(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 3, 12, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		now    time.Time
		want   float64
		wantOK bool
	}{
		{name: "before grid", now: at(7, 59), wantOK: false},
		{name: "grid start", now: at(8, 0), want: 0, wantOK: true},
		{name: "mid grid", now: at(12, 30), want: 4.5, wantOK: true},
		{name: "last visible minute", now: at(15, 59), want: 7 + 59.0/60, wantOK: true},
		{name: "grid end", now: at(16, 0), wantOK: false},
		{name: "late evening", now: at(22, 0), wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentTimeOffset(tt.now, 8, 8)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
			if ok && (got < 0 || got >= 8) {
				t.Errorf("offset %v outside [0, visibleHours)", got)
			}
		})
	}
}

func TestWatchIndicatorStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	updates := make(chan float64, 16)
	done := make(chan struct{})

	now := func() time.Time {
		return time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC)
	}

	go func() {
		defer close(done)
		WatchIndicator(ctx, time.Millisecond, 8, 8, now, func(offset float64, ok bool) {
			if !ok {
				t.Error("indicator reported outside grid for an in-grid time")
				return
			}
			select {
			case updates <- offset:
			default:
			}
		})
	}()

	// the first computation is immediate
	select {
	case got := <-updates:
		if got != 2.5 {
			t.Errorf("initial offset = %v, want 2.5", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial indicator update")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchIndicator did not return after cancellation")
	}
}
