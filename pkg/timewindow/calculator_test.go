package timewindow_test

import (
	"testing"
	"time"

	"booking-dashboard/pkg/timewindow"
)

func TestNewCalculator(t *testing.T) {
	_, err := timewindow.NewCalculator("Europe/London", time.Monday)
	if err != nil {
		t.Fatalf("unexpected error creating valid calculator: %v", err)
	}

	_, err = timewindow.NewCalculator("Invalid/Timezone", time.Monday)
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDayWindow(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)
	ref := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC) // Monday afternoon

	win := calc.DayWindow(ref)

	wantStart := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.AddDate(0, 0, 1)
	if !win.Start.Equal(wantStart) {
		t.Errorf("DayWindow start = %v, want %v", win.Start, wantStart)
	}
	if !win.End.Equal(wantEnd) {
		t.Errorf("DayWindow end = %v, want %v", win.End, wantEnd)
	}
	if !win.Contains(ref) {
		t.Errorf("day window should contain its reference instant")
	}
	if win.Contains(wantEnd) {
		t.Errorf("window end is exclusive, should not be contained")
	}
}

func TestWeekWindow(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)

	tests := []struct {
		name      string
		ref       time.Time
		offset    int
		wantStart time.Time
	}{
		{
			name:      "Monday reference starts same day",
			ref:       time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), // Monday
			offset:    0,
			wantStart: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Wednesday reference snaps back to Monday",
			ref:       time.Date(2024, 6, 12, 23, 59, 0, 0, time.UTC),
			offset:    0,
			wantStart: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Sunday reference snaps back six days",
			ref:       time.Date(2024, 6, 16, 1, 0, 0, 0, time.UTC),
			offset:    0,
			wantStart: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Positive offset moves forward whole weeks",
			ref:       time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC),
			offset:    2,
			wantStart: time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Negative offset moves backward",
			ref:       time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC),
			offset:    -1,
			wantStart: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := calc.WeekWindow(tt.ref, tt.offset)
			if !win.Start.Equal(tt.wantStart) {
				t.Errorf("WeekWindow start = %v, want %v", win.Start, tt.wantStart)
			}
			if !win.End.Equal(tt.wantStart.AddDate(0, 0, 7)) {
				t.Errorf("WeekWindow end = %v, want 7 days after start", win.End)
			}
		})
	}
}

func TestWeekWindowContainsReference(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)
	now := time.Date(2024, 6, 13, 18, 45, 0, 0, time.UTC)

	if !calc.WeekWindow(now, 0).Contains(now) {
		t.Errorf("current week window must contain the reference instant")
	}
}

func TestWeekWindowsContiguous(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)
	now := time.Date(2024, 6, 13, 18, 45, 0, 0, time.UTC)

	for offset := -2; offset < 3; offset++ {
		cur := calc.WeekWindow(now, offset)
		next := calc.WeekWindow(now, offset+1)
		if !cur.End.Equal(next.Start) {
			t.Errorf("windows at offset %d and %d not contiguous: %v vs %v",
				offset, offset+1, cur.End, next.Start)
		}
	}
}

func TestWeekWindowDSTTransition(t *testing.T) {
	calc, err := timewindow.NewCalculator("Europe/London", time.Monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// BST starts 2024-03-31; the week containing it loses one hour.
	ref := time.Date(2024, 3, 27, 12, 0, 0, 0, calc.Location())
	win := calc.WeekWindow(ref, 0)

	if win.Start.Hour() != 0 || win.End.Hour() != 0 {
		t.Errorf("window boundaries must be local midnight, got %v / %v", win.Start, win.End)
	}
	if win.Duration() != 7*24*time.Hour-time.Hour {
		t.Errorf("spring-forward week should be 167h, got %v", win.Duration())
	}
}

func TestSameDay(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)

	a := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)
	cNext := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	if !calc.SameDay(a, b) {
		t.Errorf("expected same day for %v and %v", a, b)
	}
	if calc.SameDay(a, cNext) {
		t.Errorf("midnight belongs to the next day")
	}
}

func TestAllDayBounds(t *testing.T) {
	calc, _ := timewindow.NewCalculator("UTC", time.Monday)
	ref := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	start, end := calc.AllDayBounds(ref)

	if !start.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected all-day start: %v", start)
	}
	if !end.Equal(time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("unexpected all-day end: %v", end)
	}
}

func TestAllDayBoundsDST(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	calc, _ := timewindow.NewCalculator("Europe/London", time.Monday)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{
			// 23-hour day: the wall-clock end must still be 23:59:59 of the
			// same date, not an hour into the next day.
			name: "Spring forward",
			ref:  time.Date(2024, 3, 31, 12, 0, 0, 0, london),
		},
		{
			// 25-hour day: the end must not stop at 22:59:59.
			name: "Fall back",
			ref:  time.Date(2024, 10, 27, 12, 0, 0, 0, london),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := calc.AllDayBounds(tt.ref)

			y, m, d := tt.ref.Date()
			if !start.Equal(time.Date(y, m, d, 0, 0, 0, 0, london)) {
				t.Errorf("all-day start = %v, want local midnight of %v", start, tt.ref)
			}
			wantEnd := time.Date(y, m, d, 23, 59, 59, 0, london)
			if !end.Equal(wantEnd) {
				t.Errorf("all-day end = %v, want %v", end, wantEnd)
			}
		})
	}
}
