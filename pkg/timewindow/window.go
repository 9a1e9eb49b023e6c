package timewindow

import "time"

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the elapsed time between the window boundaries.
// For wall-clock windows this may differ from a whole number of days
// on daylight-saving transition days.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
