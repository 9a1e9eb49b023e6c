package scheduling

import (
	"math"
	"sort"

	"booking-dashboard/pkg/timewindow"
)

// topHoursLimit caps the busiest-hours histogram.
const topHoursLimit = 6

// Overview computes utilization metrics over the given window. Events are
// counted by their normalized start (all-day events snap to local midnight);
// capacity sums the working window of every configured working day inside
// win. Utilization is 0 when there is no capacity, by definition rather than
// as an error.
func Overview(win timewindow.Window, events []Event, capacity CapacityHours, calc *timewindow.Calculator) OverviewMetrics {
	metrics := OverviewMetrics{
		WindowStart: win.Start,
		WindowEnd:   win.End,
	}

	hourCounts := make(map[int]int)
	for _, e := range events {
		if e.Cancelled() {
			continue
		}

		start, end := e.Start, e.End
		if e.AllDay {
			start, end = calc.AllDayBounds(e.Start)
		}
		if !win.Contains(start) {
			continue
		}

		metrics.AppointmentCount++

		minutes := int(math.Round(end.Sub(start).Minutes()))
		if minutes > 0 {
			metrics.BookedMinutes += minutes
		}

		hourCounts[start.In(calc.Location()).Hour()]++
	}

	for day := win.Start; day.Before(win.End); day = day.AddDate(0, 0, 1) {
		if capacity.IsWorkingDay(day.Weekday()) {
			metrics.CapacityMinutes += capacity.MinutesPerDay()
		}
	}

	if metrics.CapacityMinutes > 0 {
		metrics.Utilization = float64(metrics.BookedMinutes) / float64(metrics.CapacityMinutes)
	}

	metrics.TopHours = topHours(hourCounts)
	return metrics
}

// topHours ranks hours by descending count. Equal counts order by ascending
// hour so output is deterministic.
func topHours(counts map[int]int) []HourCount {
	ranked := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		ranked = append(ranked, HourCount{Hour: hour, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Hour < ranked[j].Hour
	})

	if len(ranked) > topHoursLimit {
		ranked = ranked[:topHoursLimit]
	}
	return ranked
}
