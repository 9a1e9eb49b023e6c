package usecase

import (
	"context"

	"booking-dashboard/internal/scheduling"
	repo "booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/pkg/timewindow"
)

// overviewDays is the rolling forward window the dashboard summarizes.
const overviewDays = 7

// Overview computes utilization metrics over a 7-day forward window starting
// at the reference instant's local day start.
func (uc *implUseCase) Overview(ctx context.Context, input scheduling.OverviewInput) (scheduling.OverviewOutput, error) {
	start := uc.calc.StartOfDay(refOrNow(input.Reference))
	win := timewindow.Window{Start: start, End: start.AddDate(0, 0, overviewDays)}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Window: win})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListEvents: %v", err)
		return scheduling.OverviewOutput{}, err
	}

	return scheduling.OverviewOutput{
		Metrics: scheduling.Overview(win, events, uc.capacity, uc.calc),
	}, nil
}
