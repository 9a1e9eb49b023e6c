package http

import (
	"time"

	"booking-dashboard/internal/scheduling"
)

// --- Request DTOs ---

// intervalReq is the tagged interval shape shared by create and update
// bodies. Callers supply exactly one variant: an explicit RFC3339 pair, or a
// local date + start time + duration resolved in the business timezone.
type intervalReq struct {
	Start string `json:"start"            binding:"omitempty"`
	End   string `json:"end"              binding:"omitempty"`

	Date            string `json:"date"             binding:"omitempty"`
	Time            string `json:"time"             binding:"omitempty"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`
}

func (r intervalReq) explicit() bool {
	return r.Start != "" || r.End != ""
}

func (r intervalReq) dated() bool {
	return r.Date != "" || r.Time != "" || r.DurationMinutes != 0
}

type createReq struct {
	intervalReq
	Title string `json:"title" binding:"required,min=1,max=255"`
	Notes string `json:"notes" binding:"max=2000"`
}

func (r createReq) toInput(start, end time.Time) scheduling.CreateBookingInput {
	return scheduling.CreateBookingInput{
		Title: r.Title,
		Notes: r.Notes,
		Start: start,
		End:   end,
	}
}

type updateReq struct {
	intervalReq
	ID    string  `json:"-"` // populated from URI param
	Title *string `json:"title" binding:"omitempty,min=1,max=255"`
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

func (r updateReq) toInput(start, end *time.Time) scheduling.UpdateBookingInput {
	return scheduling.UpdateBookingInput{
		ID:    r.ID,
		Title: r.Title,
		Notes: r.Notes,
		Start: start,
		End:   end,
	}
}

type listWeekReq struct {
	WeekOffset int `form:"week_offset"`
}

func (r listWeekReq) toInput() scheduling.ListWeekInput {
	return scheduling.ListWeekInput{WeekOffset: r.WeekOffset}
}

type availabilityReq struct {
	Date string `form:"date" binding:"required"`
}

// --- Response DTOs ---

type eventResp struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Notes  string    `json:"notes,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"all_day,omitempty"`
	Status string    `json:"status"`
	Link   string    `json:"link,omitempty"`
}

func newEventResp(e scheduling.Event) eventResp {
	return eventResp{
		ID:     e.ID,
		Title:  e.Title,
		Notes:  e.Notes,
		Start:  e.Start,
		End:    e.End,
		AllDay: e.AllDay,
		Status: string(e.Status),
		Link:   e.Link,
	}
}

type bookingResp struct {
	Booking eventResp `json:"booking"`
}

func (h *handler) newCreateResp(out scheduling.CreateBookingOutput) bookingResp {
	return bookingResp{Booking: newEventResp(out.Event)}
}

func (h *handler) newUpdateResp(out scheduling.UpdateBookingOutput) bookingResp {
	return bookingResp{Booking: newEventResp(out.Event)}
}

func (h *handler) newDetailResp(out scheduling.DetailBookingOutput) bookingResp {
	return bookingResp{Booking: newEventResp(out.Event)}
}

type listWeekResp struct {
	WeekStart time.Time   `json:"week_start"`
	WeekEnd   time.Time   `json:"week_end"`
	Bookings  []eventResp `json:"bookings"`
}

func (h *handler) newListWeekResp(out scheduling.ListWeekOutput) listWeekResp {
	bookings := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		bookings[i] = newEventResp(e)
	}
	return listWeekResp{
		WeekStart: out.Window.Start,
		WeekEnd:   out.Window.End,
		Bookings:  bookings,
	}
}

type slotResp struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booked bool      `json:"booked"`
}

type availabilityResp struct {
	Date  string     `json:"date"`
	Slots []slotResp `json:"slots"`
}

func (h *handler) newAvailabilityResp(out scheduling.DayAvailabilityOutput) availabilityResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{Start: s.Start, End: s.End, Booked: s.Booked}
	}
	return availabilityResp{
		Date:  out.Day.Start.Format(dateLayout),
		Slots: slots,
	}
}

type hourCountResp struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type overviewResp struct {
	WindowStart      time.Time       `json:"window_start"`
	WindowEnd        time.Time       `json:"window_end"`
	AppointmentCount int             `json:"appointment_count"`
	BookedMinutes    int             `json:"booked_minutes"`
	CapacityMinutes  int             `json:"capacity_minutes"`
	Utilization      float64         `json:"utilization"`
	TopHours         []hourCountResp `json:"top_hours"`
}

func (h *handler) newOverviewResp(out scheduling.OverviewOutput) overviewResp {
	m := out.Metrics
	top := make([]hourCountResp, len(m.TopHours))
	for i, hc := range m.TopHours {
		top[i] = hourCountResp{Hour: hc.Hour, Count: hc.Count}
	}
	return overviewResp{
		WindowStart:      m.WindowStart,
		WindowEnd:        m.WindowEnd,
		AppointmentCount: m.AppointmentCount,
		BookedMinutes:    m.BookedMinutes,
		CapacityMinutes:  m.CapacityMinutes,
		Utilization:      m.Utilization,
		TopHours:         top,
	}
}
