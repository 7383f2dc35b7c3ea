package domain

import "time"

type BookingEventType string

const (
	BookingEventCreated       BookingEventType = "booking.created"
	BookingEventStatusChanged BookingEventType = "booking.status_changed"
)

type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  int64            `json:"booking_id"`
	PropertyID int64            `json:"property_id"`
	TravelerID int64            `json:"traveler_id"`
	CheckIn    string           `json:"check_in"`
	CheckOut   string           `json:"check_out"`
	Status     BookingStatus    `json:"status"`
	Previous   BookingStatus    `json:"previous_status,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking, previous BookingStatus) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		TravelerID: b.TravelerID,
		CheckIn:    b.CheckIn.Format(DateLayout),
		CheckOut:   b.CheckOut.Format(DateLayout),
		Status:     b.Status,
		Previous:   previous,
		OccurredAt: time.Now().UTC(),
	}
}
