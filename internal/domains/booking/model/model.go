package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldUserID        = "user_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldBookingStatus = "booking_status"
	FieldArrivalStatus = "arrival_status"
)

// BookingStatus is the commercial state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// bookingTransitions is the closed transition table for BookingStatus.
// Cancelled is terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]

	return ok
}

// CanTransition reports whether moving from s to target is allowed.
func (s BookingStatus) CanTransition(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// Active reports whether the status occupies the room's calendar.
// Cancelled bookings are kept for history but never conflict.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// ActiveStatuses returns the statuses that participate in conflict checks.
func ActiveStatuses() []string {
	return []string{string(BookingStatusPending), string(BookingStatusConfirmed)}
}

// ArrivalStatus tracks the guest's physical check-in and check-out,
// independent of the commercial booking status.
type ArrivalStatus string

const (
	ArrivalStatusNotArrived ArrivalStatus = "Not Arrived"
	ArrivalStatusArrived    ArrivalStatus = "Arrived"
	ArrivalStatusDeparted   ArrivalStatus = "Departed"
)

var arrivalTransitions = map[ArrivalStatus][]ArrivalStatus{
	ArrivalStatusNotArrived: {ArrivalStatusArrived},
	ArrivalStatusArrived:    {ArrivalStatusDeparted},
	ArrivalStatusDeparted:   {},
}

func (s ArrivalStatus) Valid() bool {
	_, ok := arrivalTransitions[s]

	return ok
}

func (s ArrivalStatus) CanTransition(target ArrivalStatus) bool {
	for _, allowed := range arrivalTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

type Booking struct {
	ID            string        `db:"id"`
	RoomID        string        `db:"room_id"`
	UserID        string        `db:"user_id"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	BookingStatus BookingStatus `db:"booking_status"`
	ArrivalStatus ArrivalStatus `db:"arrival_status"`
	model.Metadata
}

// Overlaps reports whether the booking's stay conflicts with the given
// half-open [checkIn, checkOut) range. A check-out and a check-in on the
// same day do not conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}
