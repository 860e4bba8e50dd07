package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model"
)

func TestBookingStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.BookingStatus
		to      model.BookingStatus
		allowed bool
	}{
		{"pending to confirmed", model.BookingStatusPending, model.BookingStatusConfirmed, true},
		{"pending to cancelled", model.BookingStatusPending, model.BookingStatusCancelled, true},
		{"confirmed to cancelled", model.BookingStatusConfirmed, model.BookingStatusCancelled, true},
		{"confirmed to pending", model.BookingStatusConfirmed, model.BookingStatusPending, false},
		{"cancelled to confirmed", model.BookingStatusCancelled, model.BookingStatusConfirmed, false},
		{"cancelled to pending", model.BookingStatusCancelled, model.BookingStatusPending, false},
		{"pending to pending", model.BookingStatusPending, model.BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, model.BookingStatusPending.Active())
	assert.True(t, model.BookingStatusConfirmed.Active())
	assert.False(t, model.BookingStatusCancelled.Active())
}

func TestArrivalStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.ArrivalStatus
		to      model.ArrivalStatus
		allowed bool
	}{
		{"not arrived to arrived", model.ArrivalStatusNotArrived, model.ArrivalStatusArrived, true},
		{"arrived to departed", model.ArrivalStatusArrived, model.ArrivalStatusDeparted, true},
		{"not arrived to departed", model.ArrivalStatusNotArrived, model.ArrivalStatusDeparted, false},
		{"departed to arrived", model.ArrivalStatusDeparted, model.ArrivalStatusArrived, false},
		{"arrived to not arrived", model.ArrivalStatusArrived, model.ArrivalStatusNotArrived, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	booking := model.Booking{
		CheckIn:  day(10),
		CheckOut: day(15),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		overlaps bool
	}{
		{"identical range", day(10), day(15), true},
		{"contained range", day(11), day(14), true},
		{"covering range", day(9), day(16), true},
		{"partial overlap at start", day(8), day(11), true},
		{"partial overlap at end", day(14), day(20), true},
		{"back to back after", day(15), day(18), false},
		{"back to back before", day(5), day(10), false},
		{"fully before", day(1), day(5), false},
		{"fully after", day(20), day(25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booking.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}
