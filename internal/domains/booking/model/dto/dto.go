package dto

import (
	"time"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
}

// Dates parses the requested stay into its half-open [check_in, check_out)
// boundaries.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		UserID:        user,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		BookingStatus: model.BookingStatusPending,
		ArrivalStatus: model.ArrivalStatusNotArrived,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

type UpdateArrivalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Not Arrived' Arrived Departed"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	UserID        string `json:"user_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	BookingStatus string `json:"booking_status"`
	ArrivalStatus string `json:"arrival_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.BookingStatus = string(model.BookingStatus)
	r.ArrivalStatus = string(model.ArrivalStatus)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Event     string `json:"event"`
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	At        string `json:"at"`
}

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:     event,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		UserID:    booking.UserID,
		Status:    string(booking.BookingStatus),
		At:        timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
