package dto

import (
	"time"

	"shareit/internal/domains/booking/model"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/timezone"
)

type CreateBookingRequest struct {
	ItemID int64  `json:"itemId" validate:"required,gt=0"`
	Start  string `json:"start"  validate:"required"`
	End    string `json:"end"    validate:"required"`
}

// Window parses the requested start and end into application-local times.
func (c *CreateBookingRequest) Window() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateFormat, c.Start)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid start date") //nolint:wrapcheck
	}

	end, err = timezone.Parse(constant.DateFormat, c.End)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid end date") //nolint:wrapcheck
	}

	return start, end, nil
}

func (c *CreateBookingRequest) ToModel(bookerID int64, start, end time.Time) model.Booking {
	return model.Booking{
		StartDate: start,
		EndDate:   end,
		ItemID:    c.ItemID,
		BookerID:  bookerID,
		Status:    model.StatusWaiting,
	}
}

type BookerResponse struct {
	ID int64 `json:"id"`
}

type BookedItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64              `json:"id"`
	Start  string             `json:"start"`
	End    string             `json:"end"`
	Status string             `json:"status"`
	Booker BookerResponse     `json:"booker"`
	Item   BookedItemResponse `json:"item"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Start = booking.StartDate.Format(constant.DateFormat)
	r.End = booking.EndDate.Format(constant.DateFormat)
	r.Status = booking.Status
	r.Booker = BookerResponse{ID: booking.BookerID}
	r.Item = BookedItemResponse{ID: booking.ItemID, Name: booking.ItemName}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

// ItemBookingResponse is the short projection embedded in an item view.
type ItemBookingResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

func (r *ItemBookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookerID = booking.BookerID
}

// BookingEvent is the payload published on the booking lifecycle topic.
type BookingEvent struct {
	Event     string `json:"event"`
	BookingID int64  `json:"bookingId"`
	ItemID    int64  `json:"itemId"`
	BookerID  int64  `json:"bookerId"`
	OwnerID   int64  `json:"ownerId"`
	Status    string `json:"status"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:     event,
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		OwnerID:   booking.OwnerID,
		Status:    booking.Status,
		Start:     booking.StartDate.Format(constant.DateFormat),
		End:       booking.EndDate.Format(constant.DateFormat),
	}
}
