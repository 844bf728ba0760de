package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// NewBooking is the validated input to a booking insert. TotalPrice is
// always computed server-side from the room's nightly price.
type NewBooking struct {
	RoomTypeID      int64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	TotalPrice      float64
}

type Booking struct {
	ID              int64
	RoomTypeID      int64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	TotalPrice      float64
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
}

// BookingDetail joins a booking with its room type and hotel for the
// confirmation page.
type BookingDetail struct {
	Booking
	RoomName      string
	RoomImage     string
	PricePerNight float64
	HotelName     string
	HotelLocation string
	HotelAddress  string
	HotelImage    string
}
