package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"staybook/internal/domain"
)

type BookingService struct {
	rooms    domain.HotelRepository
	bookings domain.BookingRepository
	validate *validator.Validate
}

func NewBookingService(rooms domain.HotelRepository, bookings domain.BookingRepository) *BookingService {
	return &BookingService{
		rooms:    rooms,
		bookings: bookings,
		validate: validator.New(),
	}
}

// SubmitInput is the raw booking form after parsing. Tag-driven rules
// cover the per-field checks; date order and capacity are cross-field
// and checked in Submit.
type SubmitInput struct {
	RoomTypeID      int64
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string `validate:"required"`
	GuestEmail      string `validate:"required,email"`
	GuestPhone      string `validate:"required"`
	Adults          int    `validate:"gte=1"`
	Children        int    `validate:"gte=0"`
	SpecialRequests string
}

var fieldMessages = map[string]string{
	"GuestName":  "Please enter your full name",
	"GuestEmail": "Please enter a valid email address",
	"GuestPhone": "Please enter your phone number",
	"Adults":     "At least one adult is required",
	"Children":   "Children count cannot be negative",
}

// Submit runs every validation rule, collecting all violations into a
// single ValidationError; nothing is written unless the list is empty.
// On success the generated booking id is returned.
func (s *BookingService) Submit(ctx context.Context, in SubmitInput) (int64, error) {
	room, err := s.rooms.GetRoomType(ctx, in.RoomTypeID)
	if err != nil {
		return 0, err
	}

	var violations []string
	if err := s.validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return 0, err
		}
		for _, fe := range verrs {
			if msg, ok := fieldMessages[fe.StructField()]; ok {
				violations = append(violations, msg)
			} else {
				violations = append(violations, "Invalid value for "+fe.StructField())
			}
		}
	}

	quote, quoteErr := QuoteStay(in.CheckIn, in.CheckOut, room.PricePerNight)
	if quoteErr != nil {
		violations = append(violations, msgDateOrder)
	}
	if in.Adults+in.Children > room.Capacity {
		violations = append(violations, "The number of guests exceeds the room capacity")
	}

	if len(violations) > 0 {
		return 0, &domain.ValidationError{Violations: violations}
	}

	id, err := s.bookings.CreateBooking(ctx, domain.NewBooking{
		RoomTypeID:      in.RoomTypeID,
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Adults:          in.Adults,
		Children:        in.Children,
		SpecialRequests: in.SpecialRequests,
		TotalPrice:      quote.Total,
	})
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}
	return id, nil
}

// Room loads the room type joined with its hotel for the booking form.
func (s *BookingService) Room(ctx context.Context, roomTypeID int64) (domain.RoomDetail, error) {
	return s.rooms.GetRoomType(ctx, roomTypeID)
}

// Confirmation reassembles a booking for display. Nights and the
// confirmation code are derived, not stored.
type Confirmation struct {
	domain.BookingDetail
	Code   string
	Nights int
}

func (s *BookingService) Confirmation(ctx context.Context, bookingID int64) (Confirmation, error) {
	bd, err := s.bookings.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return Confirmation{}, err
	}
	return Confirmation{
		BookingDetail: bd,
		Code:          ConfirmationCode(bd.ID),
		Nights:        Nights(bd.CheckIn, bd.CheckOut),
	}, nil
}
