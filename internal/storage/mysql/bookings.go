package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"staybook/internal/domain"
)

// CreateBooking is the only write on the request path. It runs inside a
// transaction so a partial row is never observable; any failure rolls
// back in full.
func (r *Repo) CreateBooking(ctx context.Context, b domain.NewBooking) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertBookingSQL,
		b.RoomTypeID,
		b.GuestName,
		b.GuestEmail,
		b.GuestPhone,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.SpecialRequests,
		b.TotalPrice,
		string(domain.PaymentPending),
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("booking id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit booking: %w", err)
	}
	return id, nil
}

func (r *Repo) GetBookingDetail(ctx context.Context, id int64) (domain.BookingDetail, error) {
	var bd domain.BookingDetail
	var special sql.NullString
	var status string
	err := r.db.QueryRowContext(ctx, getBookingDetailSQL, id).Scan(
		&bd.ID, &bd.RoomTypeID, &bd.GuestName, &bd.GuestEmail, &bd.GuestPhone,
		&bd.CheckIn, &bd.CheckOut, &bd.Adults, &bd.Children, &special,
		&bd.TotalPrice, &status, &bd.CreatedAt,
		&bd.RoomName, &bd.RoomImage, &bd.PricePerNight,
		&bd.HotelName, &bd.HotelLocation, &bd.HotelAddress, &bd.HotelImage,
	)
	if err == sql.ErrNoRows {
		return domain.BookingDetail{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.BookingDetail{}, err
	}
	if special.Valid {
		bd.SpecialRequests = special.String
	}
	bd.PaymentStatus = domain.PaymentStatus(status)
	return bd, nil
}
