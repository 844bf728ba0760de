package domain

import "time"

type Review struct {
	ID        int64
	HotelID   int64
	GuestName string
	Rating    float64
	Comment   string
	Date      time.Time
}

// ReviewStats is the aggregate shown next to a hotel's review list.
type ReviewStats struct {
	Count   int
	Average float64
}
