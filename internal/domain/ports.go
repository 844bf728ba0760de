package domain

import "context"

type HotelRepository interface {
	// Search/listing paths
	SearchHotels(ctx context.Context, q SearchQuery) ([]HotelSummary, error)
	FeaturedHotels(ctx context.Context, limit int) ([]Hotel, error)
	TopRatedHotels(ctx context.Context, limit int) ([]RatedHotel, error)
	Locations(ctx context.Context) ([]string, error)
	AllAmenities(ctx context.Context) ([]Amenity, error)
	PriceRange(ctx context.Context) (PriceRange, error)

	// Detail paths
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	HotelAmenities(ctx context.Context, hotelID int64) ([]Amenity, error)
	ListRoomTypes(ctx context.Context, hotelID int64) ([]RoomType, error)
	GetRoomType(ctx context.Context, id int64) (RoomDetail, error)
	ListReviews(ctx context.Context, hotelID int64, limit int) ([]Review, error)
	ReviewStats(ctx context.Context, hotelID int64) (ReviewStats, error)

	// Seed paths
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertRoomType(ctx context.Context, rt RoomType) error
	UpsertAmenity(ctx context.Context, a Amenity) error
	LinkHotelAmenity(ctx context.Context, hotelID, amenityID int64) error
	LinkRoomAmenity(ctx context.Context, roomTypeID, amenityID int64) error
	ReplaceReviews(ctx context.Context, hotelID int64, rs []Review) error
}

type BookingRepository interface {
	// CreateBooking persists a booking inside a single transaction and
	// returns the generated identifier.
	CreateBooking(ctx context.Context, b NewBooking) (int64, error)
	GetBookingDetail(ctx context.Context, id int64) (BookingDetail, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries

type SortOrder string

const (
	SortPriceLow  SortOrder = "price_low"
	SortPriceHigh SortOrder = "price_high"
	SortRating    SortOrder = "rating"
)

// SearchQuery carries normalized hotel filters. Amenities is match-all:
// a hotel qualifies only when linked to every listed amenity.
type SearchQuery struct {
	Location  string
	MinPrice  int
	MaxPrice  int
	MinRating float64
	Amenities []int64
	SortBy    SortOrder
}

// HotelSummary is a search hit: the hotel plus the price band across
// its room types.
type HotelSummary struct {
	Hotel
	MinPrice float64
	MaxPrice float64
}

// RatedHotel annotates a hotel with its review aggregate.
type RatedHotel struct {
	Hotel
	ReviewCount int
	AvgRating   float64
}

// RoomDetail is a room type joined with its hotel, as needed by the
// booking form and quote.
type RoomDetail struct {
	RoomType
	HotelName     string
	HotelLocation string
	HotelAddress  string
}

type PriceRange struct {
	Min float64
	Max float64
}
