package app_test

import (
	"context"

	"staybook/internal/app"
	"staybook/internal/domain"
)

// ---- fakes ----

type fakeHotelRepo struct {
	hits      []domain.HotelSummary
	featured  []domain.Hotel
	topRated  []domain.RatedHotel
	locations []string
	amenities []domain.Amenity
	prices    domain.PriceRange
	hotel     domain.Hotel
	rooms     []domain.RoomType
	room      domain.RoomDetail
	roomErr   error
	reviews   []domain.Review
	stats     domain.ReviewStats

	searchCalls int
	lastQuery   domain.SearchQuery
}

func (f *fakeHotelRepo) SearchHotels(ctx context.Context, q domain.SearchQuery) ([]domain.HotelSummary, error) {
	f.searchCalls++
	f.lastQuery = q
	return f.hits, nil
}
func (f *fakeHotelRepo) FeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return f.featured, nil
}
func (f *fakeHotelRepo) TopRatedHotels(ctx context.Context, limit int) ([]domain.RatedHotel, error) {
	return f.topRated, nil
}
func (f *fakeHotelRepo) Locations(ctx context.Context) ([]string, error) { return f.locations, nil }
func (f *fakeHotelRepo) AllAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return f.amenities, nil
}
func (f *fakeHotelRepo) PriceRange(ctx context.Context) (domain.PriceRange, error) {
	return f.prices, nil
}
func (f *fakeHotelRepo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	if f.hotel.ID == 0 {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return f.hotel, nil
}
func (f *fakeHotelRepo) HotelAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error) {
	return f.amenities, nil
}
func (f *fakeHotelRepo) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	return f.rooms, nil
}
func (f *fakeHotelRepo) GetRoomType(ctx context.Context, id int64) (domain.RoomDetail, error) {
	if f.roomErr != nil {
		return domain.RoomDetail{}, f.roomErr
	}
	return f.room, nil
}
func (f *fakeHotelRepo) ListReviews(ctx context.Context, hotelID int64, limit int) ([]domain.Review, error) {
	return f.reviews, nil
}
func (f *fakeHotelRepo) ReviewStats(ctx context.Context, hotelID int64) (domain.ReviewStats, error) {
	return f.stats, nil
}
func (f *fakeHotelRepo) UpsertHotel(ctx context.Context, h domain.Hotel) error        { return nil }
func (f *fakeHotelRepo) UpsertRoomType(ctx context.Context, rt domain.RoomType) error { return nil }
func (f *fakeHotelRepo) UpsertAmenity(ctx context.Context, a domain.Amenity) error    { return nil }
func (f *fakeHotelRepo) LinkHotelAmenity(ctx context.Context, hotelID, amenityID int64) error {
	return nil
}
func (f *fakeHotelRepo) LinkRoomAmenity(ctx context.Context, roomTypeID, amenityID int64) error {
	return nil
}
func (f *fakeHotelRepo) ReplaceReviews(ctx context.Context, hotelID int64, rs []domain.Review) error {
	return nil
}

type fakeBookingRepo struct {
	nextID  int64
	created []domain.NewBooking
	detail  domain.BookingDetail
	err     error
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, b domain.NewBooking) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, b)
	f.nextID++
	return f.nextID, nil
}
func (f *fakeBookingRepo) GetBookingDetail(ctx context.Context, id int64) (domain.BookingDetail, error) {
	if f.detail.ID != id {
		return domain.BookingDetail{}, domain.ErrNotFound
	}
	return f.detail, nil
}

type fakeCache struct {
	store map[string]any
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.HotelSummary:
		*d = v.([]domain.HotelSummary)
	case *app.FrontPage:
		*d = v.(app.FrontPage)
	case *app.HotelPage:
		*d = v.(app.HotelPage)
	case *app.FilterOptions:
		*d = v.(app.FilterOptions)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	c.sets++
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }
