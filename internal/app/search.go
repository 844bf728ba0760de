package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"staybook/internal/domain"
)

type SearchService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{repo: r, cache: c, cacheTTL: ttl}
}

// FrontPage feeds the entry view: featured hotels, top-rated hotels
// with review aggregates, and the location dropdown.
type FrontPage struct {
	Featured  []domain.Hotel
	TopRated  []domain.RatedHotel
	Locations []string
}

// HotelPage is everything the detail view needs for one hotel.
type HotelPage struct {
	Hotel     domain.Hotel
	Amenities []domain.Amenity
	Rooms     []domain.RoomType
	Reviews   []domain.Review
	Stats     domain.ReviewStats
}

// FilterOptions feeds the search sidebar.
type FilterOptions struct {
	Amenities []domain.Amenity
	Prices    domain.PriceRange
}

const recentReviewLimit = 5

func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) ([]domain.HotelSummary, error) {
	key := searchKey(q)
	var hits []domain.HotelSummary
	if ok, _ := s.cache.Get(ctx, key, &hits); ok {
		return hits, nil
	}
	hits, err := s.repo.SearchHotels(ctx, q)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, hits, int(s.cacheTTL.Seconds()))
	return hits, nil
}

// searchKey hashes the normalized query so every filter combination
// gets its own cache slot.
func searchKey(q domain.SearchQuery) string {
	b, _ := json.Marshal(q)
	sum := sha1.Sum(b)
	return "hotels:" + hex.EncodeToString(sum[:])
}

func (s *SearchService) FrontPage(ctx context.Context) (FrontPage, error) {
	const key = "front"
	var fp FrontPage
	if ok, _ := s.cache.Get(ctx, key, &fp); ok {
		return fp, nil
	}

	featured, err := s.repo.FeaturedHotels(ctx, 3)
	if err != nil {
		return FrontPage{}, err
	}
	topRated, err := s.repo.TopRatedHotels(ctx, 3)
	if err != nil {
		return FrontPage{}, err
	}
	locations, err := s.repo.Locations(ctx)
	if err != nil {
		return FrontPage{}, err
	}

	fp = FrontPage{Featured: featured, TopRated: topRated, Locations: locations}
	_ = s.cache.Set(ctx, key, fp, int(s.cacheTTL.Seconds()))
	return fp, nil
}

func (s *SearchService) HotelDetail(ctx context.Context, id int64) (HotelPage, error) {
	key := fmt.Sprintf("hotel:%d", id)
	var hp HotelPage
	if ok, _ := s.cache.Get(ctx, key, &hp); ok {
		return hp, nil
	}

	hotel, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return HotelPage{}, err
	}
	amenities, err := s.repo.HotelAmenities(ctx, id)
	if err != nil {
		return HotelPage{}, err
	}
	rooms, err := s.repo.ListRoomTypes(ctx, id)
	if err != nil {
		return HotelPage{}, err
	}
	reviews, err := s.repo.ListReviews(ctx, id, recentReviewLimit)
	if err != nil {
		return HotelPage{}, err
	}
	stats, err := s.repo.ReviewStats(ctx, id)
	if err != nil {
		return HotelPage{}, err
	}

	hp = HotelPage{Hotel: hotel, Amenities: amenities, Rooms: rooms, Reviews: reviews, Stats: stats}
	_ = s.cache.Set(ctx, key, hp, int(s.cacheTTL.Seconds()))
	return hp, nil
}

func (s *SearchService) FilterOptions(ctx context.Context) (FilterOptions, error) {
	const key = "filters"
	var fo FilterOptions
	if ok, _ := s.cache.Get(ctx, key, &fo); ok {
		return fo, nil
	}

	amenities, err := s.repo.AllAmenities(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	prices, err := s.repo.PriceRange(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	fo = FilterOptions{Amenities: amenities, Prices: prices}
	_ = s.cache.Set(ctx, key, fo, int(s.cacheTTL.Seconds()))
	return fo, nil
}
