package mysql

import (
	"context"
	"database/sql"
	"strings"

	"staybook/internal/domain"
)

func valIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// SearchHotels assembles the filter dynamically but only ever appends
// whole clauses with positional placeholders; values are never spliced
// into the SQL text.
func (r *Repo) SearchHotels(ctx context.Context, q domain.SearchQuery) ([]domain.HotelSummary, error) {
	var b strings.Builder
	var args []any

	b.WriteString(searchHotelsPrefix)

	if n := len(q.Amenities); n > 0 {
		b.WriteString("JOIN hotel_amenities ha ON ha.hotel_id = h.hotel_id AND ha.amenity_id IN (")
		b.WriteString(placeholders(n))
		b.WriteString(")\n")
		for _, id := range q.Amenities {
			args = append(args, id)
		}
	}

	b.WriteString("WHERE rt.price_per_night BETWEEN ? AND ?\n")
	args = append(args, q.MinPrice, q.MaxPrice)

	if q.Location != "" {
		b.WriteString("AND h.location = ?\n")
		args = append(args, q.Location)
	}
	if q.MinRating > 0 {
		b.WriteString("AND h.rating >= ?\n")
		args = append(args, q.MinRating)
	}

	b.WriteString("GROUP BY h.hotel_id\n")

	// Match-all amenity semantics: the hotel must carry every selected
	// amenity, not any of them.
	if n := len(q.Amenities); n > 0 {
		b.WriteString("HAVING COUNT(DISTINCT ha.amenity_id) = ?\n")
		args = append(args, n)
	}

	switch q.SortBy {
	case domain.SortPriceHigh:
		b.WriteString("ORDER BY min_price DESC, h.hotel_id")
	case domain.SortRating:
		b.WriteString("ORDER BY h.rating DESC, h.hotel_id")
	default:
		b.WriteString("ORDER BY min_price ASC, h.hotel_id")
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelSummary
	for rows.Next() {
		var hs domain.HotelSummary
		if err := rows.Scan(
			&hs.ID, &hs.Name, &hs.Location, &hs.Address, &hs.Description,
			&hs.Rating, &hs.Thumbnail, &hs.Banner,
			&hs.MinPrice, &hs.MaxPrice,
		); err != nil {
			return nil, err
		}
		out = append(out, hs)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func (r *Repo) FeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return r.queryHotels(ctx, featuredHotelsSQL, limit)
}

func (r *Repo) queryHotels(ctx context.Context, query string, args ...any) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.Address, &h.Description,
			&h.Rating, &h.Thumbnail, &h.Banner); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) TopRatedHotels(ctx context.Context, limit int) ([]domain.RatedHotel, error) {
	rows, err := r.db.QueryContext(ctx, topRatedHotelsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RatedHotel
	for rows.Next() {
		var rh domain.RatedHotel
		if err := rows.Scan(&rh.ID, &rh.Name, &rh.Location, &rh.Address, &rh.Description,
			&rh.Rating, &rh.Thumbnail, &rh.Banner,
			&rh.ReviewCount, &rh.AvgRating); err != nil {
			return nil, err
		}
		out = append(out, rh)
	}
	return out, rows.Err()
}

func (r *Repo) Locations(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, locationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

func (r *Repo) AllAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return r.queryAmenities(ctx, allAmenitiesSQL)
}

func (r *Repo) HotelAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error) {
	return r.queryAmenities(ctx, hotelAmenitiesSQL, hotelID)
}

func (r *Repo) queryAmenities(ctx context.Context, query string, args ...any) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) PriceRange(ctx context.Context) (domain.PriceRange, error) {
	var pr domain.PriceRange
	err := r.db.QueryRowContext(ctx, priceRangeSQL).Scan(&pr.Min, &pr.Max)
	return pr, err
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(
		&h.ID, &h.Name, &h.Location, &h.Address, &h.Description,
		&h.Rating, &h.Thumbnail, &h.Banner,
	)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, listRoomTypesSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func scanRoomType(rows *sql.Rows) (domain.RoomType, error) {
	var rt domain.RoomType
	var size sql.NullInt64
	err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Description,
		&rt.PricePerNight, &rt.Capacity, &rt.BedConfig, &size, &rt.Image)
	if err != nil {
		return domain.RoomType{}, err
	}
	if size.Valid {
		s := int(size.Int64)
		rt.SizeSqm = &s
	}
	return rt, nil
}

func (r *Repo) GetRoomType(ctx context.Context, id int64) (domain.RoomDetail, error) {
	var rd domain.RoomDetail
	var size sql.NullInt64
	err := r.db.QueryRowContext(ctx, getRoomTypeSQL, id).Scan(
		&rd.ID, &rd.HotelID, &rd.Name, &rd.Description, &rd.PricePerNight,
		&rd.Capacity, &rd.BedConfig, &size, &rd.Image,
		&rd.HotelName, &rd.HotelLocation, &rd.HotelAddress,
	)
	if err == sql.ErrNoRows {
		return domain.RoomDetail{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.RoomDetail{}, err
	}
	if size.Valid {
		s := int(size.Int64)
		rd.SizeSqm = &s
	}
	return rd, nil
}

func (r *Repo) ListReviews(ctx context.Context, hotelID int64, limit int) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, hotelID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.HotelID, &rv.GuestName, &rv.Rating,
			&rv.Comment, &rv.Date); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ReviewStats(ctx context.Context, hotelID int64) (domain.ReviewStats, error) {
	var st domain.ReviewStats
	err := r.db.QueryRowContext(ctx, reviewStatsSQL, hotelID).Scan(&st.Count, &st.Average)
	return st, err
}

// ---- seed writes ----

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID, h.Name, h.Location, h.Address, h.Description, h.Rating, h.Thumbnail, h.Banner)
	return err
}

func (r *Repo) UpsertRoomType(ctx context.Context, rt domain.RoomType) error {
	_, err := r.db.ExecContext(ctx, upsertRoomTypeSQL,
		rt.ID, rt.HotelID, rt.Name, rt.Description, rt.PricePerNight,
		rt.Capacity, rt.BedConfig, valIntPtr(rt.SizeSqm), rt.Image)
	return err
}

func (r *Repo) UpsertAmenity(ctx context.Context, a domain.Amenity) error {
	_, err := r.db.ExecContext(ctx, upsertAmenitySQL, a.ID, a.Name)
	return err
}

func (r *Repo) LinkHotelAmenity(ctx context.Context, hotelID, amenityID int64) error {
	_, err := r.db.ExecContext(ctx, linkHotelAmenitySQL, hotelID, amenityID)
	return err
}

func (r *Repo) LinkRoomAmenity(ctx context.Context, roomTypeID, amenityID int64) error {
	_, err := r.db.ExecContext(ctx, linkRoomAmenitySQL, roomTypeID, amenityID)
	return err
}

// ReplaceReviews wipes and reloads a hotel's reviews so reseeding is
// repeatable without duplicating rows.
func (r *Repo) ReplaceReviews(ctx context.Context, hotelID int64, rs []domain.Review) error {
	if _, err := r.db.ExecContext(ctx, deleteHotelReviewsSQL, hotelID); err != nil {
		return err
	}
	for _, rv := range rs {
		var date any
		if !rv.Date.IsZero() {
			date = rv.Date
		}
		if _, err := r.db.ExecContext(ctx, insertReviewSQL,
			hotelID, rv.GuestName, rv.Rating, rv.Comment, date); err != nil {
			return err
		}
	}
	return nil
}
