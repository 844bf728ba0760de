//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"staybook/internal/domain"
	mysqlrepo "staybook/internal/storage/mysql"
)

// ---------- small helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=staybook",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "staybook")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func sqm(n int) *int { return &n }

func seedFixtures(t *testing.T, repo *mysqlrepo.Repo) {
	t.Helper()
	ctx := context.Background()

	for _, a := range []domain.Amenity{
		{ID: 1, Name: "Free WiFi"},
		{ID: 2, Name: "Swimming Pool"},
		{ID: 3, Name: "Spa & Wellness"},
	} {
		if err := repo.UpsertAmenity(ctx, a); err != nil {
			t.Fatalf("UpsertAmenity: %v", err)
		}
	}

	hotels := []domain.Hotel{
		{ID: 1, Name: "Grand Meridian Paris", Location: "Paris", Address: "12 Rue de Rivoli",
			Description: "Elegant.", Rating: 4.7, Thumbnail: "/img/a.jpg"},
		{ID: 2, Name: "Seine Riverside Inn", Location: "Paris", Address: "5 Quai Voltaire",
			Description: "Boutique.", Rating: 3.8, Thumbnail: "/img/b.jpg"},
		{ID: 3, Name: "Harbor Lights Resort", Location: "Lisbon", Address: "Av. Brasília 210",
			Description: "Seafront.", Rating: 4.8, Thumbnail: "/img/c.jpg"},
		// no room types: must never appear in search results
		{ID: 4, Name: "Phantom Hotel", Location: "Paris", Address: "Nowhere 1",
			Description: "Roomless.", Rating: 5.0},
	}
	for _, h := range hotels {
		if err := repo.UpsertHotel(ctx, h); err != nil {
			t.Fatalf("UpsertHotel: %v", err)
		}
	}

	rooms := []domain.RoomType{
		{ID: 101, HotelID: 1, Name: "Classic Double", Description: "Queen bed.",
			PricePerNight: 150.00, Capacity: 2, BedConfig: "1 Queen", SizeSqm: sqm(22)},
		{ID: 102, HotelID: 1, Name: "Executive Suite", Description: "City view.",
			PricePerNight: 320.00, Capacity: 4, BedConfig: "1 King"},
		{ID: 201, HotelID: 2, Name: "Riverside Queen", Description: "River view.",
			PricePerNight: 118.00, Capacity: 2, BedConfig: "1 Queen"},
		{ID: 301, HotelID: 3, Name: "Ocean View Twin", Description: "Atlantic.",
			PricePerNight: 95.00, Capacity: 2, BedConfig: "2 Twin"},
	}
	for _, rt := range rooms {
		if err := repo.UpsertRoomType(ctx, rt); err != nil {
			t.Fatalf("UpsertRoomType: %v", err)
		}
	}

	// hotel 1: wifi+spa, hotel 2: wifi, hotel 3: wifi+pool
	links := []struct{ hotel, amenity int64 }{
		{1, 1}, {1, 3}, {2, 1}, {3, 1}, {3, 2},
	}
	for _, l := range links {
		if err := repo.LinkHotelAmenity(ctx, l.hotel, l.amenity); err != nil {
			t.Fatalf("LinkHotelAmenity: %v", err)
		}
	}

	reviews := []domain.Review{
		{HotelID: 1, GuestName: "Claire D.", Rating: 5.0, Comment: "Lovely.", Date: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)},
		{HotelID: 1, GuestName: "Tom H.", Rating: 4.0, Comment: "Small rooms.", Date: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)},
	}
	if err := repo.ReplaceReviews(ctx, 1, reviews); err != nil {
		t.Fatalf("ReplaceReviews: %v", err)
	}
}

// ---------- the tests ----------

func TestRepo_MySQL_SearchAndBook(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	seedFixtures(t, repo)

	t.Run("location and rating filter", func(t *testing.T) {
		hits, err := repo.SearchHotels(ctx, domain.SearchQuery{
			Location: "Paris", MinPrice: 0, MaxPrice: 10000, MinRating: 4,
			SortBy: domain.SortPriceLow,
		})
		if err != nil {
			t.Fatalf("SearchHotels: %v", err)
		}
		if len(hits) != 1 || hits[0].ID != 1 {
			t.Fatalf("want only hotel 1, got %+v", hits)
		}
		if hits[0].MinPrice != 150.00 || hits[0].MaxPrice != 320.00 {
			t.Fatalf("price band: %+v", hits[0])
		}
	})

	t.Run("default sort is min price ascending", func(t *testing.T) {
		hits, err := repo.SearchHotels(ctx, domain.SearchQuery{MinPrice: 0, MaxPrice: 10000})
		if err != nil {
			t.Fatalf("SearchHotels: %v", err)
		}
		// 3 (95) < 2 (118) < 1 (150); roomless hotel 4 absent
		want := []int64{3, 2, 1}
		if len(hits) != len(want) {
			t.Fatalf("hits: %+v", hits)
		}
		for i, id := range want {
			if hits[i].ID != id {
				t.Fatalf("order: got %d at %d, want %d", hits[i].ID, i, id)
			}
		}
	})

	t.Run("widening price bounds never drops a hit", func(t *testing.T) {
		narrow, err := repo.SearchHotels(ctx, domain.SearchQuery{MinPrice: 100, MaxPrice: 200})
		if err != nil {
			t.Fatalf("SearchHotels: %v", err)
		}
		wide, err := repo.SearchHotels(ctx, domain.SearchQuery{MinPrice: 0, MaxPrice: 10000})
		if err != nil {
			t.Fatalf("SearchHotels: %v", err)
		}
		wideIDs := map[int64]bool{}
		for _, h := range wide {
			wideIDs[h.ID] = true
		}
		for _, h := range narrow {
			if !wideIDs[h.ID] {
				t.Fatalf("hotel %d vanished when bounds widened", h.ID)
			}
		}
	})

	t.Run("amenities match all", func(t *testing.T) {
		// wifi+pool: only hotel 3 has both; wifi alone matches 1,2,3
		hits, err := repo.SearchHotels(ctx, domain.SearchQuery{
			MinPrice: 0, MaxPrice: 10000, Amenities: []int64{1, 2},
		})
		if err != nil {
			t.Fatalf("SearchHotels: %v", err)
		}
		if len(hits) != 1 || hits[0].ID != 3 {
			t.Fatalf("want only hotel 3, got %+v", hits)
		}
	})

	t.Run("hotel detail reads", func(t *testing.T) {
		h, err := repo.GetHotel(ctx, 1)
		if err != nil {
			t.Fatalf("GetHotel: %v", err)
		}
		if h.Name != "Grand Meridian Paris" {
			t.Fatalf("hotel: %+v", h)
		}

		if _, err := repo.GetHotel(ctx, 999); err != domain.ErrNotFound {
			t.Fatalf("want ErrNotFound, got %v", err)
		}

		rooms, err := repo.ListRoomTypes(ctx, 1)
		if err != nil {
			t.Fatalf("ListRoomTypes: %v", err)
		}
		if len(rooms) != 2 || rooms[0].PricePerNight > rooms[1].PricePerNight {
			t.Fatalf("rooms: %+v", rooms)
		}

		stats, err := repo.ReviewStats(ctx, 1)
		if err != nil {
			t.Fatalf("ReviewStats: %v", err)
		}
		if stats.Count != 2 || stats.Average != 4.5 {
			t.Fatalf("stats: %+v", stats)
		}
	})

	t.Run("booking insert and readback", func(t *testing.T) {
		in := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		out := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
		id, err := repo.CreateBooking(ctx, domain.NewBooking{
			RoomTypeID: 101,
			GuestName:  "Jamie Doe",
			GuestEmail: "jamie@example.com",
			GuestPhone: "+33 1 23 45 67 89",
			CheckIn:    in, CheckOut: out,
			Adults: 2, Children: 0,
			TotalPrice: 300.00,
		})
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if id <= 0 {
			t.Fatalf("id = %d", id)
		}

		bd, err := repo.GetBookingDetail(ctx, id)
		if err != nil {
			t.Fatalf("GetBookingDetail: %v", err)
		}
		if bd.TotalPrice != 300.00 {
			t.Fatalf("total = %.2f", bd.TotalPrice)
		}
		if bd.PaymentStatus != domain.PaymentPending {
			t.Fatalf("status = %s", bd.PaymentStatus)
		}
		if bd.RoomName != "Classic Double" || bd.HotelName != "Grand Meridian Paris" {
			t.Fatalf("joins: %+v", bd)
		}
		if bd.CreatedAt.IsZero() {
			t.Fatal("created_at not assigned")
		}

		if _, err := repo.GetBookingDetail(ctx, id+1000); err != domain.ErrNotFound {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("failed insert writes nothing", func(t *testing.T) {
		var before int
		if err := db.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&before); err != nil {
			t.Fatalf("count: %v", err)
		}

		// unknown room type violates the FK; the tx must roll back
		_, err := repo.CreateBooking(ctx, domain.NewBooking{
			RoomTypeID: 999999,
			GuestName:  "Ghost", GuestEmail: "g@example.com", GuestPhone: "0",
			CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			Adults:   1, TotalPrice: 1,
		})
		if err == nil {
			t.Fatal("expected FK failure")
		}

		var after int
		if err := db.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&after); err != nil {
			t.Fatalf("count: %v", err)
		}
		if after != before {
			t.Fatalf("bookings count changed: %d -> %d", before, after)
		}
	})
}
