package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
	"staybook/internal/seed"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("hotels", len(seed.Hotels)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	// Amenity catalog first; hotel/room links reference it.
	for _, a := range seed.Amenities {
		if err := repo.UpsertAmenity(ctx, a); err != nil {
			log.Fatal().Err(err).Int64("id", a.ID).Msg("upsert amenity failed")
		}
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, fx := range seed.Hotels {
		fx := fx

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(fx seed.Fixture) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedHotel(ctx, repo, fx); err != nil {
				log.Warn().Int64("id", fx.Hotel.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", fx.Hotel.ID).Str("name", fx.Hotel.Name).Msg("seed ok")
		}(fx)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedHotel(ctx context.Context, repo domain.HotelRepository, fx seed.Fixture) error {
	if err := repo.UpsertHotel(ctx, fx.Hotel); err != nil {
		return err
	}
	for _, id := range fx.Amenities {
		if err := repo.LinkHotelAmenity(ctx, fx.Hotel.ID, id); err != nil {
			return err
		}
	}
	for _, room := range fx.Rooms {
		if err := repo.UpsertRoomType(ctx, room.RoomType); err != nil {
			return err
		}
		for _, id := range room.Amenities {
			if err := repo.LinkRoomAmenity(ctx, room.RoomType.ID, id); err != nil {
				return err
			}
		}
	}
	return repo.ReplaceReviews(ctx, fx.Hotel.ID, fx.Reviews)
}
