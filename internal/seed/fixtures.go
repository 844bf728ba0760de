package seed

import (
	"time"

	"staybook/internal/domain"
)

// Fixture bundles one hotel with everything that hangs off it so the
// seeder can load a hotel as a unit.
type Fixture struct {
	Hotel     domain.Hotel
	Amenities []int64 // amenity ids linked to the hotel
	Rooms     []Room
	Reviews   []domain.Review
}

type Room struct {
	RoomType  domain.RoomType
	Amenities []int64
}

var Amenities = []domain.Amenity{
	{ID: 1, Name: "Free WiFi"},
	{ID: 2, Name: "Swimming Pool"},
	{ID: 3, Name: "Spa & Wellness"},
	{ID: 4, Name: "Fitness Center"},
	{ID: 5, Name: "Restaurant"},
	{ID: 6, Name: "Free Parking"},
	{ID: 7, Name: "Airport Shuttle"},
	{ID: 8, Name: "Room Service"},
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sqm(n int) *int { return &n }

var Hotels = []Fixture{
	{
		Hotel: domain.Hotel{
			ID: 1, Name: "Grand Meridian Paris", Location: "Paris",
			Address:     "12 Rue de Rivoli, 75001 Paris",
			Description: "Elegant rooms a short walk from the Louvre.",
			Rating:      4.7, Thumbnail: "/img/meridian-thumb.jpg", Banner: "/img/meridian-banner.jpg",
		},
		Amenities: []int64{1, 3, 5, 8},
		Rooms: []Room{
			{
				RoomType: domain.RoomType{
					ID: 101, HotelID: 1, Name: "Classic Double",
					Description:   "Courtyard view, queen bed.",
					PricePerNight: 150.00, Capacity: 2, BedConfig: "1 Queen",
					SizeSqm: sqm(22), Image: "/img/meridian-double.jpg",
				},
				Amenities: []int64{1, 8},
			},
			{
				RoomType: domain.RoomType{
					ID: 102, HotelID: 1, Name: "Executive Suite",
					Description:   "Separate living area overlooking the city.",
					PricePerNight: 320.00, Capacity: 4, BedConfig: "1 King + Sofa Bed",
					SizeSqm: sqm(48), Image: "/img/meridian-suite.jpg",
				},
				Amenities: []int64{1, 3, 8},
			},
		},
		Reviews: []domain.Review{
			{HotelID: 1, GuestName: "Claire D.", Rating: 5.0, Comment: "Perfect location and lovely staff.", Date: day("2026-05-12")},
			{HotelID: 1, GuestName: "Tom H.", Rating: 4.5, Comment: "Rooms are small but beautifully kept.", Date: day("2026-06-03")},
		},
	},
	{
		Hotel: domain.Hotel{
			ID: 2, Name: "Seine Riverside Inn", Location: "Paris",
			Address:     "5 Quai Voltaire, 75007 Paris",
			Description: "Boutique inn on the left bank of the Seine.",
			Rating:      4.2, Thumbnail: "/img/seine-thumb.jpg", Banner: "/img/seine-banner.jpg",
		},
		Amenities: []int64{1, 5},
		Rooms: []Room{
			{
				RoomType: domain.RoomType{
					ID: 201, HotelID: 2, Name: "Riverside Queen",
					Description:   "River view with a reading nook.",
					PricePerNight: 118.00, Capacity: 2, BedConfig: "1 Queen",
					SizeSqm: sqm(20), Image: "/img/seine-queen.jpg",
				},
				Amenities: []int64{1},
			},
		},
		Reviews: []domain.Review{
			{HotelID: 2, GuestName: "Marta S.", Rating: 4.0, Comment: "Charming, though breakfast ends early.", Date: day("2026-04-21")},
		},
	},
	{
		Hotel: domain.Hotel{
			ID: 3, Name: "Harbor Lights Resort", Location: "Lisbon",
			Address:     "Av. Brasília 210, 1400-038 Lisboa",
			Description: "Seafront resort with two pools and a rooftop bar.",
			Rating:      4.8, Thumbnail: "/img/harbor-thumb.jpg", Banner: "/img/harbor-banner.jpg",
		},
		Amenities: []int64{1, 2, 4, 5, 6, 7},
		Rooms: []Room{
			{
				RoomType: domain.RoomType{
					ID: 301, HotelID: 3, Name: "Ocean View Twin",
					Description:   "Two twin beds facing the Atlantic.",
					PricePerNight: 95.00, Capacity: 2, BedConfig: "2 Twin",
					SizeSqm: sqm(24), Image: "/img/harbor-twin.jpg",
				},
				Amenities: []int64{1, 2},
			},
			{
				RoomType: domain.RoomType{
					ID: 302, HotelID: 3, Name: "Family Apartment",
					Description:   "Kitchenette and bunk room for the kids.",
					PricePerNight: 210.00, Capacity: 5, BedConfig: "1 King + 2 Bunks",
					SizeSqm: sqm(55), Image: "/img/harbor-family.jpg",
				},
				Amenities: []int64{1, 2, 6},
			},
			{
				RoomType: domain.RoomType{
					ID: 303, HotelID: 3, Name: "Penthouse Suite",
					Description:   "Top floor, private terrace, butler service.",
					PricePerNight: 540.00, Capacity: 3, BedConfig: "1 King",
					SizeSqm: sqm(80), Image: "/img/harbor-penthouse.jpg",
				},
				Amenities: []int64{1, 2, 3, 8},
			},
		},
		Reviews: []domain.Review{
			{HotelID: 3, GuestName: "João P.", Rating: 5.0, Comment: "Best pool in Lisbon, hands down.", Date: day("2026-07-14")},
			{HotelID: 3, GuestName: "Anna K.", Rating: 4.5, Comment: "Great for families, shuttle was punctual.", Date: day("2026-07-02")},
			{HotelID: 3, GuestName: "Louis B.", Rating: 5.0, Comment: "The penthouse terrace is unreal.", Date: day("2026-08-09")},
		},
	},
	{
		Hotel: domain.Hotel{
			ID: 4, Name: "Alpine Crown Lodge", Location: "Zurich",
			Address:     "Bahnhofstrasse 88, 8001 Zürich",
			Description: "Quiet lodge minutes from the lake.",
			Rating:      3.9, Thumbnail: "/img/alpine-thumb.jpg", Banner: "/img/alpine-banner.jpg",
		},
		Amenities: []int64{1, 4, 6},
		Rooms: []Room{
			{
				RoomType: domain.RoomType{
					ID: 401, HotelID: 4, Name: "Standard Double",
					Description:   "Simple and spotless.",
					PricePerNight: 130.00, Capacity: 2, BedConfig: "1 Double",
					SizeSqm: sqm(18), Image: "/img/alpine-double.jpg",
				},
				Amenities: []int64{1},
			},
			{
				RoomType: domain.RoomType{
					ID: 402, HotelID: 4, Name: "Lake View Triple",
					Description:   "Corner room with lake glimpses.",
					PricePerNight: 185.00, Capacity: 3, BedConfig: "1 Double + 1 Single",
					SizeSqm: sqm(26), Image: "/img/alpine-triple.jpg",
				},
				Amenities: []int64{1, 4},
			},
		},
		Reviews: []domain.Review{
			{HotelID: 4, GuestName: "Petra M.", Rating: 3.5, Comment: "Good value for Zurich.", Date: day("2026-03-30")},
		},
	},
}
