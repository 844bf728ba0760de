package domain

type Hotel struct {
	ID          int64
	Name        string
	Location    string
	Address     string
	Description string
	Rating      float64 // 0-5, one decimal
	Thumbnail   string
	Banner      string
}

type RoomType struct {
	ID            int64
	HotelID       int64
	Name          string
	Description   string
	PricePerNight float64
	Capacity      int
	BedConfig     string
	SizeSqm       *int
	Image         string
}

type Amenity struct {
	ID   int64
	Name string
}
