package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (hotel_id, name, location, address, description, rating, thumbnail, banner)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  location    = VALUES(location),
  address     = VALUES(address),
  description = VALUES(description),
  rating      = VALUES(rating),
  thumbnail   = VALUES(thumbnail),
  banner      = VALUES(banner)
`

const upsertRoomTypeSQL = `
INSERT INTO room_types
  (room_type_id, hotel_id, name, description, price_per_night, capacity, bed_config, size_sqm, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  description     = VALUES(description),
  price_per_night = VALUES(price_per_night),
  capacity        = VALUES(capacity),
  bed_config      = VALUES(bed_config),
  size_sqm        = VALUES(size_sqm),
  image           = VALUES(image)
`

const upsertAmenitySQL = `
INSERT INTO amenities (amenity_id, name)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name)
`

const linkHotelAmenitySQL = `
INSERT IGNORE INTO hotel_amenities (hotel_id, amenity_id) VALUES (?, ?)
`

const linkRoomAmenitySQL = `
INSERT IGNORE INTO room_amenities (room_type_id, amenity_id) VALUES (?, ?)
`

const deleteHotelReviewsSQL = `
DELETE FROM reviews WHERE hotel_id = ?
`

const insertReviewSQL = `
INSERT INTO reviews (hotel_id, guest_name, rating, comment, review_date)
VALUES (?, ?, ?, ?, COALESCE(?, CURRENT_DATE))
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// searchHotelsPrefix is the static head of the hotel search; optional
// filter clauses and the ORDER BY are appended with positional args in
// repo.SearchHotels. Inner join: hotels without room types never match.
const searchHotelsPrefix = `
SELECT
  h.hotel_id,
  h.name,
  h.location,
  h.address,
  h.description,
  h.rating,
  h.thumbnail,
  h.banner,
  MIN(rt.price_per_night) AS min_price,
  MAX(rt.price_per_night) AS max_price
FROM hotels h
JOIN room_types rt ON rt.hotel_id = h.hotel_id
`

const featuredHotelsSQL = `
SELECT hotel_id, name, location, address, description, rating, thumbnail, banner
FROM hotels
ORDER BY rating DESC, hotel_id
LIMIT ?
`

const topRatedHotelsSQL = `
SELECT
  h.hotel_id, h.name, h.location, h.address, h.description, h.rating, h.thumbnail, h.banner,
  COUNT(r.review_id)           AS review_count,
  COALESCE(AVG(r.rating), 0)   AS avg_rating
FROM hotels h
LEFT JOIN reviews r ON r.hotel_id = h.hotel_id
GROUP BY h.hotel_id
ORDER BY avg_rating DESC, h.hotel_id
LIMIT ?
`

const locationsSQL = `
SELECT DISTINCT location FROM hotels ORDER BY location
`

const allAmenitiesSQL = `
SELECT amenity_id, name FROM amenities ORDER BY name
`

const priceRangeSQL = `
SELECT COALESCE(MIN(price_per_night), 0), COALESCE(MAX(price_per_night), 0) FROM room_types
`

const getHotelSQL = `
SELECT hotel_id, name, location, address, description, rating, thumbnail, banner
FROM hotels
WHERE hotel_id = ?
`

const hotelAmenitiesSQL = `
SELECT a.amenity_id, a.name
FROM amenities a
JOIN hotel_amenities ha ON ha.amenity_id = a.amenity_id
WHERE ha.hotel_id = ?
ORDER BY a.name
`

const listRoomTypesSQL = `
SELECT room_type_id, hotel_id, name, description, price_per_night, capacity, bed_config, size_sqm, image
FROM room_types
WHERE hotel_id = ?
ORDER BY price_per_night, room_type_id
`

const getRoomTypeSQL = `
SELECT
  rt.room_type_id, rt.hotel_id, rt.name, rt.description, rt.price_per_night,
  rt.capacity, rt.bed_config, rt.size_sqm, rt.image,
  h.name, h.location, h.address
FROM room_types rt
JOIN hotels h ON h.hotel_id = rt.hotel_id
WHERE rt.room_type_id = ?
`

const listReviewsSQL = `
SELECT review_id, hotel_id, guest_name, rating, comment, review_date
FROM reviews
WHERE hotel_id = ?
ORDER BY review_date DESC, review_id DESC
LIMIT ?
`

const reviewStatsSQL = `
SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM reviews WHERE hotel_id = ?
`

const insertBookingSQL = `
INSERT INTO bookings
  (room_type_id, guest_name, guest_email, guest_phone,
   check_in_date, check_out_date, adults, children, special_requests,
   total_price, payment_status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getBookingDetailSQL = `
SELECT
  b.booking_id, b.room_type_id, b.guest_name, b.guest_email, b.guest_phone,
  b.check_in_date, b.check_out_date, b.adults, b.children, b.special_requests,
  b.total_price, b.payment_status, b.created_at,
  rt.name, rt.image, rt.price_per_night,
  h.name, h.location, h.address, h.thumbnail
FROM bookings b
JOIN room_types rt ON rt.room_type_id = b.room_type_id
JOIN hotels h ON h.hotel_id = rt.hotel_id
WHERE b.booking_id = ?
`
