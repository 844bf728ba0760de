package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Pages are rendered with html/template; user-supplied text is escaped
// contextually by the engine, never concatenated into markup.

var viewFuncs = template.FuncMap{
	"money":     func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"date":      func(t time.Time) string { return t.Format("Monday, Jan 2, 2006") },
	"short":     func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"mulNights": func(n int, price float64) float64 { return float64(n) * price },
}

func parsePage(page string) *template.Template {
	t := template.Must(template.New("layout").Funcs(viewFuncs).Parse(layoutHTML))
	return template.Must(t.Parse(page))
}

var (
	homeTmpl         = parsePage(homeHTML)
	hotelsTmpl       = parsePage(hotelsHTML)
	roomDetailsTmpl  = parsePage(roomDetailsHTML)
	bookingTmpl      = parsePage(bookingHTML)
	confirmationTmpl = parsePage(confirmationHTML)
)

func render(w http.ResponseWriter, t *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{block "title" .}}StayBook Hotels{{end}}</title>
</head>
<body>
<header>
  <nav><a href="/">StayBook Hotels</a> | <a href="/hotels">Browse Hotels</a></nav>
</header>
<main>
{{block "content" .}}{{end}}
</main>
<footer><p>&copy; StayBook Hotels</p></footer>
</body>
</html>`

const homeHTML = `
{{define "title"}}StayBook Hotels | Find Your Perfect Stay{{end}}
{{define "content"}}
<section>
  <h1>Find Your Perfect Stay</h1>
  <form action="/hotels" method="get">
    <label>Location
      <select name="location">
        <option value="">Anywhere</option>
        {{range .Locations}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </label>
    <label>Check-in <input type="date" name="check_in"></label>
    <label>Check-out <input type="date" name="check_out"></label>
    <button type="submit">Search Hotels</button>
  </form>
</section>
<section>
  <h2>Featured Hotels</h2>
  <ul>
  {{range .Featured}}
    <li>
      <a href="/room_details?hotel_id={{.ID}}">{{.Name}}</a>
      — {{.Location}} ({{printf "%.1f" .Rating}} stars)
      <p>{{.Description}}</p>
    </li>
  {{end}}
  </ul>
</section>
<section>
  <h2>Top Rated by Guests</h2>
  <ul>
  {{range .TopRated}}
    <li>
      <a href="/room_details?hotel_id={{.ID}}">{{.Name}}</a>
      — {{.Location}}, {{.ReviewCount}} reviews, avg {{printf "%.1f" .AvgRating}}
    </li>
  {{end}}
  </ul>
</section>
{{end}}`

const hotelsHTML = `
{{define "title"}}StayBook Hotels | Available Hotels{{end}}
{{define "content"}}
<h1>Available Hotels</h1>
{{if .CheckIn}}<p>Stay: {{.CheckIn}} — {{.CheckOut}}</p>{{end}}
<form action="/hotels" method="get">
  <input type="hidden" name="location" value="{{.Query.Location}}">
  <input type="hidden" name="check_in" value="{{.CheckIn}}">
  <input type="hidden" name="check_out" value="{{.CheckOut}}">
  <fieldset>
    <legend>Filters</legend>
    <label>Min price <input type="number" name="min_price" value="{{.Query.MinPrice}}"></label>
    <label>Max price <input type="number" name="max_price" value="{{.Query.MaxPrice}}"></label>
    <label>Min rating <input type="number" step="0.5" name="rating" value="{{.Query.MinRating}}"></label>
    {{range .Filters.Amenities}}
      <label><input type="checkbox" name="amenities" value="{{.ID}}"> {{.Name}}</label>
    {{end}}
    <label>Sort by
      <select name="sort_by">
        <option value="price_low">Price (low to high)</option>
        <option value="price_high">Price (high to low)</option>
        <option value="rating">Rating</option>
      </select>
    </label>
    <button type="submit">Apply</button>
  </fieldset>
</form>
{{if .Hotels}}
<ul>
  {{range .Hotels}}
  <li>
    <a href="/room_details?hotel_id={{.ID}}&amp;check_in={{$.CheckIn}}&amp;check_out={{$.CheckOut}}">{{.Name}}</a>
    — {{.Location}} ({{printf "%.1f" .Rating}} stars), from {{money .MinPrice}}/night
    <p>{{.Description}}</p>
  </li>
  {{end}}
</ul>
{{else}}
<p>No hotels match your filters.</p>
{{end}}
{{end}}`

const roomDetailsHTML = `
{{define "title"}}{{.Page.Hotel.Name}} | StayBook Hotels{{end}}
{{define "content"}}
<h1>{{.Page.Hotel.Name}}</h1>
<p>{{.Page.Hotel.Location}} — {{.Page.Hotel.Address}} ({{printf "%.1f" .Page.Hotel.Rating}} stars)</p>
<p>{{.Page.Hotel.Description}}</p>
{{if .Page.Amenities}}
<h2>Amenities</h2>
<ul>{{range .Page.Amenities}}<li>{{.Name}}</li>{{end}}</ul>
{{end}}
<h2>Rooms</h2>
<ul>
  {{range .Page.Rooms}}
  <li>
    <h3>{{.Name}}</h3>
    <p>{{.Description}}</p>
    <p>{{.BedConfig}}, sleeps {{.Capacity}} — {{money .PricePerNight}}/night
       ({{$.Nights}} night{{if ne $.Nights 1}}s{{end}}: {{money (mulNights $.Nights .PricePerNight)}})</p>
    <a href="/booking?room_id={{.ID}}&amp;check_in={{$.CheckIn}}&amp;check_out={{$.CheckOut}}">Book Now</a>
  </li>
  {{end}}
</ul>
<h2>Guest Reviews ({{.Page.Stats.Count}}, avg {{printf "%.1f" .Page.Stats.Average}})</h2>
<ul>
  {{range .Page.Reviews}}
  <li><strong>{{.GuestName}}</strong> — {{printf "%.1f" .Rating}} on {{short .Date}}<p>{{.Comment}}</p></li>
  {{end}}
</ul>
{{end}}`

const bookingHTML = `
{{define "title"}}Book Your Stay | StayBook Hotels{{end}}
{{define "content"}}
<h1>Book Your Stay</h1>
<p>{{.Room.HotelName}} — {{.Room.Name}}, {{.Room.HotelLocation}}</p>
<p>{{date .CheckIn}} to {{date .CheckOut}} — {{.Nights}} night{{if ne .Nights 1}}s{{end}},
   {{money .Room.PricePerNight}}/night, total {{money .Total}}</p>
{{if .Errors}}
<ul class="errors">
  {{range .Errors}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
<form method="post" action="{{.FormAction}}">
  <label>Full name <input type="text" name="guest_name" value="{{.Form.GuestName}}"></label>
  <label>Email <input type="email" name="guest_email" value="{{.Form.GuestEmail}}"></label>
  <label>Phone <input type="tel" name="guest_phone" value="{{.Form.GuestPhone}}"></label>
  <label>Adults <input type="number" name="adults" value="{{.Form.Adults}}"></label>
  <label>Children <input type="number" name="children" value="{{.Form.Children}}"></label>
  <label>Special requests <textarea name="special_requests">{{.Form.SpecialRequests}}</textarea></label>
  <button type="submit">Confirm Booking</button>
</form>
{{end}}`

const confirmationHTML = `
{{define "title"}}Booking Confirmation | StayBook Hotels{{end}}
{{define "content"}}
<h1>Booking Confirmed</h1>
<p>Confirmation code: <strong>{{.Code}}</strong></p>
<p>{{.HotelName}} — {{.RoomName}}</p>
<p>{{.HotelLocation}}, {{.HotelAddress}}</p>
<p>Guest: {{.GuestName}} ({{.GuestEmail}}, {{.GuestPhone}})</p>
<p>{{date .CheckIn}} to {{date .CheckOut}} — {{.Nights}} night{{if ne .Nights 1}}s{{end}}</p>
<p>{{.Adults}} adult{{if ne .Adults 1}}s{{end}}, {{.Children}} child{{if ne .Children 1}}ren{{end}}</p>
{{if .SpecialRequests}}<p>Special requests: {{.SpecialRequests}}</p>{{end}}
<p>Total: {{money .TotalPrice}} — payment {{.PaymentStatus}}</p>
<p><a href="/">Back to home</a></p>
{{end}}`
