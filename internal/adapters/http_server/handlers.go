package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"staybook/internal/adapters/observability"
	"staybook/internal/app"
	"staybook/internal/domain"
)

const genericBookingError = "An error occurred while processing your booking. Please try again."

type Handlers struct {
	Search  *app.SearchService
	Booking *app.BookingService
}

func (s *Server) MountHandlers(h *Handlers, bookingRPS int) {
	if bookingRPS <= 0 {
		bookingRPS = 5
	}
	lim := rate.NewLimiter(rate.Limit(bookingRPS), bookingRPS)

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.home)
	s.mux.Get("/hotels", h.hotels)
	s.mux.Get("/room_details", h.roomDetails)
	s.mux.Get("/booking", h.bookingForm)
	s.mux.With(Throttle(lim)).Post("/booking", h.bookingSubmit)
	s.mux.Get("/confirmation", h.confirmation)
}

// ---- permissive query parsing ----
// Malformed numbers coerce to defaults instead of failing the page;
// this mirrors the filters' long-standing behavior.

func intOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func floatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

func toHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// ---- pages ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	fp, err := h.Search.FrontPage(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("front page load failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, homeTmpl, http.StatusOK, fp)
}

type hotelsPage struct {
	Query    domain.SearchQuery
	CheckIn  string
	CheckOut string
	Hotels   []domain.HotelSummary
	Filters  app.FilterOptions
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	var amenities []int64
	ids := qs["amenities"]
	if len(ids) == 0 {
		ids = qs["amenities[]"]
	}
	for _, s := range ids {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
			amenities = append(amenities, id)
		}
	}

	q := domain.SearchQuery{
		Location:  qs.Get("location"),
		MinPrice:  intOr(qs.Get("min_price"), 0),
		MaxPrice:  intOr(qs.Get("max_price"), 10000),
		MinRating: floatOr(qs.Get("rating"), 0),
		Amenities: amenities,
		SortBy:    sortOrder(qs.Get("sort_by")),
	}

	hits, err := h.Search.Search(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("hotel search failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	filters, err := h.Search.FilterOptions(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("filter options load failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	render(w, hotelsTmpl, http.StatusOK, hotelsPage{
		Query:    q,
		CheckIn:  qs.Get("check_in"),
		CheckOut: qs.Get("check_out"),
		Hotels:   hits,
		Filters:  filters,
	})
}

func sortOrder(s string) domain.SortOrder {
	switch domain.SortOrder(s) {
	case domain.SortPriceHigh:
		return domain.SortPriceHigh
	case domain.SortRating:
		return domain.SortRating
	default:
		return domain.SortPriceLow
	}
}

type roomDetailsPage struct {
	Page     app.HotelPage
	CheckIn  string
	CheckOut string
	Nights   int
}

func (h *Handlers) roomDetails(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	hotelID, err := strconv.ParseInt(qs.Get("hotel_id"), 10, 64)
	if err != nil || hotelID <= 0 {
		toHome(w, r)
		return
	}

	page, err := h.Search.HotelDetail(r.Context(), hotelID)
	if errors.Is(err, domain.ErrNotFound) {
		toHome(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("hotel_id", hotelID).Msg("hotel detail load failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Without dates the per-room totals preview a single night.
	nights := 1
	if in, okIn := parseDate(qs.Get("check_in")); okIn {
		if out, okOut := parseDate(qs.Get("check_out")); okOut && out.After(in) {
			nights = app.Nights(in, out)
		}
	}

	render(w, roomDetailsTmpl, http.StatusOK, roomDetailsPage{
		Page:     page,
		CheckIn:  qs.Get("check_in"),
		CheckOut: qs.Get("check_out"),
		Nights:   nights,
	})
}

type bookingPage struct {
	Room       domain.RoomDetail
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	Total      float64
	Errors     []string
	Form       app.SubmitInput
	FormAction string
}

// bookingParams pulls the required identifiers off the query string;
// any of them missing sends the visitor back to the entry page.
func bookingParams(r *http.Request) (roomID int64, checkIn, checkOut time.Time, ok bool) {
	qs := r.URL.Query()
	roomID, err := strconv.ParseInt(qs.Get("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return 0, time.Time{}, time.Time{}, false
	}
	checkIn, okIn := parseDate(qs.Get("check_in"))
	checkOut, okOut := parseDate(qs.Get("check_out"))
	if !okIn || !okOut {
		return 0, time.Time{}, time.Time{}, false
	}
	return roomID, checkIn, checkOut, true
}

func bookingAction(roomID int64, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("/booking?room_id=%d&check_in=%s&check_out=%s",
		roomID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
}

func (h *Handlers) bookingForm(w http.ResponseWriter, r *http.Request) {
	roomID, checkIn, checkOut, ok := bookingParams(r)
	if !ok {
		toHome(w, r)
		return
	}

	room, err := h.Booking.Room(r.Context(), roomID)
	if errors.Is(err, domain.ErrNotFound) {
		toHome(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("room load failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := bookingPage{
		Room:       room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Form:       app.SubmitInput{Adults: 1},
		FormAction: bookingAction(roomID, checkIn, checkOut),
	}
	quote, err := app.QuoteStay(checkIn, checkOut, room.PricePerNight)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			page.Errors = ve.Violations
		}
	} else {
		page.Nights = quote.Nights
		page.Total = quote.Total
	}
	render(w, bookingTmpl, http.StatusOK, page)
}

func (h *Handlers) bookingSubmit(w http.ResponseWriter, r *http.Request) {
	roomID, checkIn, checkOut, ok := bookingParams(r)
	if !ok {
		toHome(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		toHome(w, r)
		return
	}

	in := app.SubmitInput{
		RoomTypeID:      roomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       r.PostFormValue("guest_name"),
		GuestEmail:      r.PostFormValue("guest_email"),
		GuestPhone:      r.PostFormValue("guest_phone"),
		Adults:          intOr(r.PostFormValue("adults"), 1),
		Children:        intOr(r.PostFormValue("children"), 0),
		SpecialRequests: r.PostFormValue("special_requests"),
	}

	id, err := h.Booking.Submit(r.Context(), in)
	if err == nil {
		observability.ObserveBooking("created")
		// A real redirect: refreshing the confirmation page must never
		// replay this POST.
		http.Redirect(w, r, "/confirmation?booking_id="+strconv.FormatInt(id, 10), http.StatusFound)
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		toHome(w, r)
		return
	}

	room, roomErr := h.Booking.Room(r.Context(), roomID)
	if roomErr != nil {
		toHome(w, r)
		return
	}
	page := bookingPage{
		Room:       room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Form:       in,
		FormAction: bookingAction(roomID, checkIn, checkOut),
	}
	if quote, qerr := app.QuoteStay(checkIn, checkOut, room.PricePerNight); qerr == nil {
		page.Nights = quote.Nights
		page.Total = quote.Total
	}

	if ve, ok := domain.AsValidation(err); ok {
		observability.ObserveBooking("rejected")
		page.Errors = ve.Violations
		render(w, bookingTmpl, http.StatusOK, page)
		return
	}

	// Persistence failure: the transaction already rolled back; show a
	// generic message, never the backend error text.
	observability.ObserveBooking("failed")
	log.Error().Err(err).Int64("room_id", roomID).Msg("booking submit failed")
	page.Errors = []string{genericBookingError}
	render(w, bookingTmpl, http.StatusOK, page)
}

func (h *Handlers) confirmation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("booking_id"), 10, 64)
	if err != nil || id <= 0 {
		toHome(w, r)
		return
	}

	conf, err := h.Booking.Confirmation(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		toHome(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("confirmation load failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, confirmationTmpl, http.StatusOK, conf)
}
