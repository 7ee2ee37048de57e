package http

import (
	"net/http"
	"strconv"

	"offbeat-travels/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type flightResponse struct {
	ID              uint     `json:"id"`
	FlightNo        string   `json:"flight_no"`
	Airline         string   `json:"airline"`
	OriginCode      string   `json:"origin_code"`
	OriginCity      string   `json:"origin_city"`
	DestinationCode string   `json:"destination_code"`
	DestinationCity string   `json:"destination_city"`
	DepartTime      string   `json:"depart_time"`
	ArrivalTime     string   `json:"arrival_time"`
	Duration        string   `json:"duration"`
	DepartureDate   string   `json:"departure_date"`
	EconomyFare     *float64 `json:"economy_fare"`
	BusinessFare    *float64 `json:"business_fare"`
	FirstFare       *float64 `json:"first_fare"`
}

func toFlightResponse(f entity.FlightDetail) flightResponse {
	return flightResponse{
		ID:              f.ID,
		FlightNo:        f.FlightNo,
		Airline:         f.Airline,
		OriginCode:      f.OriginCode,
		OriginCity:      f.OriginCity,
		DestinationCode: f.DestinationCode,
		DestinationCity: f.DestinationCity,
		DepartTime:      f.DepartTime,
		ArrivalTime:     f.ArrivalTime,
		Duration:        f.Duration,
		DepartureDate:   f.DepartureDate.Format("2006-01-02"),
		EconomyFare:     f.EconomyFare,
		BusinessFare:    f.BusinessFare,
		FirstFare:       f.FirstFare,
	}
}

// GetFlightSearch searches the replicated flight catalog on the
// caller's home shard. The optional class parameter is echoed back;
// fare choice happens client-side.
func (h *Handler) GetFlightSearch(c echo.Context) error {
	sess := currentSession(c)

	results, err := h.flights.Search(c.Request().Context(), sess,
		c.QueryParam("from"), c.QueryParam("to"), c.QueryParam("departure_date"))
	if err != nil {
		return h.httpError(c, "search_flights", err)
	}

	flights := make([]flightResponse, 0, len(results))
	for _, f := range results {
		flights = append(flights, toFlightResponse(f))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"flights": flights,
		"class":   c.QueryParam("class"),
	})
}

// GetFlight returns one flight, backing the booking form.
func (h *Handler) GetFlight(c echo.Context) error {
	sess := currentSession(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "flight id must be numeric")
	}

	flight, err := h.flights.GetFlight(c.Request().Context(), sess, uint(id))
	if err != nil {
		return h.httpError(c, "get_flight", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":             flight.ID,
		"flight_no":      flight.FlightNo,
		"airline":        flight.Airline,
		"depart_time":    flight.DepartTime,
		"arrival_time":   flight.ArrivalTime,
		"duration":       flight.Duration,
		"departure_date": flight.DepartureDate.Format("2006-01-02"),
		"economy_fare":   flight.EconomyFare,
		"business_fare":  flight.BusinessFare,
		"first_fare":     flight.FirstFare,
	})
}

// GetPlaces lists all airport codes (home page dropdown data).
func (h *Handler) GetPlaces(c echo.Context) error {
	codes, err := h.flights.ListAirportCodes(c.Request().Context())
	if err != nil {
		return h.httpError(c, "list_places", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"codes": codes})
}
