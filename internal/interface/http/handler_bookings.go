package http

import (
	"net/http"
	"strconv"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/usecase"

	"github.com/labstack/echo/v4"
)

type bookingRequest struct {
	FlightID      uint   `json:"flight_id" form:"flight_id"`
	PassengerName string `json:"passenger_name" form:"passenger_name"`
	FamilyName    string `json:"family_name" form:"family_name"`
	Gender        string `json:"gender" form:"gender"`
	DOB           string `json:"dob" form:"dob"`
}

type bookingUpdateRequest struct {
	PassengerName string `json:"passenger_name" form:"passenger_name"`
	FamilyName    string `json:"family_name" form:"family_name"`
}

type bookingResponse struct {
	BookingID       uint   `json:"booking_id"`
	FlightID        uint   `json:"flight_id"`
	FlightNo        string `json:"flight_no,omitempty"`
	Airline         string `json:"airline,omitempty"`
	PassengerName   string `json:"passenger_name"`
	FamilyName      string `json:"family_name"`
	Gender          string `json:"gender"`
	DOB             string `json:"dob"`
	Status          string `json:"status"`
	DepartTime      string `json:"depart_time,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"`
	OriginCity      string `json:"origin_city,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
}

func toBookingResponse(b entity.BookingDetail) bookingResponse {
	return bookingResponse{
		BookingID:       b.BookingID,
		FlightID:        b.FlightID,
		FlightNo:        b.FlightNo,
		Airline:         b.Airline,
		PassengerName:   b.PassengerName,
		FamilyName:      b.FamilyName,
		Gender:          b.Gender,
		DOB:             b.DOB.Format("2006-01-02"),
		Status:          b.Status,
		DepartTime:      b.DepartTime,
		DepartureDate:   b.DepartureDate.Format("2006-01-02"),
		OriginCity:      b.OriginCity,
		DestinationCity: b.DestinationCity,
	}
}

func bookingID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "booking id must be numeric")
	}
	return uint(id), nil
}

// PostBooking books a flight for the authenticated user on their
// home shard.
func (h *Handler) PostBooking(c echo.Context) error {
	sess := currentSession(c)

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	booking, err := h.bookings.Book(c.Request().Context(), sess, usecase.BookingInput{
		FlightID:      req.FlightID,
		PassengerName: req.PassengerName,
		FamilyName:    req.FamilyName,
		Gender:        req.Gender,
		DOB:           req.DOB,
	})
	if err != nil {
		return h.httpError(c, "book_flight", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"booking_id": booking.BookingID,
		"flight_id":  booking.FlightID,
		"status":     booking.Status,
	})
}

// GetBookings lists the authenticated user's live bookings.
func (h *Handler) GetBookings(c echo.Context) error {
	sess := currentSession(c)

	details, err := h.bookings.List(c.Request().Context(), sess)
	if err != nil {
		return h.httpError(c, "list_bookings", err)
	}

	bookings := make([]bookingResponse, 0, len(details))
	for _, b := range details {
		bookings = append(bookings, toBookingResponse(b))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"bookings": bookings})
}

// GetBookingByID returns one booking owned by the authenticated user.
func (h *Handler) GetBookingByID(c echo.Context) error {
	sess := currentSession(c)

	id, err := bookingID(c)
	if err != nil {
		return err
	}

	detail, err := h.bookings.Get(c.Request().Context(), sess, id)
	if err != nil {
		return h.httpError(c, "get_booking", err)
	}
	return c.JSON(http.StatusOK, toBookingResponse(*detail))
}

// PutBooking updates passenger names. The ownership filter runs
// server-side; guessing another user's booking id yields 404.
func (h *Handler) PutBooking(c echo.Context) error {
	sess := currentSession(c)

	id, err := bookingID(c)
	if err != nil {
		return err
	}

	var req bookingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	if err := h.bookings.Update(c.Request().Context(), sess, id, req.PassengerName, req.FamilyName); err != nil {
		return h.httpError(c, "update_booking", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PostCancelBooking soft-cancels a booking owned by the
// authenticated user.
func (h *Handler) PostCancelBooking(c echo.Context) error {
	sess := currentSession(c)

	id, err := bookingID(c)
	if err != nil {
		return err
	}

	if err := h.bookings.Cancel(c.Request().Context(), sess, id); err != nil {
		return h.httpError(c, "cancel_booking", err)
	}
	return c.NoContent(http.StatusNoContent)
}
