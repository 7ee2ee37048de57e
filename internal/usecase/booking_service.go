package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"
	"offbeat-travels/pkg/metrics"
)

// BookingInput carries the passenger details for a new booking.
type BookingInput struct {
	FlightID      uint
	PassengerName string
	FamilyName    string
	Gender        string
	DOB           string // YYYY-MM-DD
}

// BookingService handles the booking lifecycle. Every operation runs
// on the session's home shard, and update/cancel filter by the
// session's user id regardless of what ids the client supplies.
type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	log logger.Logger,
	m *metrics.Metrics,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		logger:   log,
		metrics:  m,
	}
}

func validGender(g string) bool {
	return g == entity.GenderMale || g == entity.GenderFemale || g == entity.GenderOther
}

// Book creates a booking for the session's user. The flight must
// exist on the user's home shard (the catalog is replicated, so a
// missing flight means the id is simply wrong).
func (s *BookingService) Book(ctx context.Context, sess *session.Session, input BookingInput) (*entity.Booking, error) {
	if input.PassengerName == "" || input.FamilyName == "" || input.Gender == "" || input.DOB == "" {
		return nil, fmt.Errorf("all passenger fields are required: %w", apperrors.ErrValidation)
	}
	if !validGender(input.Gender) {
		return nil, fmt.Errorf("gender must be male, female or other: %w", apperrors.ErrValidation)
	}
	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		return nil, fmt.Errorf("dob must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}

	s.metrics.ObserveShardOp(sess.Shard.String(), "book_flight")

	if _, err := s.flights.GetByID(ctx, sess.Shard, input.FlightID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("flight %d: %w", input.FlightID, apperrors.ErrNotFound)
		}
		s.metrics.ObserveError("book_flight")
		return nil, err
	}

	booking := &entity.Booking{
		UserID:        sess.UserID,
		FlightID:      input.FlightID,
		PassengerName: input.PassengerName,
		FamilyName:    input.FamilyName,
		Gender:        input.Gender,
		DOB:           dob,
	}
	if err := s.bookings.Create(ctx, sess.Shard, booking); err != nil {
		s.metrics.ObserveError("book_flight")
		return nil, err
	}

	s.metrics.IncBookingCreated()
	s.logger.Info("Booking created", "username", sess.Username, "shard", sess.Shard.String(),
		"booking_id", booking.BookingID, "flight_id", booking.FlightID)
	return booking, nil
}

// List returns the session user's live bookings.
func (s *BookingService) List(ctx context.Context, sess *session.Session) ([]entity.BookingDetail, error) {
	s.metrics.ObserveShardOp(sess.Shard.String(), "list_bookings")
	return s.bookings.ListByUser(ctx, sess.Shard, sess.UserID)
}

// Get returns one of the session user's bookings. Someone else's
// booking id reads as not found.
func (s *BookingService) Get(ctx context.Context, sess *session.Session, bookingID uint) (*entity.BookingDetail, error) {
	s.metrics.ObserveShardOp(sess.Shard.String(), "get_booking")
	return s.bookings.GetByID(ctx, sess.Shard, bookingID, sess.UserID)
}

// Update changes the passenger names on a booking the session user
// owns.
func (s *BookingService) Update(ctx context.Context, sess *session.Session, bookingID uint, passengerName, familyName string) error {
	if passengerName == "" || familyName == "" {
		return fmt.Errorf("passenger_name and family_name are required: %w", apperrors.ErrValidation)
	}

	s.metrics.ObserveShardOp(sess.Shard.String(), "update_booking")
	if err := s.bookings.UpdatePassenger(ctx, sess.Shard, bookingID, sess.UserID, passengerName, familyName); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.ObserveError("update_booking")
		}
		return err
	}

	s.logger.Info("Booking updated", "username", sess.Username, "shard", sess.Shard.String(), "booking_id", bookingID)
	return nil
}

// Cancel soft-cancels a booking the session user owns; the row is
// kept with status canceled.
func (s *BookingService) Cancel(ctx context.Context, sess *session.Session, bookingID uint) error {
	s.metrics.ObserveShardOp(sess.Shard.String(), "cancel_booking")
	if err := s.bookings.Cancel(ctx, sess.Shard, bookingID, sess.UserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.ObserveError("cancel_booking")
		}
		return err
	}

	s.metrics.IncBookingCanceled()
	s.logger.Info("Booking canceled", "username", sess.Username, "shard", sess.Shard.String(), "booking_id", bookingID)
	return nil
}
