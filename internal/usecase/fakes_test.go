package usecase

import (
	"context"
	"fmt"
	"sync"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"
)

// In-memory repositories keyed by shard, mirroring the two physical
// databases. They enforce the same visibility rules as the real gorm
// implementations: a row written to one shard is invisible on the
// other.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[sharding.ShardID]map[string]*entity.User
	nextID uint

	// failWith, when set, is returned by every call; used to
	// simulate an unreachable shard.
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[sharding.ShardID]map[string]*entity.User{
			sharding.Shard0: {},
			sharding.Shard1: {},
		},
	}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, shard sharding.ShardID, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[shard][username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, shard sharding.ShardID, id uint) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, user := range f.users[shard] {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeUserRepo) Create(_ context.Context, shard sharding.ShardID, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, exists := f.users[shard][user.Username]; exists {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrConflict)
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[shard][user.Username] = &copied
	return nil
}

type fakeFlightRepo struct {
	flights []entity.FlightDetail
}

func (f *fakeFlightRepo) Search(_ context.Context, _ sharding.ShardID, criteria repository.FlightSearch) ([]entity.FlightDetail, error) {
	var out []entity.FlightDetail
	for _, fl := range f.flights {
		sameDate := fl.DepartureDate.Format("2006-01-02") == criteria.DepartureDate.Format("2006-01-02")
		if fl.OriginCode == criteria.OriginCode && fl.DestinationCode == criteria.DestinationCode && sameDate {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFlightRepo) GetByID(_ context.Context, _ sharding.ShardID, id uint) (*entity.Flight, error) {
	for _, fl := range f.flights {
		if fl.ID == id {
			flight := fl.Flight
			return &flight, nil
		}
	}
	return nil, fmt.Errorf("flight %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeFlightRepo) Create(_ context.Context, _ sharding.ShardID, flight *entity.Flight) error {
	flight.ID = uint(len(f.flights) + 1)
	f.flights = append(f.flights, entity.FlightDetail{Flight: *flight})
	return nil
}

type fakePlaceRepo struct {
	codes []string
}

func (f *fakePlaceRepo) ListCodes(_ context.Context, _ sharding.ShardID) ([]string, error) {
	return f.codes, nil
}

func (f *fakePlaceRepo) GetByCode(_ context.Context, _ sharding.ShardID, code string) (*entity.Place, error) {
	for i, c := range f.codes {
		if c == code {
			return &entity.Place{ID: uint(i + 1), Code: c}, nil
		}
	}
	return nil, fmt.Errorf("place %q: %w", code, apperrors.ErrNotFound)
}

func (f *fakePlaceRepo) Upsert(_ context.Context, _ sharding.ShardID, place *entity.Place) error {
	f.codes = append(f.codes, place.Code)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[sharding.ShardID]map[uint]*entity.Booking
	nextID   uint

	// failCreates makes the next N Create calls fail as a rolled
	// back transaction.
	failCreates int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[sharding.ShardID]map[uint]*entity.Booking{
			sharding.Shard0: {},
			sharding.Shard1: {},
		},
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, shard sharding.ShardID, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreates > 0 {
		f.failCreates--
		return fmt.Errorf("create booking: %w", apperrors.ErrTransaction)
	}
	f.nextID++
	booking.BookingID = f.nextID
	booking.Status = entity.BookingStatusBooked
	copied := *booking
	f.bookings[shard][booking.BookingID] = &copied
	return nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, shard sharding.ShardID, userID uint) ([]entity.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.BookingDetail
	for _, b := range f.bookings[shard] {
		if b.UserID == userID && b.Status == entity.BookingStatusBooked {
			out = append(out, entity.BookingDetail{Booking: *b})
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, shard sharding.ShardID, bookingID, userID uint) (*entity.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[shard][bookingID]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("booking %d: %w", bookingID, apperrors.ErrNotFound)
	}
	return &entity.BookingDetail{Booking: *b}, nil
}

func (f *fakeBookingRepo) UpdatePassenger(_ context.Context, shard sharding.ShardID, bookingID, userID uint, passengerName, familyName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[shard][bookingID]
	if !ok || b.UserID != userID {
		return fmt.Errorf("booking %d: %w", bookingID, apperrors.ErrNotFound)
	}
	b.PassengerName = passengerName
	b.FamilyName = familyName
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, shard sharding.ShardID, bookingID, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[shard][bookingID]
	if !ok || b.UserID != userID || b.Status != entity.BookingStatusBooked {
		return fmt.Errorf("booking %d: %w", bookingID, apperrors.ErrNotFound)
	}
	b.Status = entity.BookingStatusCanceled
	return nil
}
