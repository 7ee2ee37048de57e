package usecase

import (
	"context"
	"testing"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlights() *fakeFlightRepo {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fare := 420.0
	return &fakeFlightRepo{flights: []entity.FlightDetail{
		{
			Flight: entity.Flight{
				ID: 1, FlightNo: "AI101", Airline: "Air India",
				DepartureDate: date, EconomyFare: &fare,
			},
			OriginCode: "DEL", OriginCity: "New Delhi",
			DestinationCode: "JFK", DestinationCity: "New York",
		},
	}}
}

func sessionFor(username string, userID uint) *session.Session {
	return &session.Session{
		Token:     "tok-" + username,
		UserID:    userID,
		Username:  username,
		Shard:     sharding.Route(username),
		ExpiresAt: time.Now().Add(time.Minute),
	}
}

func validInput() BookingInput {
	return BookingInput{
		FlightID:      1,
		PassengerName: "Alice",
		FamilyName:    "Smith",
		Gender:        entity.GenderFemale,
		DOB:           "1990-06-15",
	}
}

func TestBookThenCancelNotListed(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, testFlights(), logger.NewNop(), nil)
	sess := sessionFor("alice", 1)
	ctx := context.Background()

	booking, err := svc.Book(ctx, sess, validInput())
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusBooked, booking.Status)

	listed, err := svc.List(ctx, sess)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.Cancel(ctx, sess, booking.BookingID))

	listed, err = svc.List(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The row survives as canceled rather than being deleted.
	row := bookings.bookings[sess.Shard][booking.BookingID]
	require.NotNil(t, row)
	assert.Equal(t, entity.BookingStatusCanceled, row.Status)
}

func TestCancelTwice(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), testFlights(), logger.NewNop(), nil)
	sess := sessionFor("alice", 1)
	ctx := context.Background()

	booking, err := svc.Book(ctx, sess, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, sess, booking.BookingID))
	err = svc.Cancel(ctx, sess, booking.BookingID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateByDifferentUserRejected(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, testFlights(), logger.NewNop(), nil)
	ctx := context.Background()

	owner := sessionFor("alice", 1)
	booking, err := svc.Book(ctx, owner, validInput())
	require.NoError(t, err)

	// Same shard, different user: a guessed id must not mutate the
	// row.
	intruder := &session.Session{
		UserID: 2, Username: "intruder", Shard: owner.Shard,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	err = svc.Update(ctx, intruder, booking.BookingID, "Mallory", "Mallet")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	row := bookings.bookings[owner.Shard][booking.BookingID]
	assert.Equal(t, "Alice", row.PassengerName)

	// The owner can update it.
	require.NoError(t, svc.Update(ctx, owner, booking.BookingID, "Alicia", "Smith"))
	assert.Equal(t, "Alicia", row.PassengerName)
}

func TestGetByDifferentUserNotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), testFlights(), logger.NewNop(), nil)
	ctx := context.Background()

	owner := sessionFor("alice", 1)
	booking, err := svc.Book(ctx, owner, validInput())
	require.NoError(t, err)

	intruder := &session.Session{UserID: 2, Username: "intruder", Shard: owner.Shard}
	_, err = svc.Get(ctx, intruder, booking.BookingID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookValidation(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), testFlights(), logger.NewNop(), nil)
	sess := sessionFor("alice", 1)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*BookingInput)
	}{
		{"missing passenger name", func(in *BookingInput) { in.PassengerName = "" }},
		{"missing family name", func(in *BookingInput) { in.FamilyName = "" }},
		{"missing gender", func(in *BookingInput) { in.Gender = "" }},
		{"bad gender", func(in *BookingInput) { in.Gender = "unknown" }},
		{"missing dob", func(in *BookingInput) { in.DOB = "" }},
		{"bad dob", func(in *BookingInput) { in.DOB = "15/06/1990" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Book(ctx, sess, input)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestBookUnknownFlight(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), testFlights(), logger.NewNop(), nil)
	sess := sessionFor("alice", 1)

	input := validInput()
	input.FlightID = 99
	_, err := svc.Book(context.Background(), sess, input)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFailedBookingRetryLeavesOneRow(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.failCreates = 1
	svc := NewBookingService(bookings, testFlights(), logger.NewNop(), nil)
	sess := sessionFor("alice", 1)
	ctx := context.Background()

	// First attempt fails and rolls back; nothing is stored.
	_, err := svc.Book(ctx, sess, validInput())
	require.ErrorIs(t, err, apperrors.ErrTransaction)
	assert.Empty(t, bookings.bookings[sess.Shard])

	// The resubmission succeeds with exactly one committed row.
	_, err = svc.Book(ctx, sess, validInput())
	require.NoError(t, err)
	assert.Len(t, bookings.bookings[sess.Shard], 1)
}

func TestBookingsAreShardLocal(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, testFlights(), logger.NewNop(), nil)
	ctx := context.Background()

	// alice routes to shard0, bob to shard1.
	alice := sessionFor("alice", 1)
	bob := sessionFor("bob", 2)
	require.NotEqual(t, alice.Shard, bob.Shard)

	_, err := svc.Book(ctx, alice, validInput())
	require.NoError(t, err)

	// bob's list hits his own shard and sees nothing.
	listed, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Empty(t, bookings.bookings[bob.Shard])
	assert.Len(t, bookings.bookings[alice.Shard], 1)
}
