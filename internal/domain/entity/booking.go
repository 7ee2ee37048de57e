package entity

import "time"

// Booking lifecycle status. Cancellation flips the status and keeps
// the row, so booking history survives.
const (
	BookingStatusBooked   = "booked"
	BookingStatusCanceled = "canceled"
)

// Passenger gender values accepted by the booking form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Booking is a user_booking row. It lives exclusively on the owning
// user's home shard and is never replicated or joined across shards.
type Booking struct {
	BookingID     uint
	UserID        uint
	FlightID      uint
	PassengerName string
	FamilyName    string
	Gender        string
	DOB           time.Time
	Status        string
}

// BookingDetail is a booking joined with its flight and the flight's
// origin/destination cities. Single-shard join only.
type BookingDetail struct {
	Booking
	FlightNo        string
	Airline         string
	DepartTime      string
	DepartureDate   time.Time
	OriginCity      string
	DestinationCity string
}
