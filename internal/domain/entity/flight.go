package entity

import "time"

// Flight is one scheduled flight. Like Place, flights are replicated
// identically on both shards; searches run on the caller's home shard
// purely by convention.
type Flight struct {
	ID            uint
	OriginID      uint
	DestinationID uint
	DepartTime    string // HH:MM:SS
	Duration      string
	ArrivalTime   string
	FlightNo      string
	Airline       string
	EconomyFare   *float64
	BusinessFare  *float64
	FirstFare     *float64
	DepartureDate time.Time // date component only
}

// FlightDetail is a flight joined with its origin and destination
// places, as returned by search.
type FlightDetail struct {
	Flight
	OriginCode      string
	OriginCity      string
	DestinationCode string
	DestinationCity string
}
