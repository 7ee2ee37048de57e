package entity

// Place is an airport. The place catalog is replicated in full on
// both shards, so any shard can resolve a code.
type Place struct {
	ID      uint
	City    string
	Airport string
	Code    string // IATA code, 3 characters, unique
	Country string
}
