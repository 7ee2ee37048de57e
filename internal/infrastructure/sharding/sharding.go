package sharding

// ShardID identifies one of the two relational shards. It is resolved
// once per request by Route and passed explicitly through the call
// chain; nothing below the handler layer re-derives it.
type ShardID int

const (
	Shard0 ShardID = iota
	Shard1

	// Count is the number of physical shards. The split is static;
	// there is no rebalancing or replication between shards.
	Count = 2
)

// String returns the deployment name of the shard.
func (s ShardID) String() string {
	switch s {
	case Shard0:
		return "shard0"
	case Shard1:
		return "shard1"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a real shard.
func (s ShardID) Valid() bool {
	return s >= 0 && s < Count
}

// Route maps an identity string (username) to its home shard.
//
// The hash is h = h*31 + codepoint for each rune, computed in int32 so
// that overflow wraps as two's-complement. The width matters: a wider
// or unbounded integer type produces a different shard for any
// username whose hash crosses the 32-bit boundary, which would strand
// existing rows on the wrong shard.
//
// Total over all strings; Route("") is Shard0.
func Route(identity string) ShardID {
	var h int32
	for _, r := range identity {
		h = h*31 + int32(r)
	}
	// Go's % keeps the dividend's sign, so negating a negative
	// remainder equals abs(h) % 2 for every int32, MinInt32 included.
	idx := h % Count
	if idx < 0 {
		idx = -idx
	}
	return ShardID(idx)
}
