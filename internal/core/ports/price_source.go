package ports

import (
	"context"
	"errors"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
)

var (
	// ErrStaleOrMissingAnswer is returned by aggregator-style sources when
	// the provider reports a non-positive sentinel answer for the latest
	// round.
	ErrStaleOrMissingAnswer = errors.New("aggregator reported no valid answer")
	// ErrNoPriceAvailable is returned by opaque-id-style sources when the
	// provider fails or reports no price for the identifier.
	ErrNoPriceAvailable = errors.New("no price available for feed identifier")
)

// PriceSource is the contract every provider-specific fetcher implements.
// The adapter service is generic over it and never branches on the provider
// identity itself.
type PriceSource interface {
	// Name returns the provider shape identifier, e.g. "aggregator".
	Name() string
	// FetchQuote reads the latest quote for the given feed identifier from
	// the upstream provider. It never caches.
	FetchQuote(ctx context.Context, feedID string) (domain.RawQuote, error)
}

// AggregatorRound is the latest-round payload of an aggregator-style
// provider.
type AggregatorRound struct {
	RoundID   uint64
	Answer    int64
	UpdatedAt int64
}

// AggregatorClient is the boundary to an aggregator-style feed provider,
// addressed by contract-like feed addresses.
type AggregatorClient interface {
	LatestRoundData(ctx context.Context, feedID string) (*AggregatorRound, error)
	// Decimals returns the provider's current decimal count for the feed.
	// Providers may change precision over time, so callers must read it on
	// every quote, never cache it.
	Decimals(ctx context.Context, feedID string) (uint8, error)
}

// OpaquePrice is the price payload of an opaque-id-style feed provider.
type OpaquePrice struct {
	Magnitude   int64
	Exponent    int32
	PublishTime int64
}

// OpaqueFeedClient is the boundary to a feed provider addressed by
// fixed-length opaque byte identifiers.
type OpaqueFeedClient interface {
	PriceByID(ctx context.Context, feedID string) (*OpaquePrice, error)
}
