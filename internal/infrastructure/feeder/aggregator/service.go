package aggregatorfeeder

import (
	"context"
	"fmt"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
)

const sourceName = "aggregator"

type service struct {
	client ports.AggregatorClient
}

// NewService returns a price source reading from an aggregator-style
// provider: a latest-round accessor plus a per-feed decimal count.
func NewService(client ports.AggregatorClient) ports.PriceSource {
	return &service{client}
}

func (s *service) Name() string {
	return sourceName
}

func (s *service) FetchQuote(
	ctx context.Context, feedID string,
) (domain.RawQuote, error) {
	round, err := s.client.LatestRoundData(ctx, feedID)
	if err != nil {
		return domain.RawQuote{}, fmt.Errorf("fetching latest round: %w", err)
	}
	// providers report non-positive sentinel answers when no valid round
	// exists
	if round.Answer <= 0 {
		return domain.RawQuote{}, ports.ErrStaleOrMissingAnswer
	}

	// decimal counts may change on the provider side, read on every call
	decimals, err := s.client.Decimals(ctx, feedID)
	if err != nil {
		return domain.RawQuote{}, fmt.Errorf("fetching feed decimals: %w", err)
	}

	return domain.RawQuote{
		Magnitude: round.Answer,
		Exponent:  -int32(decimals),
	}, nil
}
