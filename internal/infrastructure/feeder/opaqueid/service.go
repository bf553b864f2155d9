package opaqueidfeeder

import (
	"context"
	"fmt"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
)

const sourceName = "opaqueid"

type service struct {
	client ports.OpaqueFeedClient
}

// NewService returns a price source reading from a provider addressed by
// fixed-length opaque byte identifiers, reporting magnitude and exponent
// directly.
func NewService(client ports.OpaqueFeedClient) ports.PriceSource {
	return &service{client}
}

func (s *service) Name() string {
	return sourceName
}

func (s *service) FetchQuote(
	ctx context.Context, feedID string,
) (domain.RawQuote, error) {
	price, err := s.client.PriceByID(ctx, feedID)
	if err != nil {
		// propagate the provider failure, never swallow it
		return domain.RawQuote{}, fmt.Errorf(
			"%w: %s", ports.ErrNoPriceAvailable, err,
		)
	}

	return domain.RawQuote{
		Magnitude: price.Magnitude,
		Exponent:  price.Exponent,
	}, nil
}
