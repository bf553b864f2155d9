package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
)

// **** PriceSource ****

type mockPriceSource struct {
	mock.Mock
}

func (m *mockPriceSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockPriceSource) FetchQuote(
	ctx context.Context, feedID string,
) (domain.RawQuote, error) {
	args := m.Called(ctx, feedID)

	var res domain.RawQuote
	if a := args.Get(0); a != nil {
		res = a.(domain.RawQuote)
	}
	return res, args.Error(1)
}
