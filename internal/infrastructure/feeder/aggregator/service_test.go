package aggregatorfeeder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
)

const testFeedID = "0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"

type mockAggregatorClient struct {
	mock.Mock
}

func (m *mockAggregatorClient) LatestRoundData(
	ctx context.Context, feedID string,
) (*ports.AggregatorRound, error) {
	args := m.Called(ctx, feedID)

	var res *ports.AggregatorRound
	if a := args.Get(0); a != nil {
		res = a.(*ports.AggregatorRound)
	}
	return res, args.Error(1)
}

func (m *mockAggregatorClient) Decimals(
	ctx context.Context, feedID string,
) (uint8, error) {
	args := m.Called(ctx, feedID)
	return args.Get(0).(uint8), args.Error(1)
}

func TestFetchQuote(t *testing.T) {
	ctx := context.Background()

	client := &mockAggregatorClient{}
	client.On("LatestRoundData", ctx, testFeedID).Return(
		&ports.AggregatorRound{RoundID: 10, Answer: 150000000}, nil,
	)
	client.On("Decimals", ctx, testFeedID).Return(uint8(8), nil)

	svc := NewService(client)
	quote, err := svc.FetchQuote(ctx, testFeedID)
	require.NoError(t, err)
	require.Equal(t, int64(150000000), quote.Magnitude)
	require.Equal(t, int32(-8), quote.Exponent)
}

func TestFetchQuoteReadsDecimalsOnEveryCall(t *testing.T) {
	ctx := context.Background()

	client := &mockAggregatorClient{}
	client.On("LatestRoundData", ctx, testFeedID).Return(
		&ports.AggregatorRound{RoundID: 10, Answer: 42}, nil,
	)
	client.On("Decimals", ctx, testFeedID).Return(uint8(6), nil)

	svc := NewService(client)
	for i := 0; i < 3; i++ {
		_, err := svc.FetchQuote(ctx, testFeedID)
		require.NoError(t, err)
	}

	client.AssertNumberOfCalls(t, "Decimals", 3)
}

func TestFetchQuoteNonPositiveAnswer(t *testing.T) {
	ctx := context.Background()

	for _, answer := range []int64{0, -1} {
		client := &mockAggregatorClient{}
		client.On("LatestRoundData", ctx, testFeedID).Return(
			&ports.AggregatorRound{RoundID: 10, Answer: answer}, nil,
		)

		svc := NewService(client)
		_, err := svc.FetchQuote(ctx, testFeedID)
		require.ErrorIs(t, err, ports.ErrStaleOrMissingAnswer)
		client.AssertNotCalled(t, "Decimals", ctx, testFeedID)
	}
}

func TestFetchQuoteProviderFailure(t *testing.T) {
	ctx := context.Background()
	providerErr := errors.New("provider unreachable")

	client := &mockAggregatorClient{}
	client.On("LatestRoundData", ctx, testFeedID).Return(nil, providerErr)

	svc := NewService(client)
	_, err := svc.FetchQuote(ctx, testFeedID)
	require.ErrorIs(t, err, providerErr)
}
