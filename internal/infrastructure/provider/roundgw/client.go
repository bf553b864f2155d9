package roundgw

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
	"github.com/oraclefeed-network/oraclefeed-daemon/pkg/circuitbreaker"
)

const requestTimeout = 15 * time.Second

type latestRoundResponse struct {
	RoundID   uint64 `json:"roundId"`
	Answer    string `json:"answer"`
	UpdatedAt int64  `json:"updatedAt"`
}

type decimalsResponse struct {
	Decimals uint8 `json:"decimals"`
}

type client struct {
	apiURL     string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
}

// NewClient returns an aggregator client reading rounds from an
// aggregator-gateway HTTP endpoint.
func NewClient(apiURL string) (ports.AggregatorClient, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("roundgw: missing api url")
	}

	return &client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		cb:         circuitbreaker.NewCircuitBreaker("roundgw"),
	}, nil
}

func (c *client) LatestRoundData(
	ctx context.Context, feedID string,
) (*ports.AggregatorRound, error) {
	url := fmt.Sprintf("%s/feeds/%s/latest-round", c.apiURL, feedID)

	var resp latestRoundResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	// answers travel as strings, an out-of-range value is a provider fault
	answer, err := strconv.ParseInt(resp.Answer, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing round answer %q: %w", resp.Answer, err)
	}

	return &ports.AggregatorRound{
		RoundID:   resp.RoundID,
		Answer:    answer,
		UpdatedAt: resp.UpdatedAt,
	}, nil
}

func (c *client) Decimals(ctx context.Context, feedID string) (uint8, error) {
	url := fmt.Sprintf("%s/feeds/%s/decimals", c.apiURL, feedID)

	var resp decimalsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return 0, err
	}

	return resp.Decimals, nil
}

func (c *client) getJSON(
	ctx context.Context, url string, dest interface{},
) error {
	iBody, err := c.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		body, err := ioutil.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", res.Status, string(body))
		}
		return body, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(iBody.([]byte), dest)
}
