package hermes

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

type priceResponse struct {
	ID    string `json:"id"`
	Price struct {
		Price       string `json:"price"`
		Expo        int32  `json:"expo"`
		PublishTime int64  `json:"publish_time"`
	} `json:"price"`
}

type client struct {
	apiURL     string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
}

// NewClient returns an opaque-id feed client reading prices from a
// hermes-style HTTP endpoint.
func NewClient(apiURL string) (ports.OpaqueFeedClient, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("hermes: missing api url")
	}

	return &client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		cb:         circuitbreaker.NewCircuitBreaker("hermes"),
	}, nil
}

func (c *client) PriceByID(
	ctx context.Context, feedID string,
) (*ports.OpaquePrice, error) {
	url := fmt.Sprintf("%s/v1/price/%s/latest", c.apiURL, feedID)

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
		return nil, err
	}

	var resp priceResponse
	if err := json.Unmarshal(iBody.([]byte), &resp); err != nil {
		return nil, err
	}

	magnitude, err := strconv.ParseInt(resp.Price.Price, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", resp.Price.Price, err)
	}

	return &ports.OpaquePrice{
		Magnitude:   magnitude,
		Exponent:    resp.Price.Expo,
		PublishTime: resp.Price.PublishTime,
	}, nil
}
