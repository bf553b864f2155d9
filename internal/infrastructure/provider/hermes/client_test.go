package hermes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testFeedID = "ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"

func TestPriceByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(
				t, fmt.Sprintf("/v1/price/%s/latest", testFeedID), r.URL.Path,
			)
			fmt.Fprintf(
				w,
				`{"id":"%s","price":{"price":"1500000","expo":-6,"publish_time":1693380000}}`,
				testFeedID,
			)
		},
	))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	price, err := client.PriceByID(context.Background(), testFeedID)
	require.NoError(t, err)
	require.Equal(t, int64(1500000), price.Magnitude)
	require.Equal(t, int32(-6), price.Exponent)
	require.Equal(t, int64(1693380000), price.PublishTime)
}

func TestPriceByIDUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "price feed not found", http.StatusNotFound)
		},
	))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.PriceByID(context.Background(), testFeedID)
	require.Error(t, err)
}

func TestNewClientMissingURL(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
}
