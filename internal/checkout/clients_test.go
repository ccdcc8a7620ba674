package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateServer(t *testing.T, status int, quotes []FreightQuote) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rates", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		var rr RateRequest
		if err := json.NewDecoder(r.Body).Decode(&rr); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if status != http.StatusOK {
			http.Error(w, `{"error":"rating failed"}`, status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"quotes": quotes})
	})
	return httptest.NewServer(mux)
}

func TestRateClient_FetchQuotes(t *testing.T) {
	want := []FreightQuote{
		quote("15.50"),
		{ServiceCode: "2DA", ServiceName: "2nd Day Air", TotalCharges: dec("41.00"), CustomerRate: dec("37.80"), TransitDays: 2},
	}
	srv := newRateServer(t, http.StatusOK, want)
	defer srv.Close()

	c := NewRateClient(srv.URL + "/")
	got, err := c.FetchQuotes(context.Background(), RateRequest{
		DestinationZip: "30301",
		Items:          cartWith(t, "25.00").Items(),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "GND", got[0].ServiceCode)
	assert.True(t, got[1].CustomerRate.Equal(dec("37.80")))
}

func TestRateClient_NonOKStatus(t *testing.T) {
	srv := newRateServer(t, http.StatusBadGateway, nil)
	defer srv.Close()

	c := NewRateClient(srv.URL)
	_, err := c.FetchQuotes(context.Background(), RateRequest{DestinationZip: "30301"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate service error")
}
