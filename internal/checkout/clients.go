package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RateRequest describes the shipment to price.
type RateRequest struct {
	DestinationZip string     `json:"destination_zip"`
	Residential    bool       `json:"residential,omitempty"`
	Items          []CartItem `json:"items"`
}

// RateClient talks to the external freight-rate service. Rate computation is
// entirely the service's business; this client only carries the shipment over
// and the quotes back.
type RateClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewRateClient(baseURL string) *RateClient {
	return &RateClient{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *RateClient) FetchQuotes(ctx context.Context, rr RateRequest) ([]FreightQuote, error) {
	body, _ := json.Marshal(rr)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/rates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate service error: %s", res.Status)
	}

	var out struct {
		Quotes []FreightQuote `json:"quotes"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Quotes, nil
}
