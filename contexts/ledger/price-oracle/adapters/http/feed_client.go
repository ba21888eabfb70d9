package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"gemledger/contexts/ledger/price-oracle/ports"
)

// FeedClient reads the exchange rate from an HTTP price-feed endpoint that
// fronts the on-chain aggregator. The endpoint returns the integer rate as a
// decimal string so precision is never lost in float parsing.
type FeedClient struct {
	BaseURL string
	Client  *http.Client
}

type feedResponse struct {
	Rate      string `json:"rate"`
	Precision uint8  `json:"precision"`
}

func NewFeedClient(baseURL string) *FeedClient {
	return &FeedClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *FeedClient) LatestPrice(ctx context.Context) (ports.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("build price feed request: %w", err)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("read price feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Quote{}, fmt.Errorf("price feed returned status %d", resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Quote{}, fmt.Errorf("decode price feed response: %w", err)
	}

	rate, ok := new(big.Int).SetString(body.Rate, 10)
	if !ok {
		return ports.Quote{}, fmt.Errorf("price feed returned malformed rate %q", body.Rate)
	}
	return ports.Quote{Rate: rate, Precision: body.Precision}, nil
}
