package pricing

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/potlock/indexer/internal/adapter"
)

// historyDateLayout is the dd-mm-yyyy layout of the coingecko history endpoint.
const historyDateLayout = "02-01-2006"

// historyResponse is the subset of the coingecko history payload we read.
type historyResponse struct {
	MarketData *struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
	} `json:"market_data"`
}

// CoingeckoClient implements PriceLookup against the coingecko REST API.
type CoingeckoClient struct {
	baseURL string
	http    adapter.HTTPClient
}

// NewCoingeckoClient creates a coingecko-backed price lookup. The HTTP client
// carries the bounded timeout and rate-limit backoff.
func NewCoingeckoClient(baseURL string, httpClient adapter.HTTPClient) *CoingeckoClient {
	return &CoingeckoClient{baseURL: baseURL, http: httpClient}
}

// PriceUSD returns the token's USD unit price on the given date
func (c *CoingeckoClient) PriceUSD(ctx context.Context, tokenID string, date time.Time) (float64, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/history?date=%s&localization=false",
		c.baseURL, url.PathEscape(tokenID), date.Format(historyDateLayout))

	var resp historyResponse
	if err := c.http.Get(ctx, endpoint, &resp); err != nil {
		return 0, fmt.Errorf("coingecko history for %s: %w", tokenID, err)
	}
	if resp.MarketData == nil {
		return 0, fmt.Errorf("coingecko history for %s: no market data on %s", tokenID, date.Format(historyDateLayout))
	}

	return resp.MarketData.CurrentPrice.USD, nil
}
