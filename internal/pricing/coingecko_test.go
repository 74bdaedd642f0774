package pricing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlock/indexer/internal/mocks"
	"github.com/potlock/indexer/internal/pricing"
)

func TestCoingeckoClient_PriceUSD(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pricing.NewCoingeckoClient("https://api.coingecko.com/api/v3", httpClient)

	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://api.coingecko.com/api/v3/coins/near/history?date=14-03-2026&localization=false", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			raw := []byte(`{"market_data":{"current_price":{"usd":5.25}}}`)
			return jsonUnmarshal(raw, result)
		})

	price, err := client.PriceUSD(context.Background(), "near", date)
	require.NoError(t, err)
	assert.InDelta(t, 5.25, price, 1e-9)
}

func TestCoingeckoClient_PriceUSD_NoMarketData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pricing.NewCoingeckoClient("https://api.coingecko.com/api/v3", httpClient)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			// Token exists but the date predates its listing
			return jsonUnmarshal([]byte(`{}`), result)
		})

	_, err := client.PriceUSD(context.Background(), "near", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no market data")
}

func TestCoingeckoClient_PriceUSD_RequestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pricing.NewCoingeckoClient("https://api.coingecko.com/api/v3", httpClient)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("timeout"))

	_, err := client.PriceUSD(context.Background(), "near", time.Now())
	assert.Error(t, err)
}

// jsonUnmarshal fills the response target the way the HTTP adapter does.
func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
