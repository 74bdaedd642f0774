package pricing

import (
	"context"
	"time"
)

// PriceLookup resolves the USD unit price of a token on a calendar date. The
// projector treats it as an external collaborator: it may fail transiently and
// calls carry a bounded timeout via the underlying HTTP client.
//
//go:generate mockgen -source=pricing.go -destination=../mocks/pricing.go -package=mocks -mock_names=PriceLookup=MockPriceLookup
type PriceLookup interface {
	// PriceUSD returns the token's USD unit price on the given date
	PriceUSD(ctx context.Context, tokenID string, date time.Time) (float64, error)
}
