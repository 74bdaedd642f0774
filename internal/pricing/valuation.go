package pricing

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/potlock/indexer/internal/adapter"
	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/logger"
	"github.com/potlock/indexer/internal/store"
)

// Amounts is the USD view of one donation. The raw amounts stay integers;
// floats appear only here, after the final multiplication.
type Amounts struct {
	UnitPriceUSD float64
	TotalUSD     float64
	NetUSD       float64
}

// Valuation converts raw token amounts to USD. It asks the live price lookup
// first and falls back to the persisted price cache; successful live lookups
// refresh the cache. When neither source can price the token the event fails
// with domain.ErrPriceUnavailable.
type Valuation struct {
	lookup PriceLookup
	store  store.Store
	clock  adapter.Clock
}

// NewValuation creates a valuation helper.
func NewValuation(lookup PriceLookup, st store.Store, clock adapter.Clock) *Valuation {
	return &Valuation{lookup: lookup, store: st, clock: clock}
}

// Value prices total and net base-unit amounts in USD for the given token and
// calendar date.
func (v *Valuation) Value(ctx context.Context, tokenID string, date time.Time, total, net *big.Int) (Amounts, error) {
	unitPrice, err := v.lookup.PriceUSD(ctx, tokenID, date)
	if err == nil {
		if cacheErr := v.store.UpsertTokenPrice(ctx, tokenID, date, unitPrice, v.clock.Now()); cacheErr != nil {
			// A stale cache is survivable; the valuation itself succeeded.
			logger.WarnCtx(ctx, "failed to refresh price cache",
				zap.Error(cacheErr), zap.String("token", tokenID))
		}
	} else {
		logger.WarnCtx(ctx, "live price lookup failed, trying cache",
			zap.Error(err), zap.String("token", tokenID))

		cached, cacheErr := v.store.GetCachedTokenPrice(ctx, tokenID)
		if cacheErr != nil {
			return Amounts{}, cacheErr
		}
		if cached == nil {
			return Amounts{}, fmt.Errorf("token %s on %s: %w",
				tokenID, date.Format(historyDateLayout), domain.ErrPriceUnavailable)
		}
		unitPrice = cached.PriceUSD
	}

	return Amounts{
		UnitPriceUSD: unitPrice,
		TotalUSD:     unitPrice * ToHumanAmount(total),
		NetUSD:       unitPrice * ToHumanAmount(net),
	}, nil
}

// nativeUnitScale is 10^24, the yoctoNEAR scale factor.
var nativeUnitScale = new(big.Float).SetInt(
	new(big.Int).Exp(big.NewInt(10), big.NewInt(domain.NativeTokenDecimals), nil),
)

// ToHumanAmount divides a base-unit amount by the native unit scale to obtain
// the human-scale float used only for USD multiplication.
func ToHumanAmount(amount *big.Int) float64 {
	human, _ := new(big.Float).Quo(new(big.Float).SetInt(amount), nativeUnitScale).Float64()
	return human
}
