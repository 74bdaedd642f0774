package schema

import "time"

// TokenHistoricalData represents the token_historical_data table - the USD
// price cache consulted when the live price lookup fails. Conflated per token:
// repeated lookups merge-overwrite the price and extend last_updated_at.
type TokenHistoricalData struct {
	// TokenID is the fungible token id ("near" for the native token)
	TokenID string `gorm:"column:token_id;primaryKey;type:text"`
	// PriceDate is the calendar date the cached price was fetched for
	PriceDate time.Time `gorm:"column:price_date;not null;type:date"`
	// PriceUSD is the last known USD unit price
	PriceUSD float64 `gorm:"column:price_usd;not null"`
	// LastUpdatedAt is when the price was last refreshed
	LastUpdatedAt time.Time `gorm:"column:last_updated_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the TokenHistoricalData model
func (TokenHistoricalData) TableName() string {
	return "token_historical_data"
}
