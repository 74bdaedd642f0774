package schema

import "time"

// Account represents the accounts table - every chain account referenced by any
// projected entity. Rows are created lazily on first reference and accumulate
// donation aggregates for accounts that receive funds.
type Account struct {
	// ID is the NEAR account id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TotalDonationsUSD is the running USD sum received by this account
	TotalDonationsUSD float64 `gorm:"column:total_donations_usd;not null;default:0"`
	// DonorsCount is the running count of donations received by this account
	DonorsCount int64 `gorm:"column:donors_count;not null;default:0"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
