package schema

import "time"

// Donation represents the donations table - append-only, one row per
// successful donation outcome. TxHash (the receipt id) is unique so block
// redelivery cannot double-insert.
type Donation struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DonorID is the donating account
	DonorID string `gorm:"column:donor_id;not null;type:text;index"`
	// PotID is set for pot-routed donations, nil for direct donations
	PotID *string `gorm:"column:pot_id;type:text;index"`
	// RecipientID is the receiving project, nil for matching-pool contributions
	RecipientID *string `gorm:"column:recipient_id;type:text;index"`
	// TotalAmount is the gross amount in base units
	TotalAmount string `gorm:"column:total_amount;not null;type:numeric(78,0)"`
	// TotalAmountUSD is the gross amount valued in USD at donation time
	TotalAmountUSD float64 `gorm:"column:total_amount_usd;not null"`
	// NetAmount is the gross amount minus protocol and referrer fees, in base units
	NetAmount string `gorm:"column:net_amount;not null;type:numeric(78,0)"`
	// NetAmountUSD is the net amount valued in USD at donation time
	NetAmountUSD float64 `gorm:"column:net_amount_usd;not null"`
	// ProtocolFee is the protocol fee in base units
	ProtocolFee string `gorm:"column:protocol_fee;not null;default:0;type:numeric(78,0)"`
	// ReferrerID / ReferrerFee carry referral info when present
	ReferrerID  *string `gorm:"column:referrer_id;type:text"`
	ReferrerFee *string `gorm:"column:referrer_fee;type:numeric(78,0)"`
	// FtID is the donated token, the native token when unspecified
	FtID string `gorm:"column:ft_id;not null;default:near;type:text"`
	// Message is the donor's free-form message
	Message *string `gorm:"column:message;type:text"`
	// DonatedAt is the donation timestamp
	DonatedAt time.Time `gorm:"column:donated_at;not null;type:timestamptz"`
	// MatchingPool marks matching-pool contributions
	MatchingPool bool `gorm:"column:matching_pool;not null;default:false"`
	// TxHash is the receipt id of the donation outcome
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_donations_tx"`
}

// TableName specifies the table name for the Donation model
func (Donation) TableName() string {
	return "donations"
}
