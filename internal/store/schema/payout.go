package schema

import "time"

// PotPayout represents the pot_payouts table - one payout line per recipient,
// created when the chef sets payouts and completed when the transfer callback
// fires.
type PotPayout struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PotID is the paying pot
	PotID string `gorm:"column:pot_id;not null;type:text;uniqueIndex:idx_pot_payouts,priority:1"`
	// RecipientID is the paid project account
	RecipientID string `gorm:"column:recipient_id;not null;type:text;uniqueIndex:idx_pot_payouts,priority:2"`
	// Amount is the payout amount in base units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// FtID is the payout token, the native token when unspecified
	FtID string `gorm:"column:ft_id;not null;default:near;type:text"`
	// PaidAt is set when the payout is fulfilled
	PaidAt *time.Time `gorm:"column:paid_at;type:timestamptz"`
	// TxHash is the receipt id of the chef_set_payouts call
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the PotPayout model
func (PotPayout) TableName() string {
	return "pot_payouts"
}

// PotPayoutChallenge represents the pot_payout_challenges table - append-only
// challenges raised during the cooldown window.
type PotPayoutChallenge struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChallengerID is the account raising the challenge
	ChallengerID string `gorm:"column:challenger_id;not null;type:text"`
	// PotID is the challenged pot
	PotID string `gorm:"column:pot_id;not null;type:text;index"`
	// Message is the challenge reason
	Message string `gorm:"column:message;not null;type:text"`
	// CreatedAt is the block time of the challenge
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	// TxHash is the receipt id of the challenge call
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_pot_payout_challenges_tx"`
}

// TableName specifies the table name for the PotPayoutChallenge model
func (PotPayoutChallenge) TableName() string {
	return "pot_payout_challenges"
}
