package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Pot represents the pots table - one funding round contract. Created once on
// deployment with zeroed running totals; the totals are mutated by every
// donation and payout event targeting the pot and must stay consistent with the
// underlying donation rows, so they only ever move through atomic increments.
type Pot struct {
	// ID is the pot account id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// PotFactoryID is the factory that deployed this pot (the call's predecessor)
	PotFactoryID string `gorm:"column:pot_factory_id;not null;type:text;index"`
	// DeployerID is the account that signed the deployment
	DeployerID string `gorm:"column:deployer_id;not null;type:text"`
	// DeployedAt is the block time of the deployment
	DeployedAt time.Time `gorm:"column:deployed_at;not null;type:timestamptz"`
	// SourceMetadata is the contract source metadata as reported at deploy time
	SourceMetadata datatypes.JSON `gorm:"column:source_metadata;type:jsonb"`
	// OwnerID is the pot owner account
	OwnerID string `gorm:"column:owner_id;not null;type:text"`
	// ChefID is the operator reviewing applications and setting payouts
	ChefID *string `gorm:"column:chef_id;type:text"`
	// Name is the pot display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the pot description
	Description string `gorm:"column:description;type:text"`
	// MaxApprovedApplicants caps the number of approved projects
	MaxApprovedApplicants uint32 `gorm:"column:max_approved_applicants;not null;default:0"`
	// BaseCurrency is the pot's base currency, nil for the native token
	BaseCurrency *string `gorm:"column:base_currency;type:text"`
	// ApplicationStart / ApplicationEnd bound the application window
	ApplicationStart time.Time `gorm:"column:application_start;not null;type:timestamptz"`
	ApplicationEnd   time.Time `gorm:"column:application_end;not null;type:timestamptz"`
	// MatchingRoundStart / MatchingRoundEnd bound the public matching round
	MatchingRoundStart time.Time `gorm:"column:matching_round_start;not null;type:timestamptz"`
	MatchingRoundEnd   time.Time `gorm:"column:matching_round_end;not null;type:timestamptz"`
	// RegistryProvider is the external registry consulted for applicant eligibility
	RegistryProvider *string `gorm:"column:registry_provider;type:text"`
	// MinMatchingPoolDonationAmount is the minimum matching-pool contribution in base units
	MinMatchingPoolDonationAmount string `gorm:"column:min_matching_pool_donation_amount;not null;default:0;type:numeric(78,0)"`
	// SybilWrapperProvider / CustomSybilChecks / CustomMinThresholdScore configure sybil resistance
	SybilWrapperProvider    *string `gorm:"column:sybil_wrapper_provider;type:text"`
	CustomSybilChecks       *string `gorm:"column:custom_sybil_checks;type:text"`
	CustomMinThresholdScore *uint32 `gorm:"column:custom_min_threshold_score"`
	// Referral and chef fees in basis points
	ReferralFeeMatchingPoolBasisPoints uint32 `gorm:"column:referral_fee_matching_pool_basis_points;not null;default:0"`
	ReferralFeePublicRoundBasisPoints  uint32 `gorm:"column:referral_fee_public_round_basis_points;not null;default:0"`
	ChefFeeBasisPoints                 uint32 `gorm:"column:chef_fee_basis_points;not null;default:0"`
	// TotalMatchingPool is the running raw sum of matching-pool donations (base units)
	TotalMatchingPool string `gorm:"column:total_matching_pool;not null;default:0;type:numeric(78,0)"`
	// TotalMatchingPoolUSD is the running USD sum of matching-pool donations
	TotalMatchingPoolUSD float64 `gorm:"column:total_matching_pool_usd;not null;default:0"`
	// MatchingPoolBalance is the undistributed matching-pool balance (base units)
	MatchingPoolBalance string `gorm:"column:matching_pool_balance;not null;default:0;type:numeric(78,0)"`
	// MatchingPoolDonationsCount counts matching-pool donations
	MatchingPoolDonationsCount int64 `gorm:"column:matching_pool_donations_count;not null;default:0"`
	// TotalPublicDonations is the running raw sum of public-round donations (base units)
	TotalPublicDonations string `gorm:"column:total_public_donations;not null;default:0;type:numeric(78,0)"`
	// TotalPublicDonationsUSD is the running USD sum of public-round donations
	TotalPublicDonationsUSD float64 `gorm:"column:total_public_donations_usd;not null;default:0"`
	// PublicDonationsCount counts public-round donations
	PublicDonationsCount int64 `gorm:"column:public_donations_count;not null;default:0"`
	// CooldownEnd is the end of the payout challenge window
	CooldownEnd *time.Time `gorm:"column:cooldown_end;type:timestamptz"`
	// AllPaidOut is set once every payout has been fulfilled
	AllPaidOut bool `gorm:"column:all_paid_out;not null;default:false"`
	// ProtocolConfigProvider is the contract providing protocol fee configuration
	ProtocolConfigProvider *string `gorm:"column:protocol_config_provider;type:text"`
	// TxHash is the receipt id of the deployment
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Pot model
func (Pot) TableName() string {
	return "pots"
}

// PotAdmin is a membership row: admin_id administers pot_id.
type PotAdmin struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	PotID   string `gorm:"column:pot_id;not null;type:text;uniqueIndex:idx_pot_admins,priority:1"`
	AdminID string `gorm:"column:admin_id;not null;type:text;uniqueIndex:idx_pot_admins,priority:2"`
}

// TableName specifies the table name for the PotAdmin model
func (PotAdmin) TableName() string {
	return "pot_admins"
}
