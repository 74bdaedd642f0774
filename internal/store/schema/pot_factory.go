package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PotFactory represents the pot_factories table - one row per versioned factory
// deployment (v1.potfactory..., v2.potfactory..., ...).
type PotFactory struct {
	// ID is the factory account id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// OwnerID is the factory owner account
	OwnerID string `gorm:"column:owner_id;not null;type:text"`
	// DeployedAt is the block time of the deployment
	DeployedAt time.Time `gorm:"column:deployed_at;not null;type:timestamptz"`
	// SourceMetadata is the contract source metadata as reported at deploy time
	SourceMetadata datatypes.JSON `gorm:"column:source_metadata;type:jsonb"`
	// ProtocolFeeBasisPoints is the protocol fee taken from donations routed through pots of this factory
	ProtocolFeeBasisPoints uint32 `gorm:"column:protocol_fee_basis_points;not null;default:0"`
	// ProtocolFeeRecipientAccount receives the protocol fee
	ProtocolFeeRecipientAccount string `gorm:"column:protocol_fee_recipient_account;not null;type:text"`
	// RequireWhitelist restricts pot deployment to whitelisted deployers
	RequireWhitelist bool `gorm:"column:require_whitelist;not null;default:false"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PotFactory model
func (PotFactory) TableName() string {
	return "pot_factories"
}

// PotFactoryAdmin is a membership row: admin_id administers pot_factory_id.
type PotFactoryAdmin struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	PotFactoryID string `gorm:"column:pot_factory_id;not null;type:text;uniqueIndex:idx_pot_factory_admins,priority:1"`
	AdminID      string `gorm:"column:admin_id;not null;type:text;uniqueIndex:idx_pot_factory_admins,priority:2"`
}

// TableName specifies the table name for the PotFactoryAdmin model
func (PotFactoryAdmin) TableName() string {
	return "pot_factory_admins"
}

// PotFactoryWhitelistedDeployer is a membership row: the account may deploy
// pots through the factory when require_whitelist is set.
type PotFactoryWhitelistedDeployer struct {
	ID                    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	PotFactoryID          string `gorm:"column:pot_factory_id;not null;type:text;uniqueIndex:idx_pot_factory_deployers,priority:1"`
	WhitelistedDeployerID string `gorm:"column:whitelisted_deployer_id;not null;type:text;uniqueIndex:idx_pot_factory_deployers,priority:2"`
}

// TableName specifies the table name for the PotFactoryWhitelistedDeployer model
func (PotFactoryWhitelistedDeployer) TableName() string {
	return "pot_factory_whitelisted_deployers"
}
