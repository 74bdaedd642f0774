package schema

import "time"

// Activity represents the activities table - the append-only feed of every
// handled event. Rows are immutable once written; (tx_hash, type,
// action_result) is unique so redelivered blocks cannot duplicate the timeline.
type Activity struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SignerID is the acting account
	SignerID string `gorm:"column:signer_id;not null;type:text;index"`
	// ReceiverID is the target contract account
	ReceiverID string `gorm:"column:receiver_id;not null;type:text;index"`
	// Timestamp is the block (or payload) time of the event
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// Type discriminates the event kind
	Type string `gorm:"column:type;not null;type:text;uniqueIndex:idx_activities_dedup,priority:2"`
	// ActionResult points at the entity the event produced or touched
	ActionResult string `gorm:"column:action_result;type:text;uniqueIndex:idx_activities_dedup,priority:3"`
	// TxHash is the receipt id of the event
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_activities_dedup,priority:1"`
}

// TableName specifies the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
