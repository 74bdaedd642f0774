package schema

import "time"

// PotApplication represents the pot_applications table - one project's
// application to a pot, keyed by (pot_id, applicant_id).
type PotApplication struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PotID is the pot applied to
	PotID string `gorm:"column:pot_id;not null;type:text;uniqueIndex:idx_pot_applications,priority:1"`
	// ApplicantID is the applying project account
	ApplicantID string `gorm:"column:applicant_id;not null;type:text;uniqueIndex:idx_pot_applications,priority:2"`
	// Message is the applicant's free-form message
	Message *string `gorm:"column:message;type:text"`
	// CurrentStatus is the latest review status
	CurrentStatus string `gorm:"column:current_status;not null;type:text"`
	// SubmittedAt is when the application was submitted
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;type:timestamptz"`
	// LastUpdatedAt is when the status last changed
	LastUpdatedAt *time.Time `gorm:"column:last_updated_at;type:timestamptz"`
	// TxHash is the receipt id of the submission
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the PotApplication model
func (PotApplication) TableName() string {
	return "pot_applications"
}

// PotApplicationReview represents the pot_application_reviews table - an
// append-only audit trail, one row per chef review action.
type PotApplicationReview struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ApplicationID references the reviewed application
	ApplicationID int64 `gorm:"column:application_id;not null;index"`
	// ReviewerID is the chef/admin that performed the review
	ReviewerID string `gorm:"column:reviewer_id;not null;type:text"`
	// Notes carries the reviewer's notes
	Notes *string `gorm:"column:notes;type:text"`
	// Status is the status assigned by this review
	Status string `gorm:"column:status;not null;type:text"`
	// ReviewedAt is when the review happened
	ReviewedAt time.Time `gorm:"column:reviewed_at;not null;type:timestamptz"`
	// TxHash is the receipt id of the review call
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_pot_application_reviews_tx"`
}

// TableName specifies the table name for the PotApplicationReview model
func (PotApplicationReview) TableName() string {
	return "pot_application_reviews"
}
