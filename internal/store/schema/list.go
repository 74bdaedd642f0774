package schema

import "time"

// List represents the lists table - one project registry contract tracking
// registrations and their approval status.
type List struct {
	// ID is the registry account id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// OwnerID is the registry owner account
	OwnerID string `gorm:"column:owner_id;not null;type:text"`
	// Name is the registry display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the registry description
	Description *string `gorm:"column:description;type:text"`
	// CoverImageURL is an optional cover image
	CoverImageURL *string `gorm:"column:cover_image_url;type:text"`
	// DefaultRegistrationStatus seeds the status of new registrations at
	// creation time only; later changes never touch existing rows
	DefaultRegistrationStatus string `gorm:"column:default_registration_status;not null;type:text"`
	// TotalUpvotesCount counts upvote events on this list
	TotalUpvotesCount int64 `gorm:"column:total_upvotes_count;not null;default:0"`
	// TxHash is the receipt id of the initialization
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the List model
func (List) TableName() string {
	return "lists"
}

// ListAdmin is a membership row: admin_id administers list_id. Removable by
// explicit owner_remove_admins events.
type ListAdmin struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ListID  string `gorm:"column:list_id;not null;type:text;uniqueIndex:idx_list_admins,priority:1"`
	AdminID string `gorm:"column:admin_id;not null;type:text;uniqueIndex:idx_list_admins,priority:2"`
}

// TableName specifies the table name for the ListAdmin model
func (ListAdmin) TableName() string {
	return "list_admins"
}

// ListRegistration represents the list_registrations table - one project's
// registration on a list. Status starts from the list's default at creation
// time and is mutated by admin status-change events.
type ListRegistration struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ListID is the registry the project registered on
	ListID string `gorm:"column:list_id;not null;type:text;uniqueIndex:idx_list_registrations,priority:1"`
	// RegistrantID is the registered project account
	RegistrantID string `gorm:"column:registrant_id;not null;type:text;uniqueIndex:idx_list_registrations,priority:2"`
	// Status is the current registration status
	Status string `gorm:"column:status;not null;type:text"`
	// SubmittedAt is when the registration was submitted
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;type:timestamptz"`
	// UpdatedAt is when the status last changed
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamptz"`
	// RegistrantNotes / AdminNotes carry free-form review notes
	RegistrantNotes *string `gorm:"column:registrant_notes;type:text"`
	AdminNotes      *string `gorm:"column:admin_notes;type:text"`
	// TxHash is the receipt id of the registration
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the ListRegistration model
func (ListRegistration) TableName() string {
	return "list_registrations"
}
