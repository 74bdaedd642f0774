package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store/schema"
)

// ActivityInput describes one activity feed entry. Every projector that
// represents a user-visible action produces exactly one (payout-set produces
// one per payout line).
type ActivityInput struct {
	SignerID     string
	ReceiverID   string
	Timestamp    time.Time
	Type         domain.ActivityType
	ActionResult string
	TxHash       string
}

// CreatePotFactoryInput carries a factory deployment.
type CreatePotFactoryInput struct {
	ID                          string
	OwnerID                     string
	DeployedAt                  time.Time
	SourceMetadata              json.RawMessage
	ProtocolFeeBasisPoints      uint32
	ProtocolFeeRecipientAccount string
	RequireWhitelist            bool
	Admins                      []string
	WhitelistedDeployers        []string
}

// CreatePotInput carries a pot deployment together with its activity entry.
type CreatePotInput struct {
	Pot      schema.Pot
	Admins   []string
	Activity ActivityInput
}

// CreateListInput carries a registry initialization.
type CreateListInput struct {
	List   schema.List
	Admins []string
}

// ListRegistrationInput is one registration row to create.
type ListRegistrationInput struct {
	RegistrantID    string
	Status          string
	SubmittedAt     time.Time
	UpdatedAt       *time.Time
	RegistrantNotes *string
	AdminNotes      *string
}

// CreateListRegistrationsInput carries one or many registrations plus the
// single activity entry for the call.
type CreateListRegistrationsInput struct {
	ListID        string
	Registrations []ListRegistrationInput
	TxHash        string
	Activity      ActivityInput
}

// ListRegistrationPatch mutates the status of an existing registration.
type ListRegistrationPatch struct {
	Status     string
	AdminNotes *string
	UpdatedAt  time.Time
}

// CreatePotApplicationInput carries an application submission.
type CreatePotApplicationInput struct {
	PotID       string
	ApplicantID string
	Message     *string
	Status      string
	SubmittedAt time.Time
	TxHash      string
	Activity    ActivityInput
}

// ReviewPotApplicationInput carries one chef review: an append-only audit row
// plus the patch applied to the application.
type ReviewPotApplicationInput struct {
	ApplicationID int64
	ReviewerID    string
	Notes         *string
	Status        string
	ReviewedAt    time.Time
	TxHash        string
}

// PotPayoutInput is one payout line of a chef_set_payouts call.
type PotPayoutInput struct {
	RecipientID string
	Amount      string
	FtID        string
}

// CreatePotPayoutsInput carries the payout lines of one call; each line gets
// its own activity entry.
type CreatePotPayoutsInput struct {
	PotID     string
	Payouts   []PotPayoutInput
	TxHash    string
	SignerID  string
	Timestamp time.Time
}

// CreatePayoutChallengeInput carries one payout challenge.
type CreatePayoutChallengeInput struct {
	ChallengerID string
	PotID        string
	Message      string
	CreatedAt    time.Time
	TxHash       string
	Activity     ActivityInput
}

// CreateDonationInput carries one valued donation. Aggregate updates derived
// from it (pot totals, recipient account totals) happen atomically in the same
// transaction that inserts the row.
type CreateDonationInput struct {
	DonorID        string
	PotID          *string
	RecipientID    *string
	TotalAmount    string
	TotalAmountUSD float64
	NetAmount      string
	NetAmountUSD   float64
	ProtocolFee    string
	ReferrerID     *string
	ReferrerFee    *string
	FtID           string
	Message        *string
	DonatedAt      time.Time
	MatchingPool   bool
	TxHash         string
	Activity       ActivityInput
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertAccounts lazily creates account rows, no-op on conflict
	UpsertAccounts(ctx context.Context, accountIDs ...string) error
	// GetAccountByID retrieves an account, nil when absent
	GetAccountByID(ctx context.Context, accountID string) (*schema.Account, error)

	// CreatePotFactory records a factory deployment with its admin and
	// whitelisted-deployer memberships
	CreatePotFactory(ctx context.Context, input CreatePotFactoryInput) error

	// CreatePot records a pot deployment with zeroed running totals
	CreatePot(ctx context.Context, input CreatePotInput) error
	// GetPotByID retrieves a pot, nil when absent
	GetPotByID(ctx context.Context, potID string) (*schema.Pot, error)

	// CreateList records a registry initialization
	CreateList(ctx context.Context, input CreateListInput) error
	// GetListByID retrieves a list, nil when absent
	GetListByID(ctx context.Context, listID string) (*schema.List, error)
	// SetListDefaultRegistrationStatus updates the default status applied to
	// future registrations; existing rows are left untouched
	SetListDefaultRegistrationStatus(ctx context.Context, listID, status string) error
	// RemoveListAdmins deletes the matching membership rows
	RemoveListAdmins(ctx context.Context, listID string, adminIDs []string, activity ActivityInput) error
	// UpvoteList atomically increments the list's upvote counter
	UpvoteList(ctx context.Context, listID string, activity ActivityInput) error

	// CreateListRegistrations records one or many registrations from a
	// register/register_batch call
	CreateListRegistrations(ctx context.Context, input CreateListRegistrationsInput) error
	// UpdateListRegistration patches the single registration matched by
	// (list_id, registrant_id)
	UpdateListRegistration(ctx context.Context, listID, registrantID string, patch ListRegistrationPatch) error

	// CreatePotApplication records an application submission
	CreatePotApplication(ctx context.Context, input CreatePotApplicationInput) error
	// GetPotApplicationByApplicant retrieves an application, nil when absent
	GetPotApplicationByApplicant(ctx context.Context, potID, applicantID string) (*schema.PotApplication, error)
	// ReviewPotApplication appends a review audit row and patches the
	// application's current status in one transaction
	ReviewPotApplication(ctx context.Context, input ReviewPotApplicationInput) error

	// CreatePotPayouts records the payout lines set by the chef
	CreatePotPayouts(ctx context.Context, input CreatePotPayoutsInput) error
	// FulfillPotPayout marks the payout matched by (pot_id, recipient_id) paid
	FulfillPotPayout(ctx context.Context, potID, recipientID, amount string, paidAt time.Time) error
	// CreatePayoutChallenge appends a payout challenge
	CreatePayoutChallenge(ctx context.Context, input CreatePayoutChallengeInput) error

	// CreateDonation inserts a donation row and atomically folds it into the
	// pot and recipient aggregates. Returns false without side effects when
	// the receipt was already projected (block redelivery).
	CreateDonation(ctx context.Context, input CreateDonationInput) (bool, error)

	// GetCachedTokenPrice returns the last cached USD price for a token, nil
	// when the token was never priced
	GetCachedTokenPrice(ctx context.Context, tokenID string) (*schema.TokenHistoricalData, error)
	// UpsertTokenPrice merge-overwrites the cached price for a token
	UpsertTokenPrice(ctx context.Context, tokenID string, priceDate time.Time, priceUSD float64, updatedAt time.Time) error

	// GetBlockCursor retrieves the last processed block height
	GetBlockCursor(ctx context.Context) (uint64, error)
	// SetBlockCursor stores the last processed block height
	SetBlockCursor(ctx context.Context, height uint64) error
}
