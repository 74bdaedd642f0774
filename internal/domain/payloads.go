package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// Payload shapes vary by protocol revision and carry optional fields. Each
// event kind gets an explicit schema with required fields checked at decode
// time instead of ad hoc map access.

// Millis is a millisecond UNIX timestamp.
type Millis int64

// Time converts to UTC time; zero stays the zero time.
func (m Millis) Time() time.Time {
	if m == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(m)).UTC()
}

// ParseAmount parses a non-negative base-unit token amount. Amounts stay in
// arbitrary precision; they are never run through floating point.
func ParseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("empty amount")
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed amount %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", s)
	}
	return v, nil
}

// FactoryDeployArgs is the argument payload of a factory "new" call.
type FactoryDeployArgs struct {
	Owner                       string          `json:"owner"`
	ProtocolFeeBasisPoints      uint32          `json:"protocol_fee_basis_points"`
	ProtocolFeeRecipientAccount string          `json:"protocol_fee_recipient_account"`
	Admins                      []string        `json:"admins,omitempty"`
	WhitelistedDeployers        []string        `json:"whitelisted_deployers,omitempty"`
	RequireWhitelist            bool            `json:"require_whitelist,omitempty"`
	SourceMetadata              json.RawMessage `json:"source_metadata,omitempty"`
}

func (a *FactoryDeployArgs) Validate() error {
	if a.Owner == "" {
		return errors.New("factory deploy: owner is required")
	}
	if a.ProtocolFeeRecipientAccount == "" {
		return errors.New("factory deploy: protocol_fee_recipient_account is required")
	}
	return nil
}

// PotDeployArgs is the argument payload of a pot "new" call.
type PotDeployArgs struct {
	Owner                              string          `json:"owner"`
	Chef                               *string         `json:"chef,omitempty"`
	Admins                             []string        `json:"admins,omitempty"`
	PotName                            string          `json:"pot_name"`
	PotDescription                     string          `json:"pot_description,omitempty"`
	MaxProjects                        uint32          `json:"max_projects,omitempty"`
	ApplicationStartMs                 Millis          `json:"application_start_ms"`
	ApplicationEndMs                   Millis          `json:"application_end_ms"`
	PublicRoundStartMs                 Millis          `json:"public_round_start_ms"`
	PublicRoundEndMs                   Millis          `json:"public_round_end_ms"`
	MinMatchingPoolDonationAmount      *string         `json:"min_matching_pool_donation_amount,omitempty"`
	CooldownEndMs                      *Millis         `json:"cooldown_end_ms,omitempty"`
	RegistryProvider                   *string         `json:"registry_provider,omitempty"`
	SybilWrapperProvider               *string         `json:"sybil_wrapper_provider,omitempty"`
	CustomSybilChecks                  *string         `json:"custom_sybil_checks,omitempty"`
	CustomMinThresholdScore            *uint32         `json:"custom_min_threshold_score,omitempty"`
	ReferralFeeMatchingPoolBasisPoints uint32          `json:"referral_fee_matching_pool_basis_points"`
	ReferralFeePublicRoundBasisPoints  uint32          `json:"referral_fee_public_round_basis_points"`
	ChefFeeBasisPoints                 uint32          `json:"chef_fee_basis_points"`
	ProtocolConfigProvider             *string         `json:"protocol_config_provider,omitempty"`
	SourceMetadata                     json.RawMessage `json:"source_metadata,omitempty"`
}

func (a *PotDeployArgs) Validate() error {
	if a.Owner == "" {
		return errors.New("pot deploy: owner is required")
	}
	if a.ApplicationStartMs == 0 || a.ApplicationEndMs == 0 {
		return errors.New("pot deploy: application window is required")
	}
	if a.PublicRoundStartMs == 0 || a.PublicRoundEndMs == 0 {
		return errors.New("pot deploy: public round window is required")
	}
	return nil
}

// ListInitResult is the authoritative decoded result of a registry/list
// initialization. The result, not the raw args, carries the server-assigned
// defaults. DefaultRegistrationStatus defaults to Approved when omitted, the
// behavior of the first registry deployment.
type ListInitResult struct {
	Owner                     string             `json:"owner"`
	Name                      string             `json:"name,omitempty"`
	Description               *string            `json:"description,omitempty"`
	DefaultRegistrationStatus RegistrationStatus `json:"default_registration_status,omitempty"`
	Admins                    []string           `json:"admins,omitempty"`
	CoverImageURL             *string            `json:"cover_image_url,omitempty"`
}

func (r *ListInitResult) Validate() error {
	if r.Owner == "" {
		return errors.New("list init: owner is required")
	}
	return nil
}

// RegisterArgs is the argument payload of a "register" call. The project id is
// optional; absent means the signer registers itself.
type RegisterArgs struct {
	ProjectID *string `json:"_project_id,omitempty"`
}

// RegistrationResult is one registration row from a register/register_batch
// result payload.
type RegistrationResult struct {
	RegistrantID   string             `json:"registrant_id"`
	Status         RegistrationStatus `json:"status,omitempty"`
	SubmittedMs    Millis             `json:"submitted_ms,omitempty"`
	UpdatedMs      Millis             `json:"updated_ms,omitempty"`
	RegistrantNote *string            `json:"registrant_notes,omitempty"`
	AdminNote      *string            `json:"admin_notes,omitempty"`
}

func (r *RegistrationResult) Validate() error {
	if r.RegistrantID == "" {
		return errors.New("registration: registrant_id is required")
	}
	return nil
}

// ProjectStatusArgs is the argument payload of admin_set_project_status.
type ProjectStatusArgs struct {
	ProjectID   string             `json:"project_id"`
	Status      RegistrationStatus `json:"status"`
	ReviewNotes *string            `json:"review_notes,omitempty"`
}

func (a *ProjectStatusArgs) Validate() error {
	if a.ProjectID == "" {
		return errors.New("project status: project_id is required")
	}
	if a.Status == "" {
		return errors.New("project status: status is required")
	}
	return nil
}

// DefaultStatusArgs is the argument payload of admin_set_default_project_status.
type DefaultStatusArgs struct {
	Status RegistrationStatus `json:"status"`
}

func (a *DefaultStatusArgs) Validate() error {
	if a.Status == "" {
		return errors.New("default status: status is required")
	}
	return nil
}

// ApplicationArgs is the argument payload of the pot application callback.
type ApplicationArgs struct {
	ProjectID   string             `json:"project_id"`
	Message     *string            `json:"message,omitempty"`
	Status      RegistrationStatus `json:"status,omitempty"`
	SubmittedAt Millis             `json:"submitted_at,omitempty"`
}

func (a *ApplicationArgs) Validate() error {
	if a.ProjectID == "" {
		return errors.New("application: project_id is required")
	}
	return nil
}

// ApplicationReviewResult is the authoritative decoded result of
// chef_set_application_status.
type ApplicationReviewResult struct {
	Status    RegistrationStatus `json:"status"`
	Notes     *string            `json:"notes,omitempty"`
	UpdatedAt Millis             `json:"updated_at,omitempty"`
}

func (r *ApplicationReviewResult) Validate() error {
	if r.Status == "" {
		return errors.New("application review: status is required")
	}
	return nil
}

// PayoutLine is one entry of a chef_set_payouts call.
type PayoutLine struct {
	ProjectID string  `json:"project_id"`
	Amount    string  `json:"amount"`
	FtID      *string `json:"ft_id,omitempty"`
}

func (l *PayoutLine) Validate() error {
	if l.ProjectID == "" {
		return errors.New("payout: project_id is required")
	}
	if _, err := ParseAmount(l.Amount); err != nil {
		return fmt.Errorf("payout: %w", err)
	}
	return nil
}

// PayoutsArgs is the argument payload of chef_set_payouts.
type PayoutsArgs struct {
	Payouts []PayoutLine `json:"payouts"`
}

func (a *PayoutsArgs) Validate() error {
	if len(a.Payouts) == 0 {
		return errors.New("payouts: empty payouts list")
	}
	for i := range a.Payouts {
		if err := a.Payouts[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FulfillPayoutArgs is the argument payload of transfer_payout_callback.
type FulfillPayoutArgs struct {
	ProjectID string `json:"project_id"`
	Amount    string `json:"amount"`
	PaidAt    Millis `json:"paid_at,omitempty"`
}

func (a *FulfillPayoutArgs) Validate() error {
	if a.ProjectID == "" {
		return errors.New("fulfill payout: project_id is required")
	}
	if _, err := ParseAmount(a.Amount); err != nil {
		return fmt.Errorf("fulfill payout: %w", err)
	}
	return nil
}

// ChallengeArgs is the argument payload of challenge_payouts.
type ChallengeArgs struct {
	Reason string `json:"reason"`
}

func (a *ChallengeArgs) Validate() error {
	if a.Reason == "" {
		return errors.New("payout challenge: reason is required")
	}
	return nil
}

// RemoveAdminsArgs is the argument payload of owner_remove_admins.
type RemoveAdminsArgs struct {
	Admins []string `json:"admins"`
}

func (a *RemoveAdminsArgs) Validate() error {
	if len(a.Admins) == 0 {
		return errors.New("remove admins: empty admins list")
	}
	return nil
}

// DonateArgs is the argument payload of a donate call. Only the fields needed
// to pick the projection path are read; the authoritative data comes from the
// event or result payload.
type DonateArgs struct {
	MatchingPool bool `json:"matching_pool,omitempty"`
}

// DonationResult is the authoritative donation record, read either from the
// NEP-297 event attached to the receipt (direct donations) or from the decoded
// success value (pot-routed donations).
type DonationResult struct {
	DonorID      string  `json:"donor_id"`
	TotalAmount  string  `json:"total_amount"`
	ProtocolFee  string  `json:"protocol_fee"`
	ReferrerID   *string `json:"referrer_id,omitempty"`
	ReferrerFee  *string `json:"referrer_fee,omitempty"`
	FtID         *string `json:"ft_id,omitempty"`
	Message      *string `json:"message,omitempty"`
	DonatedAt    Millis  `json:"donated_at,omitempty"`
	DonatedAtMs  Millis  `json:"donated_at_ms,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	RecipientID  *string `json:"recipient_id,omitempty"`
	MatchingPool bool    `json:"matching_pool,omitempty"`
}

func (r *DonationResult) Validate() error {
	if r.DonorID == "" {
		return errors.New("donation: donor_id is required")
	}
	if _, err := ParseAmount(r.TotalAmount); err != nil {
		return fmt.Errorf("donation: total_amount: %w", err)
	}
	if r.ProtocolFee != "" {
		if _, err := ParseAmount(r.ProtocolFee); err != nil {
			return fmt.Errorf("donation: protocol_fee: %w", err)
		}
	}
	if r.ReferrerFee != nil && *r.ReferrerFee != "" {
		if _, err := ParseAmount(*r.ReferrerFee); err != nil {
			return fmt.Errorf("donation: referrer_fee: %w", err)
		}
	}
	return nil
}

// Recipient returns the donation target, preferring the project id.
func (r *DonationResult) Recipient() string {
	if r.ProjectID != nil && *r.ProjectID != "" {
		return *r.ProjectID
	}
	if r.RecipientID != nil && *r.RecipientID != "" {
		return *r.RecipientID
	}
	return ""
}

// Token returns the donation token id, defaulting to the native token.
func (r *DonationResult) Token() string {
	if r.FtID != nil && *r.FtID != "" {
		return *r.FtID
	}
	return NativeTokenID
}

// DonationTime resolves the donation timestamp, preferring the explicit
// payload fields and falling back to the block time.
func (r *DonationResult) DonationTime(blockTime time.Time) time.Time {
	if r.DonatedAt != 0 {
		return r.DonatedAt.Time()
	}
	if r.DonatedAtMs != 0 {
		return r.DonatedAtMs.Time()
	}
	return blockTime
}

// NetAmount computes total - protocol fee - referrer fee in arbitrary
// precision. The payload must have been validated first.
func (r *DonationResult) NetAmount() *big.Int {
	net, _ := ParseAmount(r.TotalAmount)
	if r.ProtocolFee != "" {
		fee, _ := ParseAmount(r.ProtocolFee)
		net.Sub(net, fee)
	}
	if r.ReferrerFee != nil && *r.ReferrerFee != "" {
		fee, _ := ParseAmount(*r.ReferrerFee)
		net.Sub(net, fee)
	}
	return net
}
