package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store/schema"
)

// blockCursorKey is the key_value_store key holding the last processed height.
const blockCursorKey = "block_cursor:near"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// upsertAccountsTx lazily creates account rows inside an open transaction.
func upsertAccountsTx(tx *gorm.DB, accountIDs ...string) error {
	accounts := make([]schema.Account, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		accounts = append(accounts, schema.Account{ID: id})
	}
	if len(accounts) == 0 {
		return nil
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&accounts).Error; err != nil {
		return fmt.Errorf("failed to upsert accounts: %w", err)
	}
	return nil
}

// createActivityTx appends one activity row inside an open transaction.
// Duplicates on (tx_hash, type, action_result) are skipped so redelivered
// blocks cannot duplicate the timeline.
func createActivityTx(tx *gorm.DB, input ActivityInput) error {
	activity := schema.Activity{
		SignerID:     input.SignerID,
		ReceiverID:   input.ReceiverID,
		Timestamp:    input.Timestamp,
		Type:         string(input.Type),
		ActionResult: input.ActionResult,
		TxHash:       input.TxHash,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "type"}, {Name: "action_result"}},
		DoNothing: true,
	}).Create(&activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// UpsertAccounts lazily creates account rows, no-op on conflict
func (s *pgStore) UpsertAccounts(ctx context.Context, accountIDs ...string) error {
	return upsertAccountsTx(s.db.WithContext(ctx), accountIDs...)
}

// GetAccountByID retrieves an account, nil when absent
func (s *pgStore) GetAccountByID(ctx context.Context, accountID string) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("id = ?", accountID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// CreatePotFactory records a factory deployment with its memberships in a
// single transaction.
func (s *pgStore) CreatePotFactory(ctx context.Context, input CreatePotFactoryInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := append([]string{input.OwnerID, input.ProtocolFeeRecipientAccount}, input.Admins...)
		accountIDs = append(accountIDs, input.WhitelistedDeployers...)
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		factory := schema.PotFactory{
			ID:                          input.ID,
			OwnerID:                     input.OwnerID,
			DeployedAt:                  input.DeployedAt,
			SourceMetadata:              datatypes.JSON(input.SourceMetadata),
			ProtocolFeeBasisPoints:      input.ProtocolFeeBasisPoints,
			ProtocolFeeRecipientAccount: input.ProtocolFeeRecipientAccount,
			RequireWhitelist:            input.RequireWhitelist,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&factory).Error; err != nil {
			return fmt.Errorf("failed to create pot factory: %w", err)
		}

		for _, admin := range input.Admins {
			row := schema.PotFactoryAdmin{PotFactoryID: input.ID, AdminID: admin}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create pot factory admin: %w", err)
			}
		}
		for _, deployer := range input.WhitelistedDeployers {
			row := schema.PotFactoryWhitelistedDeployer{PotFactoryID: input.ID, WhitelistedDeployerID: deployer}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create whitelisted deployer: %w", err)
			}
		}

		return nil
	})
}

// CreatePot records a pot deployment with zeroed running totals
func (s *pgStore) CreatePot(ctx context.Context, input CreatePotInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := append([]string{input.Pot.OwnerID, input.Pot.DeployerID}, input.Admins...)
		if input.Pot.ChefID != nil {
			accountIDs = append(accountIDs, *input.Pot.ChefID)
		}
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&input.Pot).Error; err != nil {
			return fmt.Errorf("failed to create pot: %w", err)
		}

		for _, admin := range input.Admins {
			row := schema.PotAdmin{PotID: input.Pot.ID, AdminID: admin}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create pot admin: %w", err)
			}
		}

		return createActivityTx(tx, input.Activity)
	})
}

// GetPotByID retrieves a pot, nil when absent
func (s *pgStore) GetPotByID(ctx context.Context, potID string) (*schema.Pot, error) {
	var pot schema.Pot
	err := s.db.WithContext(ctx).Where("id = ?", potID).First(&pot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}
	return &pot, nil
}

// CreateList records a registry initialization
func (s *pgStore) CreateList(ctx context.Context, input CreateListInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := append([]string{input.List.OwnerID}, input.Admins...)
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&input.List).Error; err != nil {
			return fmt.Errorf("failed to create list: %w", err)
		}

		for _, admin := range input.Admins {
			row := schema.ListAdmin{ListID: input.List.ID, AdminID: admin}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create list admin: %w", err)
			}
		}

		return nil
	})
}

// GetListByID retrieves a list, nil when absent
func (s *pgStore) GetListByID(ctx context.Context, listID string) (*schema.List, error) {
	var list schema.List
	err := s.db.WithContext(ctx).Where("id = ?", listID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return &list, nil
}

// SetListDefaultRegistrationStatus updates the default status applied to
// future registrations; existing registration rows keep their status.
func (s *pgStore) SetListDefaultRegistrationStatus(ctx context.Context, listID, status string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.List{}).
		Where("id = ?", listID).
		Update("default_registration_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to set default registration status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("list %s: %w", listID, domain.ErrEntityNotFound)
	}
	return nil
}

// RemoveListAdmins deletes the matching membership rows
func (s *pgStore) RemoveListAdmins(ctx context.Context, listID string, adminIDs []string, activity ActivityInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("list_id = ? AND admin_id IN ?", listID, adminIDs).
			Delete(&schema.ListAdmin{}).Error; err != nil {
			return fmt.Errorf("failed to remove list admins: %w", err)
		}
		return createActivityTx(tx, activity)
	})
}

// UpvoteList atomically increments the list's upvote counter. The increment is
// keyed to the activity row so a redelivered receipt cannot double count.
func (s *pgStore) UpvoteList(ctx context.Context, listID string, activity ActivityInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := schema.Activity{
			SignerID:     activity.SignerID,
			ReceiverID:   activity.ReceiverID,
			Timestamp:    activity.Timestamp,
			Type:         string(activity.Type),
			ActionResult: activity.ActionResult,
			TxHash:       activity.TxHash,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "type"}, {Name: "action_result"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create activity: %w", err)
		}
		if row.ID == 0 {
			// Already projected on a previous delivery; leave the counter alone.
			return nil
		}

		result := tx.Model(&schema.List{}).
			Where("id = ?", listID).
			Update("total_upvotes_count", gorm.Expr("total_upvotes_count + 1"))
		if result.Error != nil {
			return fmt.Errorf("failed to upvote list: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("list %s: %w", listID, domain.ErrEntityNotFound)
		}
		return nil
	})
}

// CreateListRegistrations records one or many registrations from a single call
func (s *pgStore) CreateListRegistrations(ctx context.Context, input CreateListRegistrationsInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := make([]string, 0, len(input.Registrations)+1)
		accountIDs = append(accountIDs, input.Activity.SignerID)
		for _, reg := range input.Registrations {
			accountIDs = append(accountIDs, reg.RegistrantID)
		}
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		for _, reg := range input.Registrations {
			row := schema.ListRegistration{
				ListID:          input.ListID,
				RegistrantID:    reg.RegistrantID,
				Status:          reg.Status,
				SubmittedAt:     reg.SubmittedAt,
				UpdatedAt:       reg.UpdatedAt,
				RegistrantNotes: reg.RegistrantNotes,
				AdminNotes:      reg.AdminNotes,
				TxHash:          input.TxHash,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "list_id"}, {Name: "registrant_id"}},
				DoNothing: true,
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create list registration: %w", err)
			}
		}

		return createActivityTx(tx, input.Activity)
	})
}

// UpdateListRegistration patches the single registration matched by
// (list_id, registrant_id)
func (s *pgStore) UpdateListRegistration(ctx context.Context, listID, registrantID string, patch ListRegistrationPatch) error {
	updates := map[string]interface{}{
		"status":     patch.Status,
		"updated_at": patch.UpdatedAt,
	}
	if patch.AdminNotes != nil {
		updates["admin_notes"] = *patch.AdminNotes
	}

	result := s.db.WithContext(ctx).
		Model(&schema.ListRegistration{}).
		Where("list_id = ? AND registrant_id = ?", listID, registrantID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update list registration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("registration %s on %s: %w", registrantID, listID, domain.ErrEntityNotFound)
	}
	return nil
}

// CreatePotApplication records an application submission
func (s *pgStore) CreatePotApplication(ctx context.Context, input CreatePotApplicationInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertAccountsTx(tx, input.ApplicantID, input.Activity.SignerID); err != nil {
			return err
		}

		application := schema.PotApplication{
			PotID:         input.PotID,
			ApplicantID:   input.ApplicantID,
			Message:       input.Message,
			CurrentStatus: input.Status,
			SubmittedAt:   input.SubmittedAt,
			TxHash:        input.TxHash,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pot_id"}, {Name: "applicant_id"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&application).Error; err != nil {
			return fmt.Errorf("failed to create pot application: %w", err)
		}

		return createActivityTx(tx, input.Activity)
	})
}

// GetPotApplicationByApplicant retrieves an application, nil when absent
func (s *pgStore) GetPotApplicationByApplicant(ctx context.Context, potID, applicantID string) (*schema.PotApplication, error) {
	var application schema.PotApplication
	err := s.db.WithContext(ctx).
		Where("pot_id = ? AND applicant_id = ?", potID, applicantID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pot application: %w", err)
	}
	return &application, nil
}

// ReviewPotApplication appends a review audit row and patches the application
// in one transaction. A duplicate review (same receipt) leaves the application
// untouched.
func (s *pgStore) ReviewPotApplication(ctx context.Context, input ReviewPotApplicationInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		review := schema.PotApplicationReview{
			ApplicationID: input.ApplicationID,
			ReviewerID:    input.ReviewerID,
			Notes:         input.Notes,
			Status:        input.Status,
			ReviewedAt:    input.ReviewedAt,
			TxHash:        input.TxHash,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create application review: %w", err)
		}
		if review.ID == 0 {
			// Already projected on a previous delivery.
			return nil
		}

		result := tx.Model(&schema.PotApplication{}).
			Where("id = ?", input.ApplicationID).
			Updates(map[string]interface{}{
				"current_status":  input.Status,
				"last_updated_at": input.ReviewedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update pot application: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("application %d: %w", input.ApplicationID, domain.ErrEntityNotFound)
		}
		return nil
	})
}

// CreatePotPayouts records the payout lines set by the chef. Re-setting a
// recipient's payout overwrites the amount and token.
func (s *pgStore) CreatePotPayouts(ctx context.Context, input CreatePotPayoutsInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := make([]string, 0, len(input.Payouts))
		for _, p := range input.Payouts {
			accountIDs = append(accountIDs, p.RecipientID)
		}
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		for _, p := range input.Payouts {
			row := schema.PotPayout{
				PotID:       input.PotID,
				RecipientID: p.RecipientID,
				Amount:      p.Amount,
				FtID:        p.FtID,
				TxHash:      input.TxHash,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "pot_id"}, {Name: "recipient_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"amount", "ft_id", "tx_hash"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create pot payout: %w", err)
			}

			if err := createActivityTx(tx, ActivityInput{
				SignerID:     input.SignerID,
				ReceiverID:   input.PotID,
				Timestamp:    input.Timestamp,
				Type:         domain.ActivitySetPayouts,
				ActionResult: p.RecipientID,
				TxHash:       input.TxHash,
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

// FulfillPotPayout marks the payout matched by (pot_id, recipient_id) paid
func (s *pgStore) FulfillPotPayout(ctx context.Context, potID, recipientID, amount string, paidAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.PotPayout{}).
		Where("pot_id = ? AND recipient_id = ?", potID, recipientID).
		Updates(map[string]interface{}{
			"amount":  amount,
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to fulfill pot payout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payout for %s on %s: %w", recipientID, potID, domain.ErrEntityNotFound)
	}
	return nil
}

// CreatePayoutChallenge appends a payout challenge
func (s *pgStore) CreatePayoutChallenge(ctx context.Context, input CreatePayoutChallengeInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertAccountsTx(tx, input.ChallengerID); err != nil {
			return err
		}

		challenge := schema.PotPayoutChallenge{
			ChallengerID: input.ChallengerID,
			PotID:        input.PotID,
			Message:      input.Message,
			CreatedAt:    input.CreatedAt,
			TxHash:       input.TxHash,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).Create(&challenge).Error; err != nil {
			return fmt.Errorf("failed to create payout challenge: %w", err)
		}

		return createActivityTx(tx, input.Activity)
	})
}

// CreateDonation inserts a donation row and atomically folds it into the pot
// and recipient aggregates in a single transaction. The detail row and the
// counters move together or not at all; a redelivered receipt is detected by
// the tx_hash conflict and produces no side effects.
func (s *pgStore) CreateDonation(ctx context.Context, input CreateDonationInput) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountIDs := []string{input.DonorID}
		if input.RecipientID != nil {
			accountIDs = append(accountIDs, *input.RecipientID)
		}
		if input.ReferrerID != nil {
			accountIDs = append(accountIDs, *input.ReferrerID)
		}
		if err := upsertAccountsTx(tx, accountIDs...); err != nil {
			return err
		}

		donation := schema.Donation{
			DonorID:        input.DonorID,
			PotID:          input.PotID,
			RecipientID:    input.RecipientID,
			TotalAmount:    input.TotalAmount,
			TotalAmountUSD: input.TotalAmountUSD,
			NetAmount:      input.NetAmount,
			NetAmountUSD:   input.NetAmountUSD,
			ProtocolFee:    input.ProtocolFee,
			ReferrerID:     input.ReferrerID,
			ReferrerFee:    input.ReferrerFee,
			FtID:           input.FtID,
			Message:        input.Message,
			DonatedAt:      input.DonatedAt,
			MatchingPool:   input.MatchingPool,
			TxHash:         input.TxHash,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&donation).Error; err != nil {
			return fmt.Errorf("failed to create donation: %w", err)
		}
		if donation.ID == 0 {
			// Already projected on a previous delivery; leave the aggregates alone.
			return nil
		}

		if input.PotID != nil {
			var updates map[string]interface{}
			if input.MatchingPool {
				updates = map[string]interface{}{
					"total_matching_pool":           gorm.Expr("total_matching_pool + CAST(? AS numeric)", input.TotalAmount),
					"total_matching_pool_usd":       gorm.Expr("total_matching_pool_usd + ?", input.TotalAmountUSD),
					"matching_pool_balance":         gorm.Expr("matching_pool_balance + CAST(? AS numeric)", input.NetAmount),
					"matching_pool_donations_count": gorm.Expr("matching_pool_donations_count + 1"),
				}
			} else {
				updates = map[string]interface{}{
					"total_public_donations":     gorm.Expr("total_public_donations + CAST(? AS numeric)", input.TotalAmount),
					"total_public_donations_usd": gorm.Expr("total_public_donations_usd + ?", input.TotalAmountUSD),
					"public_donations_count":     gorm.Expr("public_donations_count + 1"),
				}
			}
			result := tx.Model(&schema.Pot{}).Where("id = ?", *input.PotID).Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("failed to update pot totals: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("pot %s: %w", *input.PotID, domain.ErrEntityNotFound)
			}
		}

		if input.RecipientID != nil {
			result := tx.Model(&schema.Account{}).
				Where("id = ?", *input.RecipientID).
				Updates(map[string]interface{}{
					"total_donations_usd": gorm.Expr("total_donations_usd + ?", input.TotalAmountUSD),
					"donors_count":        gorm.Expr("donors_count + 1"),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update recipient totals: %w", result.Error)
			}
		}

		if err := createActivityTx(tx, input.Activity); err != nil {
			return err
		}

		created = true
		return nil
	})
	return created, err
}

// GetCachedTokenPrice returns the last cached USD price for a token
func (s *pgStore) GetCachedTokenPrice(ctx context.Context, tokenID string) (*schema.TokenHistoricalData, error) {
	var cached schema.TokenHistoricalData
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&cached).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached token price: %w", err)
	}
	return &cached, nil
}

// UpsertTokenPrice merge-overwrites the cached price for a token
func (s *pgStore) UpsertTokenPrice(ctx context.Context, tokenID string, priceDate time.Time, priceUSD float64, updatedAt time.Time) error {
	row := schema.TokenHistoricalData{
		TokenID:       tokenID,
		PriceDate:     priceDate,
		PriceUSD:      priceUSD,
		LastUpdatedAt: updatedAt,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_date", "price_usd", "last_updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert token price: %w", err)
	}
	return nil
}

// GetBlockCursor retrieves the last processed block height
func (s *pgStore) GetBlockCursor(ctx context.Context) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", blockCursorKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	height, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}
	return height, nil
}

// SetBlockCursor stores the last processed block height
func (s *pgStore) SetBlockCursor(ctx context.Context, height uint64) error {
	kv := schema.KeyValueStore{
		Key:   blockCursorKey,
		Value: strconv.FormatUint(height, 10),
	}
	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
