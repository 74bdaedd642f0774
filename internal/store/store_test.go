package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestActivity(activityType domain.ActivityType, signer, receiver, result, txHash string) ActivityInput {
	return ActivityInput{
		SignerID:     signer,
		ReceiverID:   receiver,
		Timestamp:    time.Now().UTC().Truncate(time.Microsecond),
		Type:         activityType,
		ActionResult: result,
		TxHash:       txHash,
	}
}

func buildTestFactory(id string) CreatePotFactoryInput {
	return CreatePotFactoryInput{
		ID:                          id,
		OwnerID:                     "owner.near",
		DeployedAt:                  time.Now().UTC().Truncate(time.Microsecond),
		SourceMetadata:              []byte(`{"version":"0.1.0"}`),
		ProtocolFeeBasisPoints:      200,
		ProtocolFeeRecipientAccount: "fees.potlock.near",
		RequireWhitelist:            true,
		Admins:                      []string{"admin1.near", "admin2.near"},
		WhitelistedDeployers:        []string{"deployer.near"},
	}
}

func buildTestPot(id, factoryID, txHash string) CreatePotInput {
	now := time.Now().UTC().Truncate(time.Microsecond)
	chef := "chef.near"
	return CreatePotInput{
		Pot: schema.Pot{
			ID:                            id,
			PotFactoryID:                  factoryID,
			DeployerID:                    "deployer.near",
			DeployedAt:                    now,
			SourceMetadata:                []byte(`{"version":"0.1.0"}`),
			OwnerID:                       "owner.near",
			ChefID:                        &chef,
			Name:                          "Test Round",
			Description:                   "quadratic funding round",
			MaxApprovedApplicants:         25,
			ApplicationStart:              now,
			ApplicationEnd:                now.Add(24 * time.Hour),
			MatchingRoundStart:            now.Add(24 * time.Hour),
			MatchingRoundEnd:              now.Add(48 * time.Hour),
			MinMatchingPoolDonationAmount: "0",
			TotalMatchingPool:             "0",
			MatchingPoolBalance:           "0",
			TotalPublicDonations:          "0",
			TxHash:                        txHash,
		},
		Admins:   []string{"potadmin.near"},
		Activity: buildTestActivity(domain.ActivityDeployPot, "deployer.near", id, id, txHash),
	}
}

func buildTestList(id, txHash string) CreateListInput {
	return CreateListInput{
		List: schema.List{
			ID:                        id,
			OwnerID:                   "owner.near",
			Name:                      "Potlock Registry",
			DefaultRegistrationStatus: string(domain.RegistrationApproved),
			TxHash:                    txHash,
		},
		Admins: []string{"admin1.near", "admin2.near"},
	}
}

func buildTestDonation(donorID, txHash string) CreateDonationInput {
	recipient := "project.near"
	return CreateDonationInput{
		DonorID:        donorID,
		RecipientID:    &recipient,
		TotalAmount:    "1000000000000000000000000",
		TotalAmountUSD: 5.0,
		NetAmount:      "980000000000000000000000",
		NetAmountUSD:   4.9,
		ProtocolFee:    "20000000000000000000000",
		FtID:           domain.NativeTokenID,
		DonatedAt:      time.Now().UTC().Truncate(time.Microsecond),
		MatchingPool:   false,
		TxHash:         txHash,
		Activity:       buildTestActivity(domain.ActivityDonateDirect, donorID, "donate.potlock.near", txHash, txHash),
	}
}

// countActivities inspects the activity feed directly; the Store interface has
// no read path for activities because nothing in the indexer consumes them.
func countActivities(t *testing.T, s Store, txHash string) int64 {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "store is not a pgStore")
	var count int64
	require.NoError(t, pg.db.Model(&schema.Activity{}).Where("tx_hash = ?", txHash).Count(&count).Error)
	return count
}

// =============================================================================
// Accounts
// =============================================================================

func testAccounts(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("get non-existent account returns nil", func(t *testing.T) {
		account, err := s.GetAccountByID(ctx, "ghost.near")
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("upsert creates rows with zeroed aggregates", func(t *testing.T) {
		require.NoError(t, s.UpsertAccounts(ctx, "alice.near", "bob.near"))

		account, err := s.GetAccountByID(ctx, "alice.near")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "alice.near", account.ID)
		assert.Zero(t, account.TotalDonationsUSD)
		assert.Zero(t, account.DonorsCount)
	})

	t.Run("re-upsert is a no-op", func(t *testing.T) {
		require.NoError(t, s.UpsertAccounts(ctx, "alice.near"))
		require.NoError(t, s.UpsertAccounts(ctx, "alice.near", "alice.near", ""))

		account, err := s.GetAccountByID(ctx, "alice.near")
		require.NoError(t, err)
		require.NotNil(t, account)
	})
}

// =============================================================================
// Pot factories
// =============================================================================

func testCreatePotFactory(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create factory with memberships", func(t *testing.T) {
		input := buildTestFactory("v1.potfactory.potlock.near")
		require.NoError(t, s.CreatePotFactory(ctx, input))

		// Referenced accounts exist afterwards.
		for _, id := range []string{"owner.near", "fees.potlock.near", "admin1.near", "deployer.near"} {
			account, err := s.GetAccountByID(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, account, "account %s should exist", id)
		}
	})

	t.Run("redelivered deployment is tolerated", func(t *testing.T) {
		input := buildTestFactory("v2.potfactory.potlock.near")
		require.NoError(t, s.CreatePotFactory(ctx, input))
		require.NoError(t, s.CreatePotFactory(ctx, input))
	})
}

// =============================================================================
// Pots
// =============================================================================

func testPots(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("get non-existent pot returns nil", func(t *testing.T) {
		pot, err := s.GetPotByID(ctx, "ghost.v1.potfactory.potlock.near")
		require.NoError(t, err)
		assert.Nil(t, pot)
	})

	t.Run("create pot with zeroed totals", func(t *testing.T) {
		input := buildTestPot("round1.v1.potfactory.potlock.near", "v1.potfactory.potlock.near", "tx-pot-1")
		require.NoError(t, s.CreatePot(ctx, input))

		pot, err := s.GetPotByID(ctx, input.Pot.ID)
		require.NoError(t, err)
		require.NotNil(t, pot)
		assert.Equal(t, "v1.potfactory.potlock.near", pot.PotFactoryID)
		assert.Equal(t, "Test Round", pot.Name)
		assert.Equal(t, "0", pot.TotalMatchingPool)
		assert.Zero(t, pot.MatchingPoolDonationsCount)
		assert.Zero(t, pot.PublicDonationsCount)
		assert.EqualValues(t, 1, countActivities(t, s, "tx-pot-1"))
	})

	t.Run("redelivered deployment does not duplicate the activity", func(t *testing.T) {
		input := buildTestPot("round2.v1.potfactory.potlock.near", "v1.potfactory.potlock.near", "tx-pot-2")
		require.NoError(t, s.CreatePot(ctx, input))
		require.NoError(t, s.CreatePot(ctx, input))
		assert.EqualValues(t, 1, countActivities(t, s, "tx-pot-2"))
	})
}

// =============================================================================
// Lists
// =============================================================================

func testLists(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and get list", func(t *testing.T) {
		input := buildTestList("registry.potlock.near", "tx-list-1")
		require.NoError(t, s.CreateList(ctx, input))

		list, err := s.GetListByID(ctx, "registry.potlock.near")
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.Equal(t, string(domain.RegistrationApproved), list.DefaultRegistrationStatus)
		assert.Zero(t, list.TotalUpvotesCount)
	})

	t.Run("get non-existent list returns nil", func(t *testing.T) {
		list, err := s.GetListByID(ctx, "ghost.near")
		require.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("set default registration status", func(t *testing.T) {
		require.NoError(t, s.SetListDefaultRegistrationStatus(ctx, "registry.potlock.near", string(domain.RegistrationPending)))

		list, err := s.GetListByID(ctx, "registry.potlock.near")
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.Equal(t, string(domain.RegistrationPending), list.DefaultRegistrationStatus)
	})

	t.Run("set default status on missing list fails", func(t *testing.T) {
		err := s.SetListDefaultRegistrationStatus(ctx, "ghost.near", string(domain.RegistrationPending))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("upvote increments the counter", func(t *testing.T) {
		require.NoError(t, s.UpvoteList(ctx, "registry.potlock.near",
			buildTestActivity(domain.ActivityUpvote, "alice.near", "registry.potlock.near", "registry.potlock.near", "tx-upvote-1")))
		require.NoError(t, s.UpvoteList(ctx, "registry.potlock.near",
			buildTestActivity(domain.ActivityUpvote, "bob.near", "registry.potlock.near", "registry.potlock.near", "tx-upvote-2")))

		list, err := s.GetListByID(ctx, "registry.potlock.near")
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.EqualValues(t, 2, list.TotalUpvotesCount)
	})

	t.Run("redelivered upvote does not double count", func(t *testing.T) {
		require.NoError(t, s.UpvoteList(ctx, "registry.potlock.near",
			buildTestActivity(domain.ActivityUpvote, "alice.near", "registry.potlock.near", "registry.potlock.near", "tx-upvote-1")))

		list, err := s.GetListByID(ctx, "registry.potlock.near")
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.EqualValues(t, 2, list.TotalUpvotesCount)
	})

	t.Run("upvote on missing list fails", func(t *testing.T) {
		err := s.UpvoteList(ctx, "ghost.near",
			buildTestActivity(domain.ActivityUpvote, "alice.near", "ghost.near", "ghost.near", "tx-upvote-3"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("remove list admins", func(t *testing.T) {
		require.NoError(t, s.RemoveListAdmins(ctx, "registry.potlock.near", []string{"admin1.near"},
			buildTestActivity(domain.ActivityRemoveListAdmins, "owner.near", "registry.potlock.near", "admin1.near", "tx-rm-admins-1")))
		assert.EqualValues(t, 1, countActivities(t, s, "tx-rm-admins-1"))
	})
}

// =============================================================================
// List registrations
// =============================================================================

func testListRegistrations(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, s.CreateList(ctx, buildTestList("registry.potlock.near", "tx-list-1")))

	t.Run("single registration", func(t *testing.T) {
		input := CreateListRegistrationsInput{
			ListID: "registry.potlock.near",
			Registrations: []ListRegistrationInput{{
				RegistrantID: "project-a.near",
				Status:       string(domain.RegistrationApproved),
				SubmittedAt:  now,
			}},
			TxHash:   "tx-reg-1",
			Activity: buildTestActivity(domain.ActivityRegister, "project-a.near", "registry.potlock.near", "project-a.near", "tx-reg-1"),
		}
		require.NoError(t, s.CreateListRegistrations(ctx, input))
	})

	t.Run("batch registration", func(t *testing.T) {
		input := CreateListRegistrationsInput{
			ListID: "registry.potlock.near",
			Registrations: []ListRegistrationInput{
				{RegistrantID: "project-b.near", Status: string(domain.RegistrationPending), SubmittedAt: now},
				{RegistrantID: "project-c.near", Status: string(domain.RegistrationPending), SubmittedAt: now},
			},
			TxHash:   "tx-reg-2",
			Activity: buildTestActivity(domain.ActivityRegisterBatch, "admin1.near", "registry.potlock.near", "tx-reg-2", "tx-reg-2"),
		}
		require.NoError(t, s.CreateListRegistrations(ctx, input))
	})

	t.Run("redelivered registration keeps the original row", func(t *testing.T) {
		input := CreateListRegistrationsInput{
			ListID: "registry.potlock.near",
			Registrations: []ListRegistrationInput{{
				RegistrantID: "project-a.near",
				Status:       string(domain.RegistrationBlacklisted),
				SubmittedAt:  now,
			}},
			TxHash:   "tx-reg-1",
			Activity: buildTestActivity(domain.ActivityRegister, "project-a.near", "registry.potlock.near", "project-a.near", "tx-reg-1"),
		}
		require.NoError(t, s.CreateListRegistrations(ctx, input))

		pg := s.(*pgStore)
		var row schema.ListRegistration
		require.NoError(t, pg.db.
			Where("list_id = ? AND registrant_id = ?", "registry.potlock.near", "project-a.near").
			First(&row).Error)
		assert.Equal(t, string(domain.RegistrationApproved), row.Status)
		assert.EqualValues(t, 1, countActivities(t, s, "tx-reg-1"))
	})

	t.Run("status change patches the row", func(t *testing.T) {
		notes := "missing KYC"
		patch := ListRegistrationPatch{
			Status:     string(domain.RegistrationRejected),
			AdminNotes: &notes,
			UpdatedAt:  now.Add(time.Hour),
		}
		require.NoError(t, s.UpdateListRegistration(ctx, "registry.potlock.near", "project-b.near", patch))

		pg := s.(*pgStore)
		var row schema.ListRegistration
		require.NoError(t, pg.db.
			Where("list_id = ? AND registrant_id = ?", "registry.potlock.near", "project-b.near").
			First(&row).Error)
		assert.Equal(t, string(domain.RegistrationRejected), row.Status)
		require.NotNil(t, row.AdminNotes)
		assert.Equal(t, notes, *row.AdminNotes)
		require.NotNil(t, row.UpdatedAt)
	})

	t.Run("status change on missing registration fails", func(t *testing.T) {
		err := s.UpdateListRegistration(ctx, "registry.potlock.near", "ghost.near", ListRegistrationPatch{
			Status:    string(domain.RegistrationRejected),
			UpdatedAt: now,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

// =============================================================================
// Pot applications and reviews
// =============================================================================

func testPotApplications(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	potID := "round1.v1.potfactory.potlock.near"

	require.NoError(t, s.CreatePot(ctx, buildTestPot(potID, "v1.potfactory.potlock.near", "tx-pot-1")))

	t.Run("get non-existent application returns nil", func(t *testing.T) {
		application, err := s.GetPotApplicationByApplicant(ctx, potID, "ghost.near")
		require.NoError(t, err)
		assert.Nil(t, application)
	})

	t.Run("submit application", func(t *testing.T) {
		message := "please fund us"
		input := CreatePotApplicationInput{
			PotID:       potID,
			ApplicantID: "project-a.near",
			Message:     &message,
			Status:      "Pending",
			SubmittedAt: now,
			TxHash:      "tx-app-1",
			Activity:    buildTestActivity(domain.ActivitySubmitApplication, "project-a.near", potID, "project-a.near", "tx-app-1"),
		}
		require.NoError(t, s.CreatePotApplication(ctx, input))
		require.NoError(t, s.CreatePotApplication(ctx, input))

		application, err := s.GetPotApplicationByApplicant(ctx, potID, "project-a.near")
		require.NoError(t, err)
		require.NotNil(t, application)
		assert.Equal(t, "Pending", application.CurrentStatus)
		assert.Nil(t, application.LastUpdatedAt)
		assert.EqualValues(t, 1, countActivities(t, s, "tx-app-1"))
	})

	t.Run("review patches the application and appends an audit row", func(t *testing.T) {
		application, err := s.GetPotApplicationByApplicant(ctx, potID, "project-a.near")
		require.NoError(t, err)
		require.NotNil(t, application)

		notes := "looks good"
		reviewedAt := now.Add(time.Hour)
		require.NoError(t, s.ReviewPotApplication(ctx, ReviewPotApplicationInput{
			ApplicationID: application.ID,
			ReviewerID:    "chef.near",
			Notes:         &notes,
			Status:        "Approved",
			ReviewedAt:    reviewedAt,
			TxHash:        "tx-review-1",
		}))

		application, err = s.GetPotApplicationByApplicant(ctx, potID, "project-a.near")
		require.NoError(t, err)
		require.NotNil(t, application)
		assert.Equal(t, "Approved", application.CurrentStatus)
		require.NotNil(t, application.LastUpdatedAt)
		assert.WithinDuration(t, reviewedAt, *application.LastUpdatedAt, time.Second)
	})

	t.Run("redelivered review leaves the application untouched", func(t *testing.T) {
		application, err := s.GetPotApplicationByApplicant(ctx, potID, "project-a.near")
		require.NoError(t, err)
		require.NotNil(t, application)

		require.NoError(t, s.ReviewPotApplication(ctx, ReviewPotApplicationInput{
			ApplicationID: application.ID,
			ReviewerID:    "chef.near",
			Status:        "Rejected",
			ReviewedAt:    now.Add(2 * time.Hour),
			TxHash:        "tx-review-1",
		}))

		application, err = s.GetPotApplicationByApplicant(ctx, potID, "project-a.near")
		require.NoError(t, err)
		require.NotNil(t, application)
		assert.Equal(t, "Approved", application.CurrentStatus)
	})

	t.Run("review of missing application fails", func(t *testing.T) {
		err := s.ReviewPotApplication(ctx, ReviewPotApplicationInput{
			ApplicationID: 999999,
			ReviewerID:    "chef.near",
			Status:        "Approved",
			ReviewedAt:    now,
			TxHash:        "tx-review-2",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

// =============================================================================
// Pot payouts and challenges
// =============================================================================

func testPotPayouts(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	potID := "round1.v1.potfactory.potlock.near"

	require.NoError(t, s.CreatePot(ctx, buildTestPot(potID, "v1.potfactory.potlock.near", "tx-pot-1")))

	t.Run("set payouts creates one line per recipient", func(t *testing.T) {
		input := CreatePotPayoutsInput{
			PotID: potID,
			Payouts: []PotPayoutInput{
				{RecipientID: "project-a.near", Amount: "1000", FtID: domain.NativeTokenID},
				{RecipientID: "project-b.near", Amount: "2000", FtID: domain.NativeTokenID},
			},
			TxHash:    "tx-payouts-1",
			SignerID:  "chef.near",
			Timestamp: now,
		}
		require.NoError(t, s.CreatePotPayouts(ctx, input))
		assert.EqualValues(t, 2, countActivities(t, s, "tx-payouts-1"))
	})

	t.Run("re-setting a recipient's payout overwrites the amount", func(t *testing.T) {
		input := CreatePotPayoutsInput{
			PotID:     potID,
			Payouts:   []PotPayoutInput{{RecipientID: "project-a.near", Amount: "1500", FtID: domain.NativeTokenID}},
			TxHash:    "tx-payouts-2",
			SignerID:  "chef.near",
			Timestamp: now,
		}
		require.NoError(t, s.CreatePotPayouts(ctx, input))

		pg := s.(*pgStore)
		var row schema.PotPayout
		require.NoError(t, pg.db.
			Where("pot_id = ? AND recipient_id = ?", potID, "project-a.near").
			First(&row).Error)
		assert.Equal(t, "1500", row.Amount)
		assert.Equal(t, "tx-payouts-2", row.TxHash)
		assert.Nil(t, row.PaidAt)
	})

	t.Run("fulfill marks the payout paid", func(t *testing.T) {
		paidAt := now.Add(time.Hour)
		require.NoError(t, s.FulfillPotPayout(ctx, potID, "project-a.near", "1500", paidAt))

		pg := s.(*pgStore)
		var row schema.PotPayout
		require.NoError(t, pg.db.
			Where("pot_id = ? AND recipient_id = ?", potID, "project-a.near").
			First(&row).Error)
		require.NotNil(t, row.PaidAt)
		assert.WithinDuration(t, paidAt, *row.PaidAt, time.Second)
	})

	t.Run("fulfill of missing payout fails", func(t *testing.T) {
		err := s.FulfillPotPayout(ctx, potID, "ghost.near", "1", now)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("challenge is appended once per receipt", func(t *testing.T) {
		input := CreatePayoutChallengeInput{
			ChallengerID: "watcher.near",
			PotID:        potID,
			Message:      "payout list excludes eligible projects",
			CreatedAt:    now,
			TxHash:       "tx-challenge-1",
			Activity:     buildTestActivity(domain.ActivityChallengePayout, "watcher.near", potID, potID, "tx-challenge-1"),
		}
		require.NoError(t, s.CreatePayoutChallenge(ctx, input))
		require.NoError(t, s.CreatePayoutChallenge(ctx, input))

		pg := s.(*pgStore)
		var count int64
		require.NoError(t, pg.db.Model(&schema.PotPayoutChallenge{}).
			Where("tx_hash = ?", "tx-challenge-1").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

// =============================================================================
// Donations
// =============================================================================

func testDonations(t *testing.T, s Store) {
	ctx := context.Background()
	potID := "round1.v1.potfactory.potlock.near"

	require.NoError(t, s.CreatePot(ctx, buildTestPot(potID, "v1.potfactory.potlock.near", "tx-pot-1")))

	t.Run("direct donation moves recipient aggregates", func(t *testing.T) {
		created, err := s.CreateDonation(ctx, buildTestDonation("alice.near", "tx-don-1"))
		require.NoError(t, err)
		assert.True(t, created)

		account, err := s.GetAccountByID(ctx, "project.near")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.InDelta(t, 5.0, account.TotalDonationsUSD, 1e-9)
		assert.EqualValues(t, 1, account.DonorsCount)
	})

	t.Run("redelivered donation has no side effects", func(t *testing.T) {
		input := buildTestDonation("alice.near", "tx-don-1")
		created, err := s.CreateDonation(ctx, input)
		require.NoError(t, err)
		assert.False(t, created)

		account, err := s.GetAccountByID(ctx, "project.near")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.InDelta(t, 5.0, account.TotalDonationsUSD, 1e-9)
		assert.EqualValues(t, 1, account.DonorsCount)
		assert.EqualValues(t, 1, countActivities(t, s, "tx-don-1"))
	})

	t.Run("matching pool donation moves matching totals only", func(t *testing.T) {
		input := buildTestDonation("bob.near", "tx-don-2")
		input.RecipientID = nil
		input.PotID = &potID
		input.MatchingPool = true
		input.Activity.Type = domain.ActivityDonatePotMatchingPool
		created, err := s.CreateDonation(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)

		pot, err := s.GetPotByID(ctx, potID)
		require.NoError(t, err)
		require.NotNil(t, pot)
		assert.Equal(t, "1000000000000000000000000", pot.TotalMatchingPool)
		assert.Equal(t, "980000000000000000000000", pot.MatchingPoolBalance)
		assert.InDelta(t, 5.0, pot.TotalMatchingPoolUSD, 1e-9)
		assert.EqualValues(t, 1, pot.MatchingPoolDonationsCount)
		assert.Zero(t, pot.PublicDonationsCount)
	})

	t.Run("public round donation moves public totals and recipient", func(t *testing.T) {
		input := buildTestDonation("carol.near", "tx-don-3")
		input.PotID = &potID
		input.Activity.Type = domain.ActivityDonatePotPublic
		created, err := s.CreateDonation(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)

		pot, err := s.GetPotByID(ctx, potID)
		require.NoError(t, err)
		require.NotNil(t, pot)
		assert.Equal(t, "1000000000000000000000000", pot.TotalPublicDonations)
		assert.InDelta(t, 5.0, pot.TotalPublicDonationsUSD, 1e-9)
		assert.EqualValues(t, 1, pot.PublicDonationsCount)
		// Matching pool totals untouched.
		assert.EqualValues(t, 1, pot.MatchingPoolDonationsCount)

		account, err := s.GetAccountByID(ctx, "project.near")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.InDelta(t, 10.0, account.TotalDonationsUSD, 1e-9)
		assert.EqualValues(t, 2, account.DonorsCount)
	})

	t.Run("donation to missing pot fails", func(t *testing.T) {
		ghost := "ghost.v1.potfactory.potlock.near"
		input := buildTestDonation("dave.near", "tx-don-4")
		input.PotID = &ghost
		created, err := s.CreateDonation(ctx, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
		assert.False(t, created)
	})
}

// =============================================================================
// Token price cache
// =============================================================================

func testTokenPrices(t *testing.T, s Store) {
	ctx := context.Background()
	priceDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("unpriced token returns nil", func(t *testing.T) {
		cached, err := s.GetCachedTokenPrice(ctx, domain.NativeTokenID)
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("upsert and read back", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, s.UpsertTokenPrice(ctx, domain.NativeTokenID, priceDate, 5.25, now))

		cached, err := s.GetCachedTokenPrice(ctx, domain.NativeTokenID)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.InDelta(t, 5.25, cached.PriceUSD, 1e-9)
		assert.Equal(t, priceDate.Format("2006-01-02"), cached.PriceDate.Format("2006-01-02"))
	})

	t.Run("re-upsert overwrites the cached price", func(t *testing.T) {
		later := time.Now().UTC().Truncate(time.Microsecond).Add(time.Hour)
		require.NoError(t, s.UpsertTokenPrice(ctx, domain.NativeTokenID, priceDate.AddDate(0, 0, 1), 6.0, later))

		cached, err := s.GetCachedTokenPrice(ctx, domain.NativeTokenID)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.InDelta(t, 6.0, cached.PriceUSD, 1e-9)
	})
}

// =============================================================================
// Block cursor
// =============================================================================

func testBlockCursor(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("cursor starts at zero", func(t *testing.T) {
		height, err := s.GetBlockCursor(ctx)
		require.NoError(t, err)
		assert.Zero(t, height)
	})

	t.Run("set and advance", func(t *testing.T) {
		require.NoError(t, s.SetBlockCursor(ctx, 100))

		height, err := s.GetBlockCursor(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 100, height)

		require.NoError(t, s.SetBlockCursor(ctx, 101))

		height, err = s.GetBlockCursor(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 101, height)
	})
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Accounts", testAccounts},
		{"CreatePotFactory", testCreatePotFactory},
		{"Pots", testPots},
		{"Lists", testLists},
		{"ListRegistrations", testListRegistrations},
		{"PotApplications", testPotApplications},
		{"PotPayouts", testPotPayouts},
		{"Donations", testDonations},
		{"TokenPrices", testTokenPrices},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
