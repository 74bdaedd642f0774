package projector

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store"
	"github.com/potlock/indexer/internal/store/schema"
)

func (p *Projector) handleDeployFactory(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.FactoryDeployArgs](action, call)
	if err != nil {
		return err
	}

	return p.store.CreatePotFactory(ctx, store.CreatePotFactoryInput{
		ID:                          action.ReceiverID,
		OwnerID:                     args.Owner,
		DeployedAt:                  blockTime,
		SourceMetadata:              args.SourceMetadata,
		ProtocolFeeBasisPoints:      args.ProtocolFeeBasisPoints,
		ProtocolFeeRecipientAccount: args.ProtocolFeeRecipientAccount,
		RequireWhitelist:            args.RequireWhitelist,
		Admins:                      args.Admins,
		WhitelistedDeployers:        args.WhitelistedDeployers,
	})
}

func (p *Projector) handleDeployPot(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.PotDeployArgs](action, call)
	if err != nil {
		return err
	}

	pot := schema.Pot{
		ID:                     action.ReceiverID,
		PotFactoryID:           action.PredecessorID,
		DeployerID:             action.SignerID,
		DeployedAt:             blockTime,
		SourceMetadata:         datatypes.JSON(args.SourceMetadata),
		OwnerID:                args.Owner,
		ChefID:                 args.Chef,
		Name:                   args.PotName,
		Description:            args.PotDescription,
		MaxApprovedApplicants:  args.MaxProjects,
		ApplicationStart:       args.ApplicationStartMs.Time(),
		ApplicationEnd:         args.ApplicationEndMs.Time(),
		MatchingRoundStart:     args.PublicRoundStartMs.Time(),
		MatchingRoundEnd:       args.PublicRoundEndMs.Time(),
		RegistryProvider:       args.RegistryProvider,
		SybilWrapperProvider:   args.SybilWrapperProvider,
		CustomSybilChecks:      args.CustomSybilChecks,
		ProtocolConfigProvider: args.ProtocolConfigProvider,

		CustomMinThresholdScore:            args.CustomMinThresholdScore,
		ReferralFeeMatchingPoolBasisPoints: args.ReferralFeeMatchingPoolBasisPoints,
		ReferralFeePublicRoundBasisPoints:  args.ReferralFeePublicRoundBasisPoints,
		ChefFeeBasisPoints:                 args.ChefFeeBasisPoints,

		TotalMatchingPool:    "0",
		MatchingPoolBalance:  "0",
		TotalPublicDonations: "0",
		TxHash:               action.ReceiptID,
	}
	if args.MinMatchingPoolDonationAmount != nil {
		pot.MinMatchingPoolDonationAmount = *args.MinMatchingPoolDonationAmount
	} else {
		pot.MinMatchingPoolDonationAmount = "0"
	}
	if args.CooldownEndMs != nil {
		t := args.CooldownEndMs.Time()
		pot.CooldownEnd = &t
	}

	return p.store.CreatePot(ctx, store.CreatePotInput{
		Pot:    pot,
		Admins: args.Admins,
		Activity: store.ActivityInput{
			SignerID:     action.SignerID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    blockTime,
			Type:         domain.ActivityDeployPot,
			ActionResult: action.ReceiverID,
			TxHash:       action.ReceiptID,
		},
	})
}
