package projector

import (
	"context"
	"time"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store"
)

func (p *Projector) handleSetPayouts(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.PayoutsArgs](action, call)
	if err != nil {
		return err
	}

	payouts := make([]store.PotPayoutInput, 0, len(args.Payouts))
	for _, line := range args.Payouts {
		ftID := domain.NativeTokenID
		if line.FtID != nil && *line.FtID != "" {
			ftID = *line.FtID
		}
		payouts = append(payouts, store.PotPayoutInput{
			RecipientID: line.ProjectID,
			Amount:      line.Amount,
			FtID:        ftID,
		})
	}

	return p.store.CreatePotPayouts(ctx, store.CreatePotPayoutsInput{
		PotID:     action.ReceiverID,
		Payouts:   payouts,
		TxHash:    action.ReceiptID,
		SignerID:  action.SignerID,
		Timestamp: blockTime,
	})
}

func (p *Projector) handleFulfillPayout(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.FulfillPayoutArgs](action, call)
	if err != nil {
		return err
	}

	paidAt := blockTime
	if args.PaidAt != 0 {
		paidAt = args.PaidAt.Time()
	}
	return p.store.FulfillPotPayout(ctx, action.ReceiverID, args.ProjectID, args.Amount, paidAt)
}

func (p *Projector) handlePayoutChallenge(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.ChallengeArgs](action, call)
	if err != nil {
		return err
	}

	return p.store.CreatePayoutChallenge(ctx, store.CreatePayoutChallengeInput{
		ChallengerID: action.SignerID,
		PotID:        action.ReceiverID,
		Message:      args.Reason,
		CreatedAt:    blockTime,
		TxHash:       action.ReceiptID,
		Activity: store.ActivityInput{
			SignerID:     action.SignerID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    blockTime,
			Type:         domain.ActivityChallengePayout,
			ActionResult: action.ReceiverID,
			TxHash:       action.ReceiptID,
		},
	})
}
