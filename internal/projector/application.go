package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store"
)

func (p *Projector) handlePotApplication(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.ApplicationArgs](action, call)
	if err != nil {
		return err
	}

	status := args.Status
	if status == "" {
		status = domain.RegistrationPending
	}
	submittedAt := blockTime
	if args.SubmittedAt != 0 {
		submittedAt = args.SubmittedAt.Time()
	}

	return p.store.CreatePotApplication(ctx, store.CreatePotApplicationInput{
		PotID:       action.ReceiverID,
		ApplicantID: args.ProjectID,
		Message:     args.Message,
		Status:      string(status),
		SubmittedAt: submittedAt,
		TxHash:      action.ReceiptID,
		Activity: store.ActivityInput{
			SignerID:     action.SignerID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    blockTime,
			Type:         domain.ActivitySubmitApplication,
			ActionResult: args.ProjectID,
			TxHash:       action.ReceiptID,
		},
	})
}

// handleApplicationReview projects a chef review. The call args name the
// application; the decoded result carries the authoritative post-review state.
func (p *Projector) handleApplicationReview(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.ApplicationArgs](action, call)
	if err != nil {
		return err
	}
	result, err := decodeResult[domain.ApplicationReviewResult](block, action, call)
	if err != nil {
		return err
	}

	application, err := p.store.GetPotApplicationByApplicant(ctx, action.ReceiverID, args.ProjectID)
	if err != nil {
		return err
	}
	if application == nil {
		return fmt.Errorf("review for unknown application %s on pot %s: %w",
			args.ProjectID, action.ReceiverID, domain.ErrEntityNotFound)
	}

	reviewedAt := blockTime
	if result.UpdatedAt != 0 {
		reviewedAt = result.UpdatedAt.Time()
	}

	return p.store.ReviewPotApplication(ctx, store.ReviewPotApplicationInput{
		ApplicationID: application.ID,
		ReviewerID:    action.SignerID,
		Notes:         result.Notes,
		Status:        string(result.Status),
		ReviewedAt:    reviewedAt,
		TxHash:        action.ReceiptID,
	})
}
