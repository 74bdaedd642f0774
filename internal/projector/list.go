package projector

import (
	"context"
	"fmt"
	"time"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/store"
	"github.com/potlock/indexer/internal/store/schema"
)

// handleInitList projects a registry initialization. Later registry revisions
// return the stored state from "new", which is authoritative; the first
// deployment returned nothing, so its argument payload is read instead. Both
// carry the same shape.
func (p *Projector) handleInitList(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	raw, err := successValue(block, action, call)
	if err != nil {
		return err
	}

	var result *domain.ListInitResult
	if len(raw) > 0 {
		result, err = decodePayload[domain.ListInitResult](raw, action.ReceiptID, call.MethodName)
	} else {
		result, err = decodeArgs[domain.ListInitResult](action, call)
	}
	if err != nil {
		return err
	}

	status := result.DefaultRegistrationStatus
	if status == "" {
		status = domain.RegistrationApproved
	}

	return p.store.CreateList(ctx, store.CreateListInput{
		List: schema.List{
			ID:                        action.ReceiverID,
			OwnerID:                   result.Owner,
			Name:                      result.Name,
			Description:               result.Description,
			CoverImageURL:             result.CoverImageURL,
			DefaultRegistrationStatus: string(status),
			TxHash:                    action.ReceiptID,
		},
		Admins: result.Admins,
	})
}

// handleRegister projects a single registration. The new row takes the list's
// current default status; the registrant defaults to the signer.
func (p *Projector) handleRegister(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.RegisterArgs](action, call)
	if err != nil {
		return err
	}

	registrant := action.SignerID
	if args.ProjectID != nil && *args.ProjectID != "" {
		registrant = *args.ProjectID
	}

	list, err := p.store.GetListByID(ctx, action.ReceiverID)
	if err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("register on unknown list %s: %w", action.ReceiverID, domain.ErrEntityNotFound)
	}

	return p.store.CreateListRegistrations(ctx, store.CreateListRegistrationsInput{
		ListID: action.ReceiverID,
		Registrations: []store.ListRegistrationInput{{
			RegistrantID: registrant,
			Status:       list.DefaultRegistrationStatus,
			SubmittedAt:  blockTime,
		}},
		TxHash: action.ReceiptID,
		Activity: store.ActivityInput{
			SignerID:     action.SignerID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    blockTime,
			Type:         domain.ActivityRegister,
			ActionResult: registrant,
			TxHash:       action.ReceiptID,
		},
	})
}

// handleRegisterBatch projects a batch registration from the decoded result
// payload, which carries one row per registrant with server-assigned statuses.
func (p *Projector) handleRegisterBatch(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	raw, err := successValue(block, action, call)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return domain.NewDecodeError(action.ReceiptID, call.MethodName, fmt.Errorf("receipt carries no success value"))
	}
	rows, err := decodePayload[[]domain.RegistrationResult](raw, action.ReceiptID, call.MethodName)
	if err != nil {
		return err
	}
	if len(*rows) == 0 {
		return domain.NewDecodeError(action.ReceiptID, call.MethodName, fmt.Errorf("empty registration batch"))
	}

	list, err := p.store.GetListByID(ctx, action.ReceiverID)
	if err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("register_batch on unknown list %s: %w", action.ReceiverID, domain.ErrEntityNotFound)
	}

	registrations := make([]store.ListRegistrationInput, 0, len(*rows))
	for i := range *rows {
		row := &(*rows)[i]
		if err := row.Validate(); err != nil {
			return domain.NewDecodeError(action.ReceiptID, call.MethodName, err)
		}
		reg := store.ListRegistrationInput{
			RegistrantID:    row.RegistrantID,
			Status:          list.DefaultRegistrationStatus,
			SubmittedAt:     blockTime,
			RegistrantNotes: row.RegistrantNote,
			AdminNotes:      row.AdminNote,
		}
		if row.Status != "" {
			reg.Status = string(row.Status)
		}
		if row.SubmittedMs != 0 {
			reg.SubmittedAt = row.SubmittedMs.Time()
		}
		if row.UpdatedMs != 0 {
			t := row.UpdatedMs.Time()
			reg.UpdatedAt = &t
		}
		registrations = append(registrations, reg)
	}

	return p.store.CreateListRegistrations(ctx, store.CreateListRegistrationsInput{
		ListID:        action.ReceiverID,
		Registrations: registrations,
		TxHash:        action.ReceiptID,
		Activity: store.ActivityInput{
			SignerID:     action.SignerID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    blockTime,
			Type:         domain.ActivityRegisterBatch,
			ActionResult: action.ReceiverID,
			TxHash:       action.ReceiptID,
		},
	})
}

func (p *Projector) handleProjectStatus(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.ProjectStatusArgs](action, call)
	if err != nil {
		return err
	}

	return p.store.UpdateListRegistration(ctx, action.ReceiverID, args.ProjectID, store.ListRegistrationPatch{
		Status:     string(args.Status),
		AdminNotes: args.ReviewNotes,
		UpdatedAt:  blockTime,
	})
}

func (p *Projector) handleDefaultProjectStatus(ctx context.Context, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.DefaultStatusArgs](action, call)
	if err != nil {
		return err
	}
	return p.store.SetListDefaultRegistrationStatus(ctx, action.ReceiverID, string(args.Status))
}

func (p *Projector) handleRemoveListAdmins(ctx context.Context, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	args, err := decodeArgs[domain.RemoveAdminsArgs](action, call)
	if err != nil {
		return err
	}

	return p.store.RemoveListAdmins(ctx, action.ReceiverID, args.Admins, store.ActivityInput{
		SignerID:     action.SignerID,
		ReceiverID:   action.ReceiverID,
		Timestamp:    blockTime,
		Type:         domain.ActivityRemoveListAdmins,
		ActionResult: action.ReceiverID,
		TxHash:       action.ReceiptID,
	})
}

func (p *Projector) handleUpvote(ctx context.Context, blockTime time.Time, action domain.Action) error {
	return p.store.UpvoteList(ctx, action.ReceiverID, store.ActivityInput{
		SignerID:     action.SignerID,
		ReceiverID:   action.ReceiverID,
		Timestamp:    blockTime,
		Type:         domain.ActivityUpvote,
		ActionResult: action.ReceiverID,
		TxHash:       action.ReceiptID,
	})
}
