package projector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/potlock/indexer/internal/domain"
)

// Tracked method names. Anything else that survives the filter is a contract
// call this indexer does not project.
const (
	methodNew                     = "new"
	methodAssertCanApplyCallback  = "assert_can_apply_callback"
	methodHandleApply             = "handle_apply"
	methodDonate                  = "donate"
	methodHandleProtocolFee       = "handle_protocol_fee_callback"
	methodRegister                = "register"
	methodRegisterBatch           = "register_batch"
	methodSetApplicationStatus    = "chef_set_application_status"
	methodSetDefaultProjectStatus = "admin_set_default_project_status"
	methodSetProjectStatus        = "admin_set_project_status"
	methodSetPayouts              = "chef_set_payouts"
	methodChallengePayouts        = "challenge_payouts"
	methodTransferPayoutCallback  = "transfer_payout_callback"
	methodRemoveAdmins            = "owner_remove_admins"
	methodUpvote                  = "upvote"
)

func (p *Projector) dispatch(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action, call *domain.FunctionCall) error {
	switch call.MethodName {
	case methodNew:
		switch p.classifier.ClassifyNew(action.ReceiverID) {
		case domain.NewTargetPotFactory:
			return p.handleDeployFactory(ctx, blockTime, action, call)
		case domain.NewTargetList:
			return p.handleInitList(ctx, block, blockTime, action, call)
		default:
			return p.handleDeployPot(ctx, blockTime, action, call)
		}
	case methodAssertCanApplyCallback:
		return p.handlePotApplication(ctx, blockTime, action, call)
	case methodHandleApply:
		// The user-side apply call and this entry half carry no application
		// payload; assert_can_apply_callback holds the authoritative record.
		return nil
	case methodDonate:
		return p.handleDonation(ctx, block, blockTime, action, call, true)
	case methodHandleProtocolFee:
		return p.handleDonation(ctx, block, blockTime, action, call, false)
	case methodRegister:
		return p.handleRegister(ctx, blockTime, action, call)
	case methodRegisterBatch:
		return p.handleRegisterBatch(ctx, block, blockTime, action, call)
	case methodSetApplicationStatus:
		return p.handleApplicationReview(ctx, block, blockTime, action, call)
	case methodSetDefaultProjectStatus:
		return p.handleDefaultProjectStatus(ctx, action, call)
	case methodSetProjectStatus:
		return p.handleProjectStatus(ctx, blockTime, action, call)
	case methodSetPayouts:
		return p.handleSetPayouts(ctx, blockTime, action, call)
	case methodChallengePayouts:
		return p.handlePayoutChallenge(ctx, blockTime, action, call)
	case methodTransferPayoutCallback:
		return p.handleFulfillPayout(ctx, blockTime, action, call)
	case methodRemoveAdmins:
		return p.handleRemoveListAdmins(ctx, blockTime, action, call)
	case methodUpvote:
		return p.handleUpvote(ctx, blockTime, action)
	}
	return nil
}

type validator interface {
	Validate() error
}

// decodePayload unmarshals raw JSON into T and runs its validation when the
// type declares any. Failures are wrapped so callers can skip the single
// offending action.
func decodePayload[T any](raw []byte, receiptID, method string) (*T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, domain.NewDecodeError(receiptID, method, err)
	}
	if v, ok := any(&value).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, domain.NewDecodeError(receiptID, method, err)
		}
	}
	return &value, nil
}

// decodeArgs decodes a function call's base64 argument blob.
func decodeArgs[T any](action domain.Action, call *domain.FunctionCall) (*T, error) {
	raw, err := call.DecodedArgs()
	if err != nil {
		return nil, domain.NewDecodeError(action.ReceiptID, call.MethodName, err)
	}
	return decodePayload[T](raw, action.ReceiptID, call.MethodName)
}

// successValue returns the decoded success value of the action's receipt, or
// nil when the receipt finished without a value payload.
func successValue(block *domain.Block, action domain.Action, call *domain.FunctionCall) ([]byte, error) {
	receipt := block.ReceiptByID(action.ReceiptID)
	if receipt == nil {
		return nil, domain.NewDecodeError(action.ReceiptID, call.MethodName, fmt.Errorf("receipt not present in block"))
	}
	raw, err := receipt.Status.DecodedSuccessValue()
	if err != nil {
		return nil, domain.NewDecodeError(action.ReceiptID, call.MethodName, err)
	}
	return raw, nil
}

// decodeResult decodes the receipt's success value into T. The projection of
// callback methods depends on it, so an absent value is a decode failure.
func decodeResult[T any](block *domain.Block, action domain.Action, call *domain.FunctionCall) (*T, error) {
	raw, err := successValue(block, action, call)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.NewDecodeError(action.ReceiptID, call.MethodName, fmt.Errorf("receipt carries no success value"))
	}
	return decodePayload[T](raw, action.ReceiptID, call.MethodName)
}
