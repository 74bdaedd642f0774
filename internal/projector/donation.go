package projector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/logger"
	"github.com/potlock/indexer/internal/store"
)

const donationEventName = "donation"

// handleDonation projects one valued donation. Direct donations enter through
// the donate contract and read the NEP-297 event attached to the receipt;
// pot-routed donations enter through handle_protocol_fee_callback on the pot
// and read the decoded success value.
func (p *Projector) handleDonation(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action, call *domain.FunctionCall, direct bool) error {
	if direct {
		args, err := decodeArgs[domain.DonateArgs](action, call)
		if err != nil {
			return err
		}
		// A donate call outside the donate contract is the entry half of a
		// pot-routed donation; the callback on the pot carries the record.
		if action.ReceiverID != p.cfg.DonateAccountID || args.MatchingPool {
			return nil
		}
	}

	result, err := p.donationResult(block, action, call, direct)
	if err != nil {
		return err
	}

	total, err := domain.ParseAmount(result.TotalAmount)
	if err != nil {
		return domain.NewDecodeError(action.ReceiptID, call.MethodName, err)
	}
	net := result.NetAmount()
	if net.Sign() < 0 {
		return domain.NewDecodeError(action.ReceiptID, call.MethodName,
			fmt.Errorf("fees exceed total amount %s", result.TotalAmount))
	}

	donatedAt := result.DonationTime(blockTime)
	amounts, err := p.valuation.Value(ctx, result.Token(), donatedAt, total, net)
	if err != nil {
		return err
	}

	var potID *string
	activityType := domain.ActivityDonateDirect
	if !direct {
		potID = &action.ReceiverID
		if result.MatchingPool {
			activityType = domain.ActivityDonatePotMatchingPool
		} else {
			activityType = domain.ActivityDonatePotPublic
		}
	}

	var recipientID *string
	actionResult := action.ReceiverID
	if r := result.Recipient(); r != "" {
		recipientID = &r
		actionResult = r
	}

	protocolFee := result.ProtocolFee
	if protocolFee == "" {
		protocolFee = "0"
	}

	created, err := p.store.CreateDonation(ctx, store.CreateDonationInput{
		DonorID:        result.DonorID,
		PotID:          potID,
		RecipientID:    recipientID,
		TotalAmount:    result.TotalAmount,
		TotalAmountUSD: amounts.TotalUSD,
		NetAmount:      net.String(),
		NetAmountUSD:   amounts.NetUSD,
		ProtocolFee:    protocolFee,
		ReferrerID:     result.ReferrerID,
		ReferrerFee:    result.ReferrerFee,
		FtID:           result.Token(),
		Message:        result.Message,
		DonatedAt:      donatedAt,
		MatchingPool:   result.MatchingPool,
		TxHash:         action.ReceiptID,
		Activity: store.ActivityInput{
			SignerID:     result.DonorID,
			ReceiverID:   action.ReceiverID,
			Timestamp:    donatedAt,
			Type:         activityType,
			ActionResult: actionResult,
			TxHash:       action.ReceiptID,
		},
	})
	if err != nil {
		return err
	}
	if !created {
		logger.Debug("donation already projected", zap.String("receiptId", action.ReceiptID))
	}
	return nil
}

// donationResult picks the authoritative donation payload for the action.
func (p *Projector) donationResult(block *domain.Block, action domain.Action, call *domain.FunctionCall, direct bool) (*domain.DonationResult, error) {
	if direct {
		for _, event := range block.EventsByReceiptID(action.ReceiptID) {
			if event.Event != donationEventName {
				continue
			}
			if result, err := decodeDonationEvent(event.Data, action.ReceiptID, call.MethodName); err == nil {
				return result, nil
			}
		}
	}
	return decodeResult[domain.DonationResult](block, action, call)
}

// decodeDonationEvent handles both event data encodings seen on chain: a bare
// donation object and a one-element array wrapping it.
func decodeDonationEvent(data json.RawMessage, receiptID, method string) (*domain.DonationResult, error) {
	var wrapped []domain.DonationResult
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped) > 0 {
		result := wrapped[0]
		if err := result.Validate(); err != nil {
			return nil, domain.NewDecodeError(receiptID, method, err)
		}
		return &result, nil
	}
	return decodePayload[domain.DonationResult](data, receiptID, method)
}
