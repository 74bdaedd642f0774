package projector

import (
	"github.com/potlock/indexer/internal/domain"
)

// FilterSuccessfulActions selects, in block order, the actions whose receiver
// lies within the tracked account domain and whose receipt completed with a
// success variant for an in-domain receiver. Everything else is unrelated
// chain activity and is dropped silently.
func FilterSuccessfulActions(block *domain.Block, classifier *domain.AccountClassifier) []domain.Action {
	successful := make(map[string]struct{}, len(block.Receipts))
	for _, receipt := range block.Receipts {
		if classifier.InDomain(receipt.ReceiverID) && receipt.Status.Succeeded() {
			successful[receipt.ReceiptID] = struct{}{}
		}
	}

	var actions []domain.Action
	for _, action := range block.Actions {
		if !classifier.InDomain(action.ReceiverID) {
			continue
		}
		if _, ok := successful[action.ReceiptID]; !ok {
			continue
		}
		actions = append(actions, action)
	}
	return actions
}
