package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// NewTarget is the inferred kind of a polymorphic "new" call. The chain does
// not tag the call, so the kind is derived from the structure of the target
// account id.
type NewTarget string

const (
	// NewTargetPotFactory matches versioned factory deployments
	// (v<digits>.<factory-root>.<base-domain>).
	NewTargetPotFactory NewTarget = "pot_factory"
	// NewTargetList matches the legacy registry contract initialization.
	NewTargetList NewTarget = "list"
	// NewTargetPot is the default: any other in-domain account receiving "new"
	// is a freshly deployed pot.
	NewTargetPot NewTarget = "pot"
)

// AccountClassifier decides membership in the tracked account domain and the
// kind of a "new" call target. Predicates are evaluated in order: factory
// version pattern, registry literal, pot fallback.
type AccountClassifier struct {
	baseAccountID     string
	registryAccountID string
	versionPattern    *regexp.Regexp
}

// NewAccountClassifier builds a classifier rooted at baseAccountID.
// factoryRoot is the factory sub-account name ("potfactory"), registryAccountID
// the exact legacy registry account.
func NewAccountClassifier(baseAccountID, factoryRoot, registryAccountID string) *AccountClassifier {
	pattern := regexp.MustCompile(
		fmt.Sprintf(`^v\d+\.%s$`, regexp.QuoteMeta(factoryRoot+"."+baseAccountID)),
	)
	return &AccountClassifier{
		baseAccountID:     baseAccountID,
		registryAccountID: registryAccountID,
		versionPattern:    pattern,
	}
}

// InDomain reports whether accountID belongs to the tracked domain, i.e. is
// the base account or one of its sub-accounts.
func (c *AccountClassifier) InDomain(accountID string) bool {
	return accountID == c.baseAccountID || strings.HasSuffix(accountID, "."+c.baseAccountID)
}

// ClassifyNew infers what a "new" call on receiverID deploys.
func (c *AccountClassifier) ClassifyNew(receiverID string) NewTarget {
	if c.versionPattern.MatchString(receiverID) {
		return NewTargetPotFactory
	}
	if receiverID == c.registryAccountID {
		return NewTargetList
	}
	return NewTargetPot
}
