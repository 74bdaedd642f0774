package domain

const (
	// DefaultBaseAccountID is the root account that anchors the tracked domain.
	// Every receipt and action the projector cares about targets a sub-account of it.
	DefaultBaseAccountID = "potlock.near"

	// DefaultFactoryRoot is the sub-account under which versioned pot factories
	// are deployed (v1.potfactory.potlock.near, v2.potfactory.potlock.near, ...).
	DefaultFactoryRoot = "potfactory"

	// DefaultRegistryAccountID is the legacy project registry contract. The first
	// protocol revision initialized the registry with a plain "new" call on this
	// exact account.
	DefaultRegistryAccountID = "registry.potlock.near"

	// DefaultDonateAccountID is the direct-donation contract. A "donate" call on
	// any other account is a pot (or project) donating onward and is excluded here.
	DefaultDonateAccountID = "donate.potlock.near"

	// NativeTokenID is the token id used for pricing when a donation carries no
	// explicit fungible token.
	NativeTokenID = "near"

	// NativeTokenDecimals is the number of base-unit digits in one native token
	// (1 NEAR = 10^24 yoctoNEAR).
	NativeTokenDecimals = 24
)
