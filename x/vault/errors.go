package vault

import (
	"github.com/guild-net/guild/errors"
)

var (
	// ErrNotInCustody is returned when reconciliation names a token
	// that the vault account does not actually own. The registry
	// never fabricates a record for an asset it does not hold.
	ErrNotInCustody = errors.Register(160, "not in custody")

	// ErrAlreadyInitialized is returned when a vault is initialized
	// a second time.
	ErrAlreadyInitialized = errors.Register(161, "already initialized")

	// ErrDirectValue is returned when plain value is sent to a vault
	// account. Vaults have no withdrawal path for fungible value, so
	// accepting it would lock the funds forever.
	ErrDirectValue = errors.Register(162, "direct value not supported")
)
