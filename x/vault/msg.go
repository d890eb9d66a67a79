package vault

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
)

func init() {
	migration.MustRegister(1, &InitVaultMsg{}, migration.NoModification)
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReconcileMsg{}, migration.NoModification)
	migration.MustRegister(1, &InternalTransferMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
}

var _ guild.Msg = (*InitVaultMsg)(nil)

// Path implements guild.Msg interface.
func (InitVaultMsg) Path() string {
	return "vault/init"
}

func (m *InitVaultMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.CharterId) == 0 {
		errs = errors.AppendField(errs, "CharterId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	return errs
}

var _ guild.Msg = (*DepositMsg)(nil)

// Path implements guild.Msg interface.
func (DepositMsg) Path() string {
	return "vault/deposit"
}

func (m *DepositMsg) Validate() error {
	return validateAsset(m.Metadata, m.CharterId, m.CollectionId, m.TokenId)
}

var _ guild.Msg = (*ReconcileMsg)(nil)

// Path implements guild.Msg interface.
func (ReconcileMsg) Path() string {
	return "vault/reconcile"
}

func (m *ReconcileMsg) Validate() error {
	return validateAsset(m.Metadata, m.CharterId, m.CollectionId, m.TokenId)
}

var _ guild.Msg = (*InternalTransferMsg)(nil)

// Path implements guild.Msg interface.
func (InternalTransferMsg) Path() string {
	return "vault/internal_transfer"
}

func (m *InternalTransferMsg) Validate() error {
	errs := validateAsset(m.Metadata, m.CharterId, m.CollectionId, m.TokenId)
	errs = errors.AppendField(errs, "NewOwner", m.NewOwner.Validate())
	return errs
}

var _ guild.Msg = (*WithdrawMsg)(nil)

// Path implements guild.Msg interface.
func (WithdrawMsg) Path() string {
	return "vault/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	errs := validateAsset(m.Metadata, m.CharterId, m.CollectionId, m.TokenId)
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

func validateAsset(metadata *guild.Metadata, charterID, collectionID, tokenID []byte) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", metadata.Validate())
	if len(charterID) == 0 {
		errs = errors.AppendField(errs, "CharterId", errors.ErrEmpty)
	}
	if len(collectionID) == 0 {
		errs = errors.AppendField(errs, "CollectionId", errors.ErrEmpty)
	}
	if len(tokenID) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	return errs
}
