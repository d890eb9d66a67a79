package collectibles

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
)

func init() {
	migration.MustRegister(1, &IssueCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &MintTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferTokenMsg{}, migration.NoModification)
}

var _ guild.Msg = (*IssueCollectionMsg)(nil)

// Path implements guild.Msg interface.
func (IssueCollectionMsg) Path() string {
	return "collectibles/issue_collection"
}

func (m *IssueCollectionMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !validSymbol(m.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrap(errors.ErrInput, "must be 3 to 10 upper case alphanumeric characters"))
	}
	errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	return errs
}

var _ guild.Msg = (*MintTokenMsg)(nil)

// Path implements guild.Msg interface.
func (MintTokenMsg) Path() string {
	return "collectibles/mint_token"
}

func (m *MintTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.CollectionId) == 0 {
		errs = errors.AppendField(errs, "CollectionId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "TokenId", validateTokenID(m.TokenId))
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ guild.Msg = (*TransferTokenMsg)(nil)

// Path implements guild.Msg interface.
func (TransferTokenMsg) Path() string {
	return "collectibles/transfer_token"
}

func (m *TransferTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.CollectionId) == 0 {
		errs = errors.AppendField(errs, "CollectionId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "TokenId", validateTokenID(m.TokenId))
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}
