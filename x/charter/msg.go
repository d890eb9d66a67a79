package charter

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
)

func init() {
	migration.MustRegister(1, &CreateCharterMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateCharterMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetOfficerMsg{}, migration.NoModification)
}

var _ guild.Msg = (*CreateCharterMsg)(nil)

// Path implements guild.Msg interface.
func (CreateCharterMsg) Path() string {
	return "charter/create"
}

func (m *CreateCharterMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !validTitle(m.Title) {
		errs = errors.AppendField(errs, "Title", errors.Wrap(errors.ErrInput, "must be 4 to 128 printable characters"))
	}
	errs = errors.AppendField(errs, "KycSigner", m.KycSigner.Validate())
	errs = errors.AppendField(errs, "UnitPrice", validateUnitPrice(m.UnitPrice))
	if m.MaxUnits <= 0 {
		errs = errors.AppendField(errs, "MaxUnits", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ guild.Msg = (*UpdateCharterMsg)(nil)

// Path implements guild.Msg interface.
func (UpdateCharterMsg) Path() string {
	return "charter/update"
}

func (m *UpdateCharterMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.CharterId) == 0 {
		errs = errors.AppendField(errs, "CharterId", errors.ErrEmpty)
	}
	if !validTitle(m.Title) {
		errs = errors.AppendField(errs, "Title", errors.Wrap(errors.ErrInput, "must be 4 to 128 printable characters"))
	}
	errs = errors.AppendField(errs, "KycSigner", m.KycSigner.Validate())
	errs = errors.AppendField(errs, "UnitPrice", validateUnitPrice(m.UnitPrice))
	if m.MaxUnits <= 0 {
		errs = errors.AppendField(errs, "MaxUnits", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ guild.Msg = (*SetOfficerMsg)(nil)

// Path implements guild.Msg interface.
func (SetOfficerMsg) Path() string {
	return "charter/set_officer"
}

// Validate accepts an empty permission set. Setting no permissions
// revokes the officer record.
func (m *SetOfficerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.CharterId) == 0 {
		errs = errors.AppendField(errs, "CharterId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Officer", m.Officer.Validate())
	for _, p := range m.Permissions {
		errs = errors.AppendField(errs, "Permissions", p.Validate())
	}
	return errs
}
