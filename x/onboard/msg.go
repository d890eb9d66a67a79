package onboard

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
)

func init() {
	migration.MustRegister(1, &OnboardTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &OnboardNativeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ guild.Msg = (*OnboardTokenMsg)(nil)

// Path implements guild.Msg interface.
func (OnboardTokenMsg) Path() string {
	return "onboard/token"
}

func (m *OnboardTokenMsg) Validate() error {
	return validateOnboard(m.Metadata, m.CharterId, m.Member, m.Amount, m.Nonce, m.Signature)
}

var _ guild.Msg = (*OnboardNativeMsg)(nil)

// Path implements guild.Msg interface.
func (OnboardNativeMsg) Path() string {
	return "onboard/native"
}

func (m *OnboardNativeMsg) Validate() error {
	return validateOnboard(m.Metadata, m.CharterId, m.Member, m.Amount, m.Nonce, m.Signature)
}

var _ guild.Msg = (*UpdateConfigurationMsg)(nil)

// Path implements guild.Msg interface.
func (UpdateConfigurationMsg) Path() string {
	return "onboard/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

// Both onboarding messages carry the same payload. The ticker of the
// amount decides nothing here, the handlers bind it to the configured
// contribution currency.
func validateOnboard(metadata *guild.Metadata, charterID []byte, member guild.Address, amount coin.Coin, nonce int64, sig []byte) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", metadata.Validate())
	if len(charterID) == 0 {
		errs = errors.AppendField(errs, "CharterId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Member", member.Validate())
	if err := amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if nonce < 1 {
		errs = errors.AppendField(errs, "Nonce", errors.Wrap(errors.ErrInput, "must be at least one"))
	}
	if len(sig) != couponSigLength {
		errs = errors.AppendField(errs, "Signature", errors.Wrapf(errors.ErrInput, "must be %d bytes", couponSigLength))
	}
	return errs
}
