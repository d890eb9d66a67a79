package charter

import (
	"regexp"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
)

func init() {
	migration.MustRegister(1, &Charter{}, migration.NoModification)
	migration.MustRegister(1, &Member{}, migration.NoModification)
	migration.MustRegister(1, &Officer{}, migration.NoModification)
}

var validTitle = regexp.MustCompile(`^[a-zA-Z0-9 _.-]{4,128}$`).MatchString

var _ orm.Model = (*Charter)(nil)

func (c *Charter) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if !validTitle(c.Title) {
		errs = errors.AppendField(errs, "Title", errors.Wrap(errors.ErrInput, "must be 4 to 128 printable characters"))
	}
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "KycSigner", c.KycSigner.Validate())
	errs = errors.AppendField(errs, "UnitPrice", validateUnitPrice(c.UnitPrice))
	if c.MaxUnits <= 0 {
		errs = errors.AppendField(errs, "MaxUnits", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	if c.CreatedAt == 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.Wrap(errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "CreatedAt", c.CreatedAt.Validate())
	}
	return errs
}

func (c *Charter) Copy() orm.CloneableData {
	return &Charter{
		Metadata:  c.Metadata.Copy(),
		Title:     c.Title,
		Admin:     c.Admin,
		KycSigner: c.KycSigner,
		UnitPrice: c.UnitPrice,
		MaxUnits:  c.MaxUnits,
		TopUp:     c.TopUp,
		Treasury:  c.Treasury,
		CreatedAt: c.CreatedAt,
	}
}

var _ orm.Model = (*Member)(nil)

func (m *Member) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Charter) == 0 {
		errs = errors.AppendField(errs, "Charter", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	errs = errors.AppendField(errs, "Since", m.Since.Validate())
	return errs
}

func (m *Member) Copy() orm.CloneableData {
	return &Member{
		Metadata: m.Metadata.Copy(),
		Charter:  append([]byte(nil), m.Charter...),
		Address:  m.Address,
		Active:   m.Active,
		Since:    m.Since,
	}
}

var _ orm.Model = (*Officer)(nil)

func (o *Officer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", o.Metadata.Validate())
	if len(o.Charter) == 0 {
		errs = errors.AppendField(errs, "Charter", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Address", o.Address.Validate())
	if len(o.Permissions) == 0 {
		errs = errors.AppendField(errs, "Permissions", errors.ErrEmpty)
	}
	for _, p := range o.Permissions {
		errs = errors.AppendField(errs, "Permissions", p.Validate())
	}
	return errs
}

func (o *Officer) Copy() orm.CloneableData {
	return &Officer{
		Metadata:    o.Metadata.Copy(),
		Charter:     append([]byte(nil), o.Charter...),
		Address:     o.Address,
		Permissions: append([]Permission(nil), o.Permissions...),
	}
}

// Validate returns an error if the permission value is unknown.
func (p Permission) Validate() error {
	if p <= Permission_INVALID || p > Permission_ADMIN {
		return errors.Wrapf(errors.ErrInput, "unknown permission %v", p)
	}
	return nil
}

// validateUnitPrice requires a whole token amount. Unit arithmetic
// during onboarding divides by the whole part of the price.
func validateUnitPrice(price coin.Coin) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.Whole <= 0 || price.Fractional != 0 {
		return errors.Wrap(errors.ErrAmount, "must be a whole amount greater than zero")
	}
	return nil
}

func NewCharterBucket() orm.ModelBucket {
	b := orm.NewModelBucket("charter", &Charter{},
		orm.WithIDSequence(charterSeq),
	)
	return migration.NewModelBucket("charter", b)
}

// charterSeq generates charter IDs. The create handler acquires values
// directly so that the treasury address can be derived before the
// charter is stored.
var charterSeq = orm.NewSequence("charter", "id")

func NewMemberBucket() orm.ModelBucket {
	b := orm.NewModelBucket("member", &Member{},
		orm.WithIndex("charter", idxMemberCharter, false),
	)
	return migration.NewModelBucket("charter", b)
}

func NewOfficerBucket() orm.ModelBucket {
	b := orm.NewModelBucket("officer", &Officer{})
	return migration.NewModelBucket("charter", b)
}

func idxMemberCharter(obj orm.Object) ([]byte, error) {
	m, ok := obj.Value().(*Member)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Member")
	}
	return m.Charter, nil
}

// MemberKey is the primary key of a roster entry. Charter IDs are fixed
// length sequence values so the concatenation is unambiguous.
func MemberKey(charterID []byte, addr guild.Address) []byte {
	return append(append([]byte{}, charterID...), addr...)
}

// OfficerKey is the primary key of an officer entry.
func OfficerKey(charterID []byte, addr guild.Address) []byte {
	return append(append([]byte{}, charterID...), addr...)
}

// TreasuryCondition derives the charter treasury account from the
// charter ID. Retained contributions are collected on this address.
func TreasuryCondition(charterID []byte) guild.Condition {
	return guild.NewCondition("charter", "treasury", charterID)
}
