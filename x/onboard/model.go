package onboard

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
)

func init() {
	migration.MustRegister(1, &MemberNonce{}, migration.NoModification)
}

var _ orm.Model = (*MemberNonce)(nil)

func (m *MemberNonce) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Nonce < 0 {
		errs = errors.AppendField(errs, "Nonce", errors.Wrap(errors.ErrState, "cannot be negative"))
	}
	return errs
}

func (m *MemberNonce) Copy() orm.CloneableData {
	return &MemberNonce{
		Metadata: m.Metadata.Copy(),
		Nonce:    m.Nonce,
	}
}

// NewMemberNonceBucket returns the bucket of redeemed coupon counters,
// keyed by member address. This package is the only writer.
func NewMemberNonceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("nonce", &MemberNonce{})
	return migration.NewModelBucket("onboard", b)
}

// currentNonce returns the counter of a member. A member that never
// redeemed a coupon is at zero.
func currentNonce(db guild.ReadOnlyKVStore, b orm.ModelBucket, member guild.Address) (int64, error) {
	var mn MemberNonce
	switch err := b.One(db, member, &mn); {
	case err == nil:
		return mn.Nonce, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load nonce")
	}
}
