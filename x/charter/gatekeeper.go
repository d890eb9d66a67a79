package charter

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
)

// Gatekeeper answers capability and roster questions about a charter.
// It is the surface other extensions consult instead of touching the
// charter buckets directly.
type Gatekeeper struct {
	charters orm.ModelBucket
	members  orm.ModelBucket
	officers orm.ModelBucket
}

// NewGatekeeper returns a gatekeeper bound to the charter buckets.
func NewGatekeeper() *Gatekeeper {
	return &Gatekeeper{
		charters: NewCharterBucket(),
		members:  NewMemberBucket(),
		officers: NewOfficerBucket(),
	}
}

// Charter loads a charter by ID.
func (g *Gatekeeper) Charter(db guild.ReadOnlyKVStore, charterID []byte) (*Charter, error) {
	var c Charter
	if err := g.charters.One(db, charterID, &c); err != nil {
		return nil, errors.Wrap(err, "cannot load charter")
	}
	return &c, nil
}

// Allowed returns true when addr is the charter admin or holds perm in
// its officer record. Officers granted ADMIN pass every check.
func (g *Gatekeeper) Allowed(db guild.ReadOnlyKVStore, charterID []byte, addr guild.Address, perm Permission) (bool, error) {
	c, err := g.Charter(db, charterID)
	if err != nil {
		return false, err
	}
	if c.Admin.Equals(addr) {
		return true, nil
	}
	var o Officer
	switch err := g.officers.One(db, OfficerKey(charterID, addr), &o); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load officer")
	}
	for _, p := range o.Permissions {
		if p == perm || p == Permission_ADMIN {
			return true, nil
		}
	}
	return false, nil
}

// SignerAllowed returns true when any transaction signer is allowed to
// act with the given permission on the charter.
func (g *Gatekeeper) SignerAllowed(ctx guild.Context, auth x.Authenticator, db guild.ReadOnlyKVStore, charterID []byte, perm Permission) (bool, error) {
	for _, c := range auth.GetConditions(ctx) {
		ok, err := g.Allowed(db, charterID, c.Address(), perm)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ActiveMember returns true when addr has an active roster entry.
func (g *Gatekeeper) ActiveMember(db guild.ReadOnlyKVStore, charterID []byte, addr guild.Address) (bool, error) {
	var m Member
	switch err := g.members.One(db, MemberKey(charterID, addr), &m); {
	case err == nil:
		return m.Active, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load member")
	}
}

// EnsureActive fails with an unauthorized error unless addr is an
// active member of the charter.
func (g *Gatekeeper) EnsureActive(db guild.ReadOnlyKVStore, charterID []byte, addr guild.Address) error {
	ok, err := g.ActiveMember(db, charterID, addr)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(errors.ErrUnauthorized, "not an active member")
	}
	return nil
}

// Activate marks addr as an active member of the charter, creating the
// roster entry if needed. Since is kept untouched on existing entries.
func (g *Gatekeeper) Activate(db guild.KVStore, charterID []byte, addr guild.Address, since guild.UnixTime) error {
	key := MemberKey(charterID, addr)
	var m Member
	switch err := g.members.One(db, key, &m); {
	case err == nil:
		if m.Active {
			return nil
		}
		m.Active = true
	case errors.ErrNotFound.Is(err):
		m = Member{
			Metadata: &guild.Metadata{},
			Charter:  charterID,
			Address:  addr,
			Active:   true,
			Since:    since,
		}
	default:
		return errors.Wrap(err, "cannot load member")
	}
	if _, err := g.members.Put(db, key, &m); err != nil {
		return errors.Wrap(err, "cannot store member")
	}
	return nil
}
