package vault

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
)

func init() {
	migration.MustRegister(1, &Vault{}, migration.NoModification)
	migration.MustRegister(1, &Shelf{}, migration.NoModification)
	migration.MustRegister(1, &Holding{}, migration.NoModification)
}

var _ orm.Model = (*Vault)(nil)

func (v *Vault) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	if len(v.Charter) == 0 {
		errs = errors.AppendField(errs, "Charter", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Admin", v.Admin.Validate())
	for i, c := range v.Collections {
		if len(c) == 0 {
			errs = errors.AppendField(errs, "Collections", errors.Wrapf(errors.ErrEmpty, "entry %d", i))
		}
	}
	return errs
}

func (v *Vault) Copy() orm.CloneableData {
	cp := &Vault{
		Metadata: v.Metadata.Copy(),
		Charter:  append([]byte(nil), v.Charter...),
		Admin:    v.Admin,
	}
	for _, c := range v.Collections {
		cp.Collections = append(cp.Collections, append([]byte(nil), c...))
	}
	return cp
}

var _ orm.Model = (*Shelf)(nil)

// Validate requires at least one token. A shelf exists exactly as long
// as the vault holds something from its collection.
func (s *Shelf) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if len(s.Charter) == 0 {
		errs = errors.AppendField(errs, "Charter", errors.ErrEmpty)
	}
	if len(s.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if len(s.TokenIds) == 0 {
		errs = errors.AppendField(errs, "TokenIds", errors.ErrEmpty)
	}
	for i, id := range s.TokenIds {
		if len(id) == 0 {
			errs = errors.AppendField(errs, "TokenIds", errors.Wrapf(errors.ErrEmpty, "entry %d", i))
		}
	}
	return errs
}

func (s *Shelf) Copy() orm.CloneableData {
	cp := &Shelf{
		Metadata:   s.Metadata.Copy(),
		Charter:    append([]byte(nil), s.Charter...),
		Collection: append([]byte(nil), s.Collection...),
	}
	for _, id := range s.TokenIds {
		cp.TokenIds = append(cp.TokenIds, append([]byte(nil), id...))
	}
	return cp
}

var _ orm.Model = (*Holding)(nil)

func (h *Holding) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", h.Metadata.Validate())
	if len(h.Charter) == 0 {
		errs = errors.AppendField(errs, "Charter", errors.ErrEmpty)
	}
	if len(h.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if len(h.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Owner", h.Owner.Validate())
	return errs
}

func (h *Holding) Copy() orm.CloneableData {
	return &Holding{
		Metadata:   h.Metadata.Copy(),
		Charter:    append([]byte(nil), h.Charter...),
		Collection: append([]byte(nil), h.Collection...),
		TokenId:    append([]byte(nil), h.TokenId...),
		Owner:      h.Owner,
	}
}

// NewVaultBucket returns the bucket of custody registries, keyed by
// charter ID. The custody and guild indexes allow the reverse lookup
// from a derived account address back to the vault, which is what the
// treasury blocklist needs.
func NewVaultBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vault", &Vault{},
		orm.WithIndex("custody", idxVaultCustody, true),
		orm.WithIndex("guild", idxVaultGuild, true),
	)
	return migration.NewModelBucket("vault", b)
}

func NewShelfBucket() orm.ModelBucket {
	b := orm.NewModelBucket("shelf", &Shelf{})
	return migration.NewModelBucket("vault", b)
}

func NewHoldingBucket() orm.ModelBucket {
	b := orm.NewModelBucket("holding", &Holding{},
		orm.WithIndex("owner", idxHoldingOwner, false),
	)
	return migration.NewModelBucket("vault", b)
}

func idxVaultCustody(obj orm.Object) ([]byte, error) {
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Vault")
	}
	return CustodyCondition(v.Charter).Address(), nil
}

func idxVaultGuild(obj orm.Object) ([]byte, error) {
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Vault")
	}
	return GuildOwnerCondition(v.Charter).Address(), nil
}

func idxHoldingOwner(obj orm.Object) ([]byte, error) {
	h, ok := obj.Value().(*Holding)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Holding")
	}
	return h.Owner, nil
}

// ShelfKey is the primary key of a shelf. Charter and collection IDs
// are fixed length sequence values so the concatenation is
// unambiguous.
func ShelfKey(charterID, collectionID []byte) []byte {
	return append(append([]byte{}, charterID...), collectionID...)
}

// HoldingKey is the primary key of a holding.
func HoldingKey(charterID, collectionID, tokenID []byte) []byte {
	key := append(append([]byte{}, charterID...), collectionID...)
	return append(key, tokenID...)
}

// CustodyCondition derives the account that actually owns every token
// in custody of one vault.
func CustodyCondition(charterID []byte) guild.Condition {
	return guild.NewCondition("vault", "custody", charterID)
}

// GuildOwnerCondition derives the pooled ownership sentinel of one
// vault. Holdings belong to this identity until an internal transfer
// assigns a concrete owner.
func GuildOwnerCondition(charterID []byte) guild.Condition {
	return guild.NewCondition("vault", "guild", charterID)
}
