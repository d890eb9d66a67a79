package vault

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/orm"
)

// Registry gives other extensions read access to the custody books.
type Registry struct {
	vaults   orm.ModelBucket
	shelves  orm.ModelBucket
	holdings orm.ModelBucket
}

func NewRegistry() Registry {
	return Registry{
		vaults:   NewVaultBucket(),
		shelves:  NewShelfBucket(),
		holdings: NewHoldingBucket(),
	}
}

// CollectionCount returns how many collections the vault currently
// holds tokens from.
func (r Registry) CollectionCount(db guild.ReadOnlyKVStore, charterID []byte) (int, error) {
	var v Vault
	if err := r.vaults.One(db, charterID, &v); err != nil {
		return 0, errors.Wrap(err, "cannot load vault")
	}
	return len(v.Collections), nil
}

// CollectionAt returns the collection at the given position of the
// vault listing. The order is an implementation detail and changes
// when shelves empty out.
func (r Registry) CollectionAt(db guild.ReadOnlyKVStore, charterID []byte, index int) ([]byte, error) {
	var v Vault
	if err := r.vaults.One(db, charterID, &v); err != nil {
		return nil, errors.Wrap(err, "cannot load vault")
	}
	if index < 0 || index >= len(v.Collections) {
		return nil, errors.Wrapf(errors.ErrNotFound, "no collection at %d", index)
	}
	return v.Collections[index], nil
}

// TokenCount returns how many tokens of a collection the vault holds.
// A collection the vault holds nothing from counts zero.
func (r Registry) TokenCount(db guild.ReadOnlyKVStore, charterID, collectionID []byte) (int, error) {
	var s Shelf
	switch err := r.shelves.One(db, ShelfKey(charterID, collectionID), &s); {
	case err == nil:
		return len(s.TokenIds), nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load shelf")
	}
}

// TokenAt returns the token at the given position of a shelf. The
// order is an implementation detail and changes on withdrawals.
func (r Registry) TokenAt(db guild.ReadOnlyKVStore, charterID, collectionID []byte, index int) ([]byte, error) {
	var s Shelf
	if err := r.shelves.One(db, ShelfKey(charterID, collectionID), &s); err != nil {
		return nil, errors.Wrap(err, "cannot load shelf")
	}
	if index < 0 || index >= len(s.TokenIds) {
		return nil, errors.Wrapf(errors.ErrNotFound, "no token at %d", index)
	}
	return s.TokenIds[index], nil
}

// OwnerOf returns the internal owner a held token is assigned to. A
// token that is not in custody resolves to a nil address, never to an
// error, so callers can probe without branching on failure.
func (r Registry) OwnerOf(db guild.ReadOnlyKVStore, charterID, collectionID, tokenID []byte) (guild.Address, error) {
	var h Holding
	switch err := r.holdings.One(db, HoldingKey(charterID, collectionID, tokenID), &h); {
	case err == nil:
		return h.Owner, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load holding")
	}
}
