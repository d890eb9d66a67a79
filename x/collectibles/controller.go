package collectibles

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/orm"
)

// Controller exposes token custody to collaborating extensions without
// going through transaction handlers.
type Controller struct {
	tokens orm.ModelBucket
}

func NewController() Controller {
	return Controller{tokens: NewTokenBucket()}
}

// OwnerOf returns the current owner of a token. Asking for a token
// that was never minted fails with ErrNotFound.
func (c Controller) OwnerOf(db guild.ReadOnlyKVStore, collectionID, tokenID []byte) (guild.Address, error) {
	var t Token
	if err := c.tokens.One(db, TokenKey(collectionID, tokenID), &t); err != nil {
		return nil, errors.Wrap(err, "cannot load token")
	}
	return t.Owner, nil
}

// Move reassigns token custody without an owner signature. Callers
// must enforce their own authorization model.
func (c Controller) Move(db guild.KVStore, collectionID, tokenID []byte, dest guild.Address) error {
	key := TokenKey(collectionID, tokenID)
	var t Token
	if err := c.tokens.One(db, key, &t); err != nil {
		return errors.Wrap(err, "cannot load token")
	}
	t.Owner = dest
	if _, err := c.tokens.Put(db, key, &t); err != nil {
		return errors.Wrap(err, "cannot store token")
	}
	return nil
}
