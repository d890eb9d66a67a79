package collectibles

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
)

const (
	issueCollectionCost int64 = 150
	mintTokenCost       int64 = 100
	transferTokenCost   int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r guild.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("collectibles", r)

	collections := NewCollectionBucket()
	tokens := NewTokenBucket()

	r.Handle(&IssueCollectionMsg{}, IssueCollectionHandler{auth: auth, collections: collections})
	r.Handle(&MintTokenMsg{}, MintTokenHandler{auth: auth, collections: collections, tokens: tokens})
	r.Handle(&TransferTokenMsg{}, TransferTokenHandler{auth: auth, tokens: tokens})
}

// RegisterQuery will register both buckets as "/collections" and
// "/tokens".
func RegisterQuery(qr guild.QueryRouter) {
	NewCollectionBucket().Register("collections", qr)
	NewTokenBucket().Register("tokens", qr)
}

// IssueCollectionHandler creates a collection under a new sequence ID.
type IssueCollectionHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
}

var _ guild.Handler = IssueCollectionHandler{}

func (h IssueCollectionHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: issueCollectionCost}, nil
}

func (h IssueCollectionHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	c := Collection{
		Metadata: &guild.Metadata{},
		Symbol:   msg.Symbol,
		Issuer:   msg.Issuer,
	}
	key, err := h.collections.Put(db, nil, &c)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store collection")
	}
	return &guild.DeliverResult{Data: key}, nil
}

func (h IssueCollectionHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*IssueCollectionMsg, error) {
	var msg IssueCollectionMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Issuer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature missing")
	}
	return &msg, nil
}

// MintTokenHandler creates a token in an existing collection. Only the
// collection issuer can mint.
type MintTokenHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	tokens      orm.ModelBucket
}

var _ guild.Handler = MintTokenHandler{}

func (h MintTokenHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: mintTokenCost}, nil
}

func (h MintTokenHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	t := Token{
		Metadata:   &guild.Metadata{},
		Collection: msg.CollectionId,
		TokenId:    msg.TokenId,
		Owner:      msg.Owner,
	}
	key := TokenKey(msg.CollectionId, msg.TokenId)
	if _, err := h.tokens.Put(db, key, &t); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &guild.DeliverResult{Data: key}, nil
}

func (h MintTokenHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*MintTokenMsg, error) {
	var msg MintTokenMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var c Collection
	if err := h.collections.One(db, msg.CollectionId, &c); err != nil {
		return nil, errors.Wrap(err, "cannot load collection")
	}
	if !h.auth.HasAddress(ctx, c.Issuer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature missing")
	}
	switch err := h.tokens.Has(db, TokenKey(msg.CollectionId, msg.TokenId)); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "token exists")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return nil, errors.Wrap(err, "cannot check token")
	}
	return &msg, nil
}

// TransferTokenHandler reassigns token ownership. Only the current
// owner can transfer.
type TransferTokenHandler struct {
	auth   x.Authenticator
	tokens orm.ModelBucket
}

var _ guild.Handler = TransferTokenHandler{}

func (h TransferTokenHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: transferTokenCost}, nil
}

func (h TransferTokenHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	t.Owner = msg.Destination
	if _, err := h.tokens.Put(db, TokenKey(msg.CollectionId, msg.TokenId), t); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &guild.DeliverResult{}, nil
}

func (h TransferTokenHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*TransferTokenMsg, *Token, error) {
	var msg TransferTokenMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var t Token
	if err := h.tokens.One(db, TokenKey(msg.CollectionId, msg.TokenId), &t); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load token")
	}
	if !h.auth.HasAddress(ctx, t.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, &t, nil
}
