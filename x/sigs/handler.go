package sigs

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
)

func RegisterRoutes(r guild.Registry, auth x.Authenticator) {
	r.Handle(&BumpSequenceMsg{}, migration.SchemaMigratingHandler("sigs",
		&bumpSequenceHandler{
			b:    NewBucket(),
			auth: auth,
		}))
}

type bumpSequenceHandler struct {
	auth x.Authenticator
	b    Bucket
}

func (h *bumpSequenceHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{}, nil
}

func (h *bumpSequenceHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	user, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Each transaction processing bumps the sequence by one. Increment
	// must represent the total increment value.
	incr := int64(msg.Increment) - 1
	if incr == 0 {
		// Zero increment requires no modification.
		return &guild.DeliverResult{}, nil
	}
	user.Sequence += incr
	obj := orm.NewSimpleObj(user.Pubkey.Address(), user)
	if err := h.b.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "save user")
	}

	return &guild.DeliverResult{}, nil
}

func (h *bumpSequenceHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	pubkey := x.MainSigner(ctx, h.auth)
	if pubkey == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	obj, err := h.b.Get(db, pubkey.Address())
	if err != nil {
		return nil, nil, errors.Wrap(err, "bucket")
	}
	if obj == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "no sequence")
	}

	user := AsUser(obj)

	if user.Sequence+int64(msg.Increment) < user.Sequence {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "user sequence")
	}

	return user, &msg, nil
}
