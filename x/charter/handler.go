package charter

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
)

const (
	createCharterCost int64 = 300
	updateCharterCost int64 = 50
	setOfficerCost    int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r guild.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("charter", r)

	charters := NewCharterBucket()
	officers := NewOfficerBucket()
	gate := NewGatekeeper()

	r.Handle(&CreateCharterMsg{}, CreateCharterHandler{auth: auth, charters: charters})
	r.Handle(&UpdateCharterMsg{}, UpdateCharterHandler{auth: auth, charters: charters, gate: gate})
	r.Handle(&SetOfficerMsg{}, SetOfficerHandler{auth: auth, officers: officers, gate: gate})
}

// RegisterQuery will register charters, members and officers for
// queries.
func RegisterQuery(qr guild.QueryRouter) {
	NewCharterBucket().Register("charters", qr)
	NewMemberBucket().Register("members", qr)
	NewOfficerBucket().Register("officers", qr)
}

// CreateCharterHandler registers a new charter. The main transaction
// signer becomes the charter admin.
type CreateCharterHandler struct {
	auth     x.Authenticator
	charters orm.ModelBucket
}

var _ guild.Handler = CreateCharterHandler{}

func (h CreateCharterHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: createCharterCost}, nil
}

func (h CreateCharterHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key, err := charterSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	now, err := guild.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	c := &Charter{
		Metadata:  &guild.Metadata{},
		Title:     msg.Title,
		Admin:     x.MainSigner(ctx, h.auth).Address(),
		KycSigner: msg.KycSigner,
		UnitPrice: msg.UnitPrice,
		MaxUnits:  msg.MaxUnits,
		TopUp:     msg.TopUp,
		Treasury:  TreasuryCondition(key).Address(),
		CreatedAt: guild.AsUnixTime(now),
	}
	if _, err := h.charters.Put(db, key, c); err != nil {
		return nil, errors.Wrap(err, "cannot store charter")
	}
	return &guild.DeliverResult{Data: key}, nil
}

func (h CreateCharterHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*CreateCharterMsg, error) {
	var msg CreateCharterMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "creator signature missing")
	}
	return &msg, nil
}

// UpdateCharterHandler replaces the charter terms. Only an admin may
// submit the change.
type UpdateCharterHandler struct {
	auth     x.Authenticator
	charters orm.ModelBucket
	gate     *Gatekeeper
}

var _ guild.Handler = UpdateCharterHandler{}

func (h UpdateCharterHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: updateCharterCost}, nil
}

func (h UpdateCharterHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, c, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	c.Title = msg.Title
	c.KycSigner = msg.KycSigner
	c.UnitPrice = msg.UnitPrice
	c.MaxUnits = msg.MaxUnits
	c.TopUp = msg.TopUp

	if _, err := h.charters.Put(db, msg.CharterId, c); err != nil {
		return nil, errors.Wrap(err, "cannot store charter")
	}
	return &guild.DeliverResult{}, nil
}

func (h UpdateCharterHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*UpdateCharterMsg, *Charter, error) {
	var msg UpdateCharterMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var c Charter
	if err := h.charters.One(db, msg.CharterId, &c); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load charter")
	}
	ok, err := h.gate.SignerAllowed(ctx, h.auth, db, msg.CharterId, Permission_ADMIN)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return &msg, &c, nil
}

// SetOfficerHandler grants, replaces or revokes the permission set of
// an officer. An empty permission set deletes the record.
type SetOfficerHandler struct {
	auth     x.Authenticator
	officers orm.ModelBucket
	gate     *Gatekeeper
}

var _ guild.Handler = SetOfficerHandler{}

func (h SetOfficerHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: setOfficerCost}, nil
}

func (h SetOfficerHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key := OfficerKey(msg.CharterId, msg.Officer)
	if len(msg.Permissions) == 0 {
		// Revoking is idempotent. Deleting an officer that was
		// never appointed must not fail the transaction.
		if err := h.officers.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(err, "cannot delete officer")
		}
		return &guild.DeliverResult{}, nil
	}

	o := &Officer{
		Metadata:    &guild.Metadata{},
		Charter:     msg.CharterId,
		Address:     msg.Officer,
		Permissions: msg.Permissions,
	}
	if _, err := h.officers.Put(db, key, o); err != nil {
		return nil, errors.Wrap(err, "cannot store officer")
	}
	return &guild.DeliverResult{}, nil
}

func (h SetOfficerHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*SetOfficerMsg, error) {
	var msg SetOfficerMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ok, err := h.gate.SignerAllowed(ctx, h.auth, db, msg.CharterId, Permission_ADMIN)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return &msg, nil
}
