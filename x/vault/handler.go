package vault

import (
	"bytes"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
	"github.com/guild-net/guild/x/charter"
)

const (
	initVaultCost        int64 = 150
	depositCost          int64 = 100
	reconcileCost        int64 = 100
	internalTransferCost int64 = 50
	withdrawCost         int64 = 200
)

// Gatekeeper resolves charter permissions for a transaction signer.
// *charter.Gatekeeper satisfies this interface.
type Gatekeeper interface {
	SignerAllowed(ctx guild.Context, auth x.Authenticator, db guild.ReadOnlyKVStore, charterID []byte, perm charter.Permission) (bool, error)
}

// TokenRegistry is the custody surface of the collectibles ledger.
// collectibles.Controller satisfies this interface.
type TokenRegistry interface {
	OwnerOf(db guild.ReadOnlyKVStore, collectionID, tokenID []byte) (guild.Address, error)
	Move(db guild.KVStore, collectionID, tokenID []byte, dest guild.Address) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r guild.Registry, auth x.Authenticator, gate Gatekeeper, tokens TokenRegistry) {
	r = migration.SchemaMigratingRegistry("vault", r)

	k := keeper{
		auth:     auth,
		gate:     gate,
		tokens:   tokens,
		vaults:   NewVaultBucket(),
		shelves:  NewShelfBucket(),
		holdings: NewHoldingBucket(),
	}

	r.Handle(&InitVaultMsg{}, InitVaultHandler{keeper: k})
	r.Handle(&DepositMsg{}, DepositHandler{keeper: k})
	r.Handle(&ReconcileMsg{}, ReconcileHandler{keeper: k})
	r.Handle(&InternalTransferMsg{}, InternalTransferHandler{keeper: k})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{keeper: k})
}

// RegisterQuery will register all buckets under "/vaults".
func RegisterQuery(qr guild.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
	NewShelfBucket().Register("vaults/shelf", qr)
	NewHoldingBucket().Register("vaults/holdings", qr)
}

// keeper bundles the collaborators and buckets that every custody
// handler shares.
type keeper struct {
	auth     x.Authenticator
	gate     Gatekeeper
	tokens   TokenRegistry
	vaults   orm.ModelBucket
	shelves  orm.ModelBucket
	holdings orm.ModelBucket
}

func (k keeper) vault(db guild.ReadOnlyKVStore, charterID []byte) (*Vault, error) {
	var v Vault
	if err := k.vaults.One(db, charterID, &v); err != nil {
		return nil, errors.Wrap(err, "cannot load vault")
	}
	return &v, nil
}

// register records custody of a token under the pooled guild owner.
// Both deposit paths converge here. Registering a token twice is a
// no-op, so reconciliation can run repeatedly.
func (k keeper) register(db guild.KVStore, v *Vault, collectionID, tokenID []byte) error {
	key := HoldingKey(v.Charter, collectionID, tokenID)
	switch err := k.holdings.Has(db, key); {
	case err == nil:
		// Recorded already, nothing to do.
		return nil
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return errors.Wrap(err, "cannot check holding")
	}

	holding := Holding{
		Metadata:   &guild.Metadata{},
		Charter:    v.Charter,
		Collection: collectionID,
		TokenId:    tokenID,
		Owner:      GuildOwnerCondition(v.Charter).Address(),
	}
	if _, err := k.holdings.Put(db, key, &holding); err != nil {
		return errors.Wrap(err, "cannot store holding")
	}

	shelfKey := ShelfKey(v.Charter, collectionID)
	var shelf Shelf
	switch err := k.shelves.One(db, shelfKey, &shelf); {
	case err == nil:
		shelf.TokenIds = append(shelf.TokenIds, tokenID)
	case errors.ErrNotFound.Is(err):
		// First token of this collection. The collection enters
		// the vault listing together with its shelf.
		shelf = Shelf{
			Metadata:   &guild.Metadata{},
			Charter:    v.Charter,
			Collection: collectionID,
			TokenIds:   [][]byte{tokenID},
		}
		v.Collections = append(v.Collections, collectionID)
		if _, err := k.vaults.Put(db, v.Charter, v); err != nil {
			return errors.Wrap(err, "cannot store vault")
		}
	default:
		return errors.Wrap(err, "cannot load shelf")
	}
	if _, err := k.shelves.Put(db, shelfKey, &shelf); err != nil {
		return errors.Wrap(err, "cannot store shelf")
	}
	return nil
}

// unregister removes the custody record of a token. The shelf is
// compacted by moving the last entry into the freed slot. An emptied
// shelf is deleted and its collection leaves the vault listing the
// same way.
func (k keeper) unregister(db guild.KVStore, v *Vault, collectionID, tokenID []byte) error {
	if err := k.holdings.Delete(db, HoldingKey(v.Charter, collectionID, tokenID)); err != nil {
		return errors.Wrap(err, "cannot delete holding")
	}

	shelfKey := ShelfKey(v.Charter, collectionID)
	var shelf Shelf
	if err := k.shelves.One(db, shelfKey, &shelf); err != nil {
		return errors.Wrap(err, "cannot load shelf")
	}
	idx := -1
	for i, id := range shelf.TokenIds {
		if bytes.Equal(id, tokenID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.Wrap(errors.ErrState, "holding recorded but not shelved")
	}
	last := len(shelf.TokenIds) - 1
	shelf.TokenIds[idx] = shelf.TokenIds[last]
	shelf.TokenIds = shelf.TokenIds[:last]

	if len(shelf.TokenIds) != 0 {
		if _, err := k.shelves.Put(db, shelfKey, &shelf); err != nil {
			return errors.Wrap(err, "cannot store shelf")
		}
		return nil
	}

	if err := k.shelves.Delete(db, shelfKey); err != nil {
		return errors.Wrap(err, "cannot delete shelf")
	}
	for i, c := range v.Collections {
		if bytes.Equal(c, collectionID) {
			lastC := len(v.Collections) - 1
			v.Collections[i] = v.Collections[lastC]
			v.Collections = v.Collections[:lastC]
			break
		}
	}
	if _, err := k.vaults.Put(db, v.Charter, v); err != nil {
		return errors.Wrap(err, "cannot store vault")
	}
	return nil
}

// InitVaultHandler creates the custody registry of a charter.
type InitVaultHandler struct {
	keeper
}

var _ guild.Handler = InitVaultHandler{}

func (h InitVaultHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: initVaultCost}, nil
}

func (h InitVaultHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vault := Vault{
		Metadata: &guild.Metadata{},
		Charter:  msg.CharterId,
		Admin:    msg.Admin,
	}
	if _, err := h.vaults.Put(db, msg.CharterId, &vault); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return &guild.DeliverResult{Data: msg.CharterId}, nil
}

func (h InitVaultHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*InitVaultMsg, error) {
	var msg InitVaultMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch err := h.vaults.Has(db, msg.CharterId); {
	case err == nil:
		return nil, errors.Wrap(ErrAlreadyInitialized, "vault exists")
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return nil, errors.Wrap(err, "cannot check vault")
	}
	ok, err := h.gate.SignerAllowed(ctx, h.auth, db, msg.CharterId, charter.Permission_ADMIN)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "charter admin signature missing")
	}
	return &msg, nil
}

// DepositHandler moves a token from its owner into vault custody and
// records it. This is the push path where the owner hands the token
// over within a single transaction.
type DepositHandler struct {
	keeper
}

var _ guild.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	custody := CustodyCondition(msg.CharterId).Address()
	if err := h.tokens.Move(db, msg.CollectionId, msg.TokenId, custody); err != nil {
		return nil, errors.Wrap(err, "cannot take token into custody")
	}
	if err := h.register(db, vault, msg.CollectionId, msg.TokenId); err != nil {
		return nil, err
	}
	return &guild.DeliverResult{}, nil
}

func (h DepositHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*DepositMsg, *Vault, error) {
	var msg DepositMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := h.vault(db, msg.CharterId)
	if err != nil {
		return nil, nil, err
	}
	owner, err := h.tokens.OwnerOf(db, msg.CollectionId, msg.TokenId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot resolve token owner")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "token owner signature missing")
	}
	return &msg, vault, nil
}

// ReconcileHandler records a token that was transferred to the custody
// account directly. This is the pull path. Anyone may trigger it since
// it only converges the books with what the token ledger already says.
type ReconcileHandler struct {
	keeper
}

var _ guild.Handler = ReconcileHandler{}

func (h ReconcileHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: reconcileCost}, nil
}

func (h ReconcileHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.register(db, vault, msg.CollectionId, msg.TokenId); err != nil {
		return nil, err
	}
	return &guild.DeliverResult{}, nil
}

func (h ReconcileHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*ReconcileMsg, *Vault, error) {
	var msg ReconcileMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := h.vault(db, msg.CharterId)
	if err != nil {
		return nil, nil, err
	}
	owner, err := h.tokens.OwnerOf(db, msg.CollectionId, msg.TokenId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot resolve token owner")
	}
	if !CustodyCondition(msg.CharterId).Address().Equals(owner) {
		return nil, nil, errors.Wrap(ErrNotInCustody, "token owned elsewhere")
	}
	return &msg, vault, nil
}

// InternalTransferHandler reassigns the internal owner of a held
// token. The token itself never moves, only the book entry does.
type InternalTransferHandler struct {
	keeper
}

var _ guild.Handler = InternalTransferHandler{}

func (h InternalTransferHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: internalTransferCost}, nil
}

func (h InternalTransferHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, holding, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	holding.Owner = msg.NewOwner
	key := HoldingKey(msg.CharterId, msg.CollectionId, msg.TokenId)
	if _, err := h.holdings.Put(db, key, holding); err != nil {
		return nil, errors.Wrap(err, "cannot store holding")
	}
	return &guild.DeliverResult{}, nil
}

func (h InternalTransferHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*InternalTransferMsg, *Holding, error) {
	var msg InternalTransferMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.vault(db, msg.CharterId); err != nil {
		return nil, nil, err
	}
	ok, err := h.gate.SignerAllowed(ctx, h.auth, db, msg.CharterId, charter.Permission_CUSTODY_TRANSFER)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "custody transfer permission missing")
	}
	var holding Holding
	if err := h.holdings.One(db, HoldingKey(msg.CharterId, msg.CollectionId, msg.TokenId), &holding); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load holding")
	}
	return &msg, &holding, nil
}

// WithdrawHandler releases a token from custody to an external
// address and removes it from the books.
type WithdrawHandler struct {
	keeper
}

var _ guild.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, vault, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tokens.Move(db, msg.CollectionId, msg.TokenId, msg.Destination); err != nil {
		return nil, errors.Wrap(err, "cannot release token")
	}
	if err := h.unregister(db, vault, msg.CollectionId, msg.TokenId); err != nil {
		return nil, err
	}
	return &guild.DeliverResult{}, nil
}

func (h WithdrawHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*WithdrawMsg, *Vault, *Holding, error) {
	var msg WithdrawMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := h.vault(db, msg.CharterId)
	if err != nil {
		return nil, nil, nil, err
	}
	ok, err := h.gate.SignerAllowed(ctx, h.auth, db, msg.CharterId, charter.Permission_CUSTODY_WITHDRAW)
	if err != nil {
		return nil, nil, nil, err
	}
	if !ok {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "custody withdraw permission missing")
	}
	var holding Holding
	if err := h.holdings.One(db, HoldingKey(msg.CharterId, msg.CollectionId, msg.TokenId), &holding); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load holding")
	}
	// A token assigned to an individual member leaves only with that
	// member consenting. Pooled guild property needs the permission
	// alone.
	if !holding.Owner.Equals(GuildOwnerCondition(msg.CharterId).Address()) {
		if !h.auth.HasAddress(ctx, holding.Owner) {
			return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "holder signature missing")
		}
	}
	owner, err := h.tokens.OwnerOf(db, msg.CollectionId, msg.TokenId)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot resolve token owner")
	}
	if !CustodyCondition(msg.CharterId).Address().Equals(owner) {
		return nil, nil, nil, errors.Wrap(ErrNotInCustody, "custody lost")
	}
	return &msg, vault, &holding, nil
}
