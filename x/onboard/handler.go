package onboard

import (
	"encoding/binary"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/treasury"
)

const onboardCost int64 = 200

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r guild.Registry, auth x.Authenticator, gate *charter.Gatekeeper, ctrl treasury.Controller) {
	r = migration.SchemaMigratingRegistry("onboard", r)

	o := onboarder{
		auth:   auth,
		gate:   gate,
		ctrl:   ctrl,
		nonces: NewMemberNonceBucket(),
	}

	r.Handle(&OnboardTokenMsg{}, OnboardTokenHandler{onboarder: o})
	r.Handle(&OnboardNativeMsg{}, OnboardNativeHandler{onboarder: o})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register the nonce bucket as "/nonces".
func RegisterQuery(qr guild.QueryRouter) {
	NewMemberNonceBucket().Register("nonces", qr)
}

// onboarder is the coupon redemption machinery shared by both entry
// points.
type onboarder struct {
	auth   x.Authenticator
	gate   *charter.Gatekeeper
	ctrl   treasury.Controller
	nonces orm.ModelBucket
}

// redeem verifies the coupon and performs the whole onboarding
// transition. It returns the number of units granted. Any failure
// must abort the transaction, so no partial state survives.
func (o onboarder) redeem(ctx guild.Context, db guild.KVStore, conf Configuration, charterID []byte, member guild.Address, amount coin.Coin, claimedNonce int64, sig []byte) (int64, error) {
	c, err := o.gate.Charter(db, charterID)
	if err != nil {
		return 0, err
	}

	// The claimed nonce is part of the signed hash. A coupon
	// presented with any other nonce recovers to a different key and
	// fails the signer comparison below.
	hash := CouponHash(charterID, VerifierCondition().Address(), guild.GetChainID(ctx), member, claimedNonce)
	signer, err := RecoverSigner(hash, sig)
	if err != nil {
		return 0, err
	}
	if !signer.Equals(c.KycSigner) {
		return 0, errors.Wrap(ErrInvalidCoupon, "signer is not the registered KYC identity")
	}

	current, err := currentNonce(db, o.nonces, member)
	if err != nil {
		return 0, err
	}
	if claimedNonce != current+1 {
		return 0, errors.Wrapf(ErrNonceReplay, "expected nonce %d", current+1)
	}

	active, err := o.gate.ActiveMember(db, charterID, member)
	if err != nil {
		return 0, err
	}
	if active && !c.TopUp {
		return 0, errors.Wrap(ErrAlreadyMember, "charter allows no top up")
	}

	units := amount.Whole / c.UnitPrice.Whole
	if units == 0 {
		return 0, errors.Wrapf(ErrBelowMinimum, "unit price is %s", c.UnitPrice)
	}

	existing, err := o.unitBalance(db, conf, member)
	if err != nil {
		return 0, err
	}
	if existing+units > c.MaxUnits {
		return 0, errors.Wrapf(ErrUnitLimit, "%d units held, %d requested, %d allowed", existing, units, c.MaxUnits)
	}

	// Collect the full contribution, then pay back what does not
	// convert into a whole unit. The ledger total is unchanged by
	// the round trip.
	sender := x.MainSigner(ctx, o.auth).Address()
	if err := o.ctrl.MoveCoins(db, sender, c.Treasury, amount); err != nil {
		return 0, errors.Wrap(err, "cannot collect contribution")
	}
	retained, err := c.UnitPrice.Multiply(units)
	if err != nil {
		return 0, errors.Wrap(err, "retained amount")
	}
	refund, err := amount.Subtract(retained)
	if err != nil {
		return 0, errors.Wrap(err, "refund amount")
	}
	if !refund.IsZero() {
		if err := o.ctrl.MoveCoins(db, c.Treasury, sender, refund); err != nil {
			return 0, errors.Wrap(err, "cannot refund remainder")
		}
	}

	if err := o.ctrl.IssueCoins(db, member, coin.NewCoin(units, 0, conf.UnitTicker)); err != nil {
		return 0, errors.Wrap(err, "cannot issue units")
	}
	now, err := guild.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	if err := o.gate.Activate(db, charterID, member, guild.AsUnixTime(now)); err != nil {
		return 0, errors.Wrap(err, "cannot activate membership")
	}

	mn := MemberNonce{Metadata: &guild.Metadata{}, Nonce: claimedNonce}
	if _, err := o.nonces.Put(db, member, &mn); err != nil {
		return 0, errors.Wrap(err, "cannot store nonce")
	}
	return units, nil
}

// unitBalance is the number of units the member already holds on the
// fund ledger.
func (o onboarder) unitBalance(db guild.KVStore, conf Configuration, member guild.Address) (int64, error) {
	coins, err := o.ctrl.Balance(db, member)
	switch {
	case err == nil:
		// All good.
	case errors.ErrEmpty.Is(err):
		// No wallet means no units.
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load balance")
	}
	for _, c := range coins {
		if c.Ticker == conf.UnitTicker {
			return c.Whole, nil
		}
	}
	return 0, nil
}

func unitData(units int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(units))
	return b
}

// OnboardTokenHandler redeems a coupon paid with the wrapped ticker.
type OnboardTokenHandler struct {
	onboarder
}

var _ guild.Handler = OnboardTokenHandler{}

func (h OnboardTokenHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: onboardCost}, nil
}

func (h OnboardTokenHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	units, err := h.redeem(ctx, db, conf, msg.CharterId, msg.Member, msg.Amount, msg.Nonce, msg.Signature)
	if err != nil {
		return nil, err
	}
	return &guild.DeliverResult{Data: unitData(units)}, nil
}

func (h OnboardTokenHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*OnboardTokenMsg, Configuration, error) {
	var msg OnboardTokenMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, Configuration{}, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, Configuration{}, err
	}
	if msg.Amount.Ticker != conf.WrappedTicker {
		return nil, Configuration{}, errors.Wrapf(errors.ErrCurrency, "contribution must be in %s", conf.WrappedTicker)
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, Configuration{}, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &msg, conf, nil
}

// OnboardNativeHandler redeems a coupon paid with the native ticker.
// The native value is locked in the wrap reserve of the charter and
// the sender receives the wrapped ticker 1:1 before the shared
// transition runs.
type OnboardNativeHandler struct {
	onboarder
}

var _ guild.Handler = OnboardNativeHandler{}

func (h OnboardNativeHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &guild.CheckResult{GasAllocated: onboardCost}, nil
}

func (h OnboardNativeHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	sender := x.MainSigner(ctx, h.auth).Address()
	reserve := WrapCondition(msg.CharterId).Address()
	if err := h.ctrl.MoveCoins(db, sender, reserve, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot lock native value")
	}
	wrapped := coin.NewCoin(msg.Amount.Whole, msg.Amount.Fractional, conf.WrappedTicker)
	if err := h.ctrl.IssueCoins(db, sender, wrapped); err != nil {
		return nil, errors.Wrap(err, "cannot wrap native value")
	}

	units, err := h.redeem(ctx, db, conf, msg.CharterId, msg.Member, wrapped, msg.Nonce, msg.Signature)
	if err != nil {
		return nil, err
	}
	return &guild.DeliverResult{Data: unitData(units)}, nil
}

func (h OnboardNativeHandler) validate(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*OnboardNativeMsg, Configuration, error) {
	var msg OnboardNativeMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, Configuration{}, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, Configuration{}, err
	}
	if msg.Amount.Ticker != conf.NativeTicker {
		return nil, Configuration{}, errors.Wrapf(errors.ErrCurrency, "contribution must be in %s", conf.NativeTicker)
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, Configuration{}, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &msg, conf, nil
}

func NewConfigHandler(auth x.Authenticator) guild.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("onboard", &conf, auth, migration.CurrentAdmin)
}
