package onboard

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/store"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/treasury"
)

const chainID = "test-guild-chain"

func onboardCtx() guild.Context {
	ctx := guild.WithChainID(context.Background(), chainID)
	return guild.WithBlockTime(ctx, time.Unix(1565790000, 0))
}

// testEnv wires a single charter with a 100 WGLD unit price together
// with the treasury and roster state that redeeming a coupon touches.
type testEnv struct {
	db        store.CacheableKVStore
	ctrl      treasury.BaseController
	gate      *charter.Gatekeeper
	nonces    orm.ModelBucket
	kyc       *btcec.PrivateKey
	charterID []byte
}

func newTestEnv(t testing.TB, maxUnits int64, topUp bool) *testEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "onboard", "charter", "treasury")

	kyc, err := btcec.NewPrivateKey(btcec.S256())
	assert.Nil(t, err)

	conf := Configuration{
		Metadata:      &guild.Metadata{Schema: 1},
		NativeTicker:  "GLD",
		WrappedTicker: "WGLD",
		UnitTicker:    "SEAT",
	}
	assert.Nil(t, gconf.Save(db, "onboard", &conf))

	charterID := guildtest.SequenceID(1)
	c := charter.Charter{
		Metadata:  &guild.Metadata{},
		Title:     "North Harbor Guild",
		Admin:     guildtest.NewCondition().Address(),
		KycSigner: SignerCondition(kyc.PubKey().SerializeCompressed()).Address(),
		UnitPrice: coin.NewCoin(100, 0, "WGLD"),
		MaxUnits:  maxUnits,
		TopUp:     topUp,
		Treasury:  charter.TreasuryCondition(charterID).Address(),
		CreatedAt: guild.AsUnixTime(time.Unix(1565700000, 0)),
	}
	if _, err := charter.NewCharterBucket().Put(db, charterID, &c); err != nil {
		t.Fatalf("cannot store charter: %+v", err)
	}

	return &testEnv{
		db:        db,
		ctrl:      treasury.NewController(treasury.NewBucket()),
		gate:      charter.NewGatekeeper(),
		nonces:    NewMemberNonceBucket(),
		kyc:       kyc,
		charterID: charterID,
	}
}

func (e *testEnv) handlers(signers ...guild.Condition) (OnboardTokenHandler, OnboardNativeHandler) {
	o := onboarder{
		auth:   &guildtest.Auth{Signers: signers},
		gate:   e.gate,
		ctrl:   e.ctrl,
		nonces: e.nonces,
	}
	return OnboardTokenHandler{onboarder: o}, OnboardNativeHandler{onboarder: o}
}

// coupon signs the redemption hash with the charter's KYC key.
func (e *testEnv) coupon(t testing.TB, member guild.Address, nonce int64) []byte {
	t.Helper()
	hash := CouponHash(e.charterID, VerifierCondition().Address(), chainID, member, nonce)
	sig, err := btcec.SignCompact(btcec.S256(), e.kyc, hash, true)
	assert.Nil(t, err)
	return sig
}

func (e *testEnv) fund(t testing.TB, addr guild.Address, c coin.Coin) {
	t.Helper()
	assert.Nil(t, e.ctrl.IssueCoins(e.db, addr, c))
}

// balance returns the whole part of the ticker balance, zero when the
// wallet or the ticker is absent.
func (e *testEnv) balance(t testing.TB, addr guild.Address, ticker string) int64 {
	t.Helper()
	coins, err := e.ctrl.Balance(e.db, addr)
	if errors.ErrEmpty.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	for _, c := range coins {
		if c.Ticker == ticker {
			return c.Whole
		}
	}
	return 0
}

func TestOnboardToken(t *testing.T) {
	e := newTestEnv(t, 10, false)
	member := guildtest.NewCondition()
	e.fund(t, member.Address(), coin.NewCoin(250, 0, "WGLD"))

	h, _ := e.handlers(member)
	msg := &OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: e.charterID,
		Member:    member.Address(),
		Amount:    coin.NewCoin(250, 0, "WGLD"),
		Nonce:     1,
		Signature: e.coupon(t, member.Address(), 1),
	}
	tx := &guildtest.Tx{Msg: msg}
	ctx := onboardCtx()

	cres, err := h.Check(ctx, e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, onboardCost, cres.GasAllocated)

	res, err := h.Deliver(ctx, e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, unitData(2), res.Data)

	// 250 paid, 200 retained for two units, 50 returned.
	assert.Equal(t, int64(200), e.balance(t, charter.TreasuryCondition(e.charterID).Address(), "WGLD"))
	assert.Equal(t, int64(50), e.balance(t, member.Address(), "WGLD"))
	assert.Equal(t, int64(2), e.balance(t, member.Address(), "SEAT"))

	active, err := e.gate.ActiveMember(e.db, e.charterID, member.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, active)

	var mn MemberNonce
	assert.Nil(t, e.nonces.One(e.db, member.Address(), &mn))
	assert.Equal(t, int64(1), mn.Nonce)

	// The same coupon cannot be redeemed twice.
	_, err = h.Deliver(ctx, e.db, tx)
	assert.IsErr(t, ErrNonceReplay, err)

	// The spent signature is worthless at the next nonce, the nonce
	// is part of the signed hash.
	msg.Nonce = 2
	_, err = h.Deliver(ctx, e.db, tx)
	assert.IsErr(t, ErrInvalidCoupon, err)

	// A fresh coupon does not help, the charter allows no top up.
	msg.Signature = e.coupon(t, member.Address(), 2)
	_, err = h.Deliver(ctx, e.db, tx)
	assert.IsErr(t, ErrAlreadyMember, err)
}

func TestOnboardTokenFailures(t *testing.T) {
	ctx := onboardCtx()

	t.Run("wrong message type", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		h, _ := e.handlers(guildtest.NewCondition())
		tx := &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "test/any"}}
		if _, err := h.Check(ctx, e.db, tx); !errors.ErrType.Is(err) {
			t.Fatalf("check: %+v", err)
		}
		if _, err := h.Deliver(ctx, e.db, tx); !errors.ErrType.Is(err) {
			t.Fatalf("deliver: %+v", err)
		}
	})

	t.Run("broken message", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		h, _ := e.handlers(guildtest.NewCondition())
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{Metadata: &guild.Metadata{Schema: 1}}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, errors.ErrEmpty, err)
	})

	t.Run("wrong contribution ticker", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "GLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		// The ticker is bound before any state is touched, so the
		// mempool check already refuses the transaction.
		if _, err := h.Check(ctx, e.db, tx); !errors.ErrCurrency.Is(err) {
			t.Fatalf("check: %+v", err)
		}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, errors.ErrCurrency, err)
	})

	t.Run("missing signature", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		h, _ := e.handlers()
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "WGLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, errors.ErrUnauthorized, err)
	})

	t.Run("unknown charter", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		e.fund(t, member.Address(), coin.NewCoin(250, 0, "WGLD"))
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: guildtest.SequenceID(9),
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "WGLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, errors.ErrNotFound, err)
	})

	t.Run("foreign coupon signer", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		e.fund(t, member.Address(), coin.NewCoin(250, 0, "WGLD"))

		rogue, err := btcec.NewPrivateKey(btcec.S256())
		assert.Nil(t, err)
		hash := CouponHash(e.charterID, VerifierCondition().Address(), chainID, member.Address(), 1)
		sig, err := btcec.SignCompact(btcec.S256(), rogue, hash, true)
		assert.Nil(t, err)

		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "WGLD"),
			Nonce:     1,
			Signature: sig,
		}}
		_, err = h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, ErrInvalidCoupon, err)
	})

	t.Run("nonce ahead of sequence", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		e.fund(t, member.Address(), coin.NewCoin(250, 0, "WGLD"))
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "WGLD"),
			Nonce:     5,
			Signature: e.coupon(t, member.Address(), 5),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, ErrNonceReplay, err)
	})

	t.Run("below minimum", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		e.fund(t, member.Address(), coin.NewCoin(99, 0, "WGLD"))
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(99, 0, "WGLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, ErrBelowMinimum, err)

		// Nothing moved and the coupon is still fresh.
		assert.Equal(t, int64(99), e.balance(t, member.Address(), "WGLD"))
		assert.Equal(t, int64(0), e.balance(t, charter.TreasuryCondition(e.charterID).Address(), "WGLD"))
		nonce, err := currentNonce(e.db, e.nonces, member.Address())
		assert.Nil(t, err)
		assert.Equal(t, int64(0), nonce)
	})

	t.Run("unit limit", func(t *testing.T) {
		e := newTestEnv(t, 2, false)
		member := guildtest.NewCondition()
		e.fund(t, member.Address(), coin.NewCoin(300, 0, "WGLD"))
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(300, 0, "WGLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, ErrUnitLimit, err)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		e := newTestEnv(t, 10, false)
		member := guildtest.NewCondition()
		h, _ := e.handlers(member)
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(250, 0, "WGLD"),
			Nonce:     1,
			Signature: e.coupon(t, member.Address(), 1),
		}}
		_, err := h.Deliver(ctx, e.db, tx)
		assert.IsErr(t, errors.ErrEmpty, err)
	})
}

func TestOnboardTokenTopUp(t *testing.T) {
	e := newTestEnv(t, 6, true)
	member := guildtest.NewCondition()
	e.fund(t, member.Address(), coin.NewCoin(1000, 0, "WGLD"))

	h, _ := e.handlers(member)
	ctx := onboardCtx()
	deliver := func(nonce, amount int64) (*guild.DeliverResult, error) {
		tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: e.charterID,
			Member:    member.Address(),
			Amount:    coin.NewCoin(amount, 0, "WGLD"),
			Nonce:     nonce,
			Signature: e.coupon(t, member.Address(), nonce),
		}}
		return h.Deliver(ctx, e.db, tx)
	}

	res, err := deliver(1, 300)
	assert.Nil(t, err)
	assert.Equal(t, unitData(3), res.Data)

	// Topping up to the cap is fine.
	res, err = deliver(2, 300)
	assert.Nil(t, err)
	assert.Equal(t, unitData(3), res.Data)
	assert.Equal(t, int64(6), e.balance(t, member.Address(), "SEAT"))
	assert.Equal(t, int64(600), e.balance(t, charter.TreasuryCondition(e.charterID).Address(), "WGLD"))
	assert.Equal(t, int64(400), e.balance(t, member.Address(), "WGLD"))

	// One more unit would exceed the cumulative limit.
	_, err = deliver(3, 100)
	assert.IsErr(t, ErrUnitLimit, err)
}

func TestOnboardSponsoredMember(t *testing.T) {
	e := newTestEnv(t, 10, false)
	sponsor := guildtest.NewCondition()
	member := guildtest.NewCondition()
	e.fund(t, sponsor.Address(), coin.NewCoin(250, 0, "WGLD"))

	h, _ := e.handlers(sponsor)
	tx := &guildtest.Tx{Msg: &OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: e.charterID,
		Member:    member.Address(),
		Amount:    coin.NewCoin(250, 0, "WGLD"),
		Nonce:     1,
		Signature: e.coupon(t, member.Address(), 1),
	}}
	_, err := h.Deliver(onboardCtx(), e.db, tx)
	assert.Nil(t, err)

	// The sponsor pays and takes the remainder, the coupon subject
	// receives the units and the membership.
	assert.Equal(t, int64(50), e.balance(t, sponsor.Address(), "WGLD"))
	assert.Equal(t, int64(0), e.balance(t, sponsor.Address(), "SEAT"))
	assert.Equal(t, int64(2), e.balance(t, member.Address(), "SEAT"))

	active, err := e.gate.ActiveMember(e.db, e.charterID, member.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, active)
	active, err = e.gate.ActiveMember(e.db, e.charterID, sponsor.Address())
	assert.Nil(t, err)
	assert.Equal(t, false, active)
}

func TestOnboardNative(t *testing.T) {
	e := newTestEnv(t, 10, false)
	member := guildtest.NewCondition()
	e.fund(t, member.Address(), coin.NewCoin(250, 0, "GLD"))

	_, h := e.handlers(member)
	msg := &OnboardNativeMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: e.charterID,
		Member:    member.Address(),
		Amount:    coin.NewCoin(250, 0, "GLD"),
		Nonce:     1,
		Signature: e.coupon(t, member.Address(), 1),
	}
	tx := &guildtest.Tx{Msg: msg}
	ctx := onboardCtx()

	cres, err := h.Check(ctx, e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, onboardCost, cres.GasAllocated)

	res, err := h.Deliver(ctx, e.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, unitData(2), res.Data)

	// The native value sits in the wrap reserve, the wrapped value
	// splits between the treasury and the refund.
	assert.Equal(t, int64(0), e.balance(t, member.Address(), "GLD"))
	assert.Equal(t, int64(250), e.balance(t, WrapCondition(e.charterID).Address(), "GLD"))
	assert.Equal(t, int64(200), e.balance(t, charter.TreasuryCondition(e.charterID).Address(), "WGLD"))
	assert.Equal(t, int64(50), e.balance(t, member.Address(), "WGLD"))
	assert.Equal(t, int64(2), e.balance(t, member.Address(), "SEAT"))

	active, err := e.gate.ActiveMember(e.db, e.charterID, member.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, active)
}

func TestOnboardNativeWantsNativeTicker(t *testing.T) {
	e := newTestEnv(t, 10, false)
	member := guildtest.NewCondition()
	e.fund(t, member.Address(), coin.NewCoin(250, 0, "WGLD"))

	_, h := e.handlers(member)
	tx := &guildtest.Tx{Msg: &OnboardNativeMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: e.charterID,
		Member:    member.Address(),
		Amount:    coin.NewCoin(250, 0, "WGLD"),
		Nonce:     1,
		Signature: e.coupon(t, member.Address(), 1),
	}}
	_, err := h.Deliver(onboardCtx(), e.db, tx)
	assert.IsErr(t, errors.ErrCurrency, err)
}
