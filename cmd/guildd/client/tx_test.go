package client

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
)

func TestSendTx(t *testing.T) {
	source := GenPrivateKey()
	sourceAddr := source.PublicKey().Address()
	rcpt := GenPrivateKey().PublicKey().Address()
	amount := coin.Coin{Whole: 59, Fractional: 42, Ticker: "ECK"}

	chainID := "ding-dong"
	tx := BuildSendTx(sourceAddr, rcpt, amount, "Hi There")
	// if we sign with 0, we can validate against an empty db
	SignTx(tx, source, chainID, 0)

	// make sure the tx has a sig
	assert.Equal(t, 1, len(tx.GetSignatures()))

	// make sure this validates
	db := store.MemStore()
	migration.MustInitPkg(db, "sigs")
	conds, err := sigs.VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(conds))
	assert.Equal(t, source.PublicKey().Condition(), conds[0])

	// make sure other chain doesn't validate
	db = store.MemStore()
	migration.MustInitPkg(db, "sigs")
	_, err = sigs.VerifyTxSignatures(db, tx, "foobar")
	assert.Equal(t, true, err != nil)

	// parse tx and verify we have the proper fields
	data, err := tx.Marshal()
	assert.Nil(t, err)
	parsed, err := ParseTx(data)
	assert.Nil(t, err)
	msg, err := parsed.GetMsg()
	assert.Nil(t, err)
	send, ok := msg.(*treasury.SendMsg)
	assert.Equal(t, true, ok)

	assert.Equal(t, "Hi There", send.Memo)
	assert.Equal(t, rcpt, send.Destination)
	assert.Equal(t, sourceAddr, send.Source)
	assert.Equal(t, int64(59), send.Amount.Whole)
	assert.Equal(t, "ECK", send.Amount.Ticker)
}

func TestOnboardTx(t *testing.T) {
	kycKey, err := btcec.NewPrivateKey(btcec.S256())
	assert.Nil(t, err)
	member := GenPrivateKey().PublicKey().Address()
	cid := []byte{0, 0, 0, 0, 0, 0, 0, 7}
	amount := coin.NewCoin(300, 0, "WGLD")

	coupon, err := IssueCoupon(kycKey, cid, "onboard-chain", member, 4)
	assert.Nil(t, err)

	tx := BuildOnboardTx(cid, member, amount, 4, coupon)
	data, err := tx.Marshal()
	assert.Nil(t, err)
	parsed, err := ParseTx(data)
	assert.Nil(t, err)
	msg, err := parsed.GetMsg()
	assert.Nil(t, err)
	ob, ok := msg.(*onboard.OnboardTokenMsg)
	assert.Equal(t, true, ok)
	assert.Equal(t, cid, ob.CharterId)
	assert.Equal(t, member, ob.Member)
	assert.Equal(t, int64(4), ob.Nonce)
	assert.Equal(t, amount, ob.Amount)

	// the coupon recovers to the kyc signer identity
	hash := onboard.CouponHash(cid, onboard.VerifierCondition().Address(), "onboard-chain", member, 4)
	signer, err := onboard.RecoverSigner(hash, ob.Signature)
	assert.Nil(t, err)
	wantSigner := onboard.SignerCondition(kycKey.PubKey().SerializeCompressed()).Address()
	assert.Equal(t, wantSigner, signer)

	// the same coupon presented under another nonce names a stranger
	wrong := onboard.CouponHash(cid, onboard.VerifierCondition().Address(), "onboard-chain", member, 5)
	signer, err = onboard.RecoverSigner(wrong, ob.Signature)
	if err == nil && signer.Equals(wantSigner) {
		t.Fatal("a replayed coupon must not recover to the signer")
	}
}
