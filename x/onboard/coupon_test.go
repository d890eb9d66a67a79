package onboard

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestCouponHashBindsEveryField(t *testing.T) {
	member := guildtest.NewCondition().Address()
	verifier := VerifierCondition().Address()

	base := CouponHash(guildtest.SequenceID(1), verifier, "test-guild-chain", member, 1)

	variants := map[string][]byte{
		"charter":  CouponHash(guildtest.SequenceID(2), verifier, "test-guild-chain", member, 1),
		"verifier": CouponHash(guildtest.SequenceID(1), guildtest.NewCondition().Address(), "test-guild-chain", member, 1),
		"chain id": CouponHash(guildtest.SequenceID(1), verifier, "test-guild-fork", member, 1),
		"member":   CouponHash(guildtest.SequenceID(1), verifier, "test-guild-chain", guildtest.NewCondition().Address(), 1),
		"nonce":    CouponHash(guildtest.SequenceID(1), verifier, "test-guild-chain", member, 2),
	}
	for name, other := range variants {
		if bytes.Equal(base, other) {
			t.Errorf("changing the %s must change the hash", name)
		}
	}

	// The construction is deterministic, off chain issuers depend on
	// that.
	again := CouponHash(guildtest.SequenceID(1), verifier, "test-guild-chain", member, 1)
	assert.Equal(t, base, again)
}

func TestRecoverSigner(t *testing.T) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	assert.Nil(t, err)

	hash := CouponHash(guildtest.SequenceID(1), VerifierCondition().Address(), "test-guild-chain", guildtest.NewCondition().Address(), 1)
	sig, err := btcec.SignCompact(btcec.S256(), priv, hash, true)
	assert.Nil(t, err)

	signer, err := RecoverSigner(hash, sig)
	assert.Nil(t, err)
	want := SignerCondition(priv.PubKey().SerializeCompressed()).Address()
	assert.Equal(t, want, signer)

	// A signature presented together with a different hash must not
	// resolve to the original identity.
	tampered := CouponHash(guildtest.SequenceID(1), VerifierCondition().Address(), "test-guild-chain", guildtest.NewCondition().Address(), 2)
	if got, err := RecoverSigner(tampered, sig); err == nil && got.Equals(want) {
		t.Fatal("tampered hash recovered the original signer")
	}
}

func TestRecoverSignerMalformed(t *testing.T) {
	hash := CouponHash(guildtest.SequenceID(1), VerifierCondition().Address(), "test-guild-chain", guildtest.NewCondition().Address(), 1)

	cases := map[string][]byte{
		"empty":             nil,
		"too short":         make([]byte, couponSigLength-1),
		"too long":          make([]byte, couponSigLength+1),
		"bad recovery byte": append([]byte{99}, make([]byte, 64)...),
		"garbage body":      append([]byte{27}, make([]byte, 64)...),
	}
	for name, sig := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := RecoverSigner(hash, sig)
			assert.IsErr(t, ErrInvalidCoupon, err)
		})
	}
}
