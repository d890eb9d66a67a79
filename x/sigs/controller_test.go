package sigs

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
)

func TestSignBytes(t *testing.T) {
	bz := []byte("car")
	tx := NewStdTx(bz)

	bz2 := []byte("horse")
	tx2 := NewStdTx(bz2)

	// make sure the values out are sensible
	tbz, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, bz, tbz)
	tbz2, err := tx2.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, bz2, tbz2)

	// make sure sign bytes match tx
	chainID := "dis-is-da-chain"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	assert.Nil(t, err)
	c1a, err := BuildSignBytes(bz, chainID, 17)
	assert.Nil(t, err)
	assert.Equal(t, c1, c1a)
	if len(c1) != 64 {
		t.Fatalf("sign bytes must be sha512 output, got %d bytes", len(c1))
	}

	// make sure sign bytes change on tx, chain_id and seq
	ct, err := BuildSignBytes(bz2, chainID, 17)
	assert.Nil(t, err)
	cc, err := BuildSignBytes(bz, "foobar", 17)
	assert.Nil(t, err)
	cs, err := BuildSignBytes(bz, chainID, 18)
	assert.Nil(t, err)
	for i, other := range [][]byte{ct, cc, cs} {
		if string(c1) == string(other) {
			t.Fatalf("sign bytes %d must differ", i)
		}
	}

	// invalid inputs must be rejected
	if _, err := BuildSignBytes(bz, "invalid;;chain", 17); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
	if _, err := BuildSignBytes(bz, chainID, -1); !ErrInvalidSequence.Is(err) {
		t.Fatalf("want invalid sequence error, got %+v", err)
	}
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	migration.MustInitPkg(kv, "sigs")

	priv := crypto.GenPrivKeyEd25519()
	perm := priv.PublicKey().Condition()

	chainID := "emo-music-2345"
	bz := []byte("my special valentine")
	tx := NewStdTx(bz)

	sig0, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)
	sig2, err := SignTx(priv, tx, chainID, 2)
	assert.Nil(t, err)
	sig13, err := SignTx(priv, tx, chainID, 13)
	assert.Nil(t, err)

	// signing must be deterministic
	sig2a, err := SignTx(priv, tx, chainID, 2)
	assert.Nil(t, err)
	assert.Equal(t, sig2, sig2a)

	// the first signature must use sequence 0
	if _, err := VerifySignature(kv, sig1, bz, chainID); !ErrInvalidSequence.Is(err) {
		t.Fatalf("want invalid sequence, got %+v", err)
	}
	// an empty signature never passes
	if _, err := VerifySignature(kv, new(StdSignature), bz, chainID); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	sign, err := VerifySignature(kv, sig0, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, perm, sign)

	sign, err = VerifySignature(kv, sig1, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, perm, sign)

	// replaying an already used sequence is blocked
	if _, err := VerifySignature(kv, sig1, bz, chainID); !ErrInvalidSequence.Is(err) {
		t.Fatalf("want invalid sequence, got %+v", err)
	}
	// so is jumping ahead
	if _, err := VerifySignature(kv, sig13, bz, chainID); !ErrInvalidSequence.Is(err) {
		t.Fatalf("want invalid sequence, got %+v", err)
	}

	// signature for another chain does not verify
	if _, err := VerifySignature(kv, sig2, bz, "some-other-chain"); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	// tampering with the signature breaks it
	copy(sig2.Signature.GetEd25519(), []byte("break this"))
	if _, err := VerifySignature(kv, sig2, bz, chainID); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
}

func TestVerifyTxSignatures(t *testing.T) {
	kv := store.MemStore()
	migration.MustInitPkg(kv, "sigs")

	priv := crypto.GenPrivKeyEd25519()
	perm := priv.PublicKey().Condition()
	priv2 := crypto.GenPrivKeyEd25519()
	perm2 := priv2.PublicKey().Condition()

	chainID := "chain-gang-2"
	bz := []byte("my special valentine")
	tx := NewStdTx(bz)
	tx2 := NewStdTx([]byte("counterfeit"))

	// no signatures is ok, but returns no signers
	signers, err := VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(signers))

	sig, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)
	sig2, err := SignTx(priv2, tx, chainID, 0)
	assert.Nil(t, err)

	// one signature
	tx.Signatures = []*StdSignature{sig}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, []guild.Condition{perm}, signers)

	// two signatures, sequences already bumped
	tx.Signatures = []*StdSignature{sig1, sig2}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, []guild.Condition{perm, perm2}, signers)

	// a signature on different content is rejected and returns no signers
	tx2.Signatures = []*StdSignature{sig2}
	signers, err = VerifyTxSignatures(kv, tx2, chainID)
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	assert.Nil(t, signers)
}
