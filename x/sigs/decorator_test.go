package sigs

import (
	"context"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
)

func TestDecorator(t *testing.T) {
	chainID := "deco-rate"
	priv := crypto.GenPrivKeyEd25519()
	perms := []guild.Condition{priv.PublicKey().Condition()}

	bz := []byte("art")
	tx := NewStdTx(bz)
	sig0, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)

	run := func(t *testing.T, fn func(guild.Decorator, guild.KVStore, guild.Tx, *sigCheckHandler) error) {
		kv := store.MemStore()
		migration.MustInitPkg(kv, "sigs")
		next := new(sigCheckHandler)
		d := NewDecorator()

		// a transaction without signatures is rejected
		tx.Signatures = nil
		if err := fn(d, kv, tx, next); !errors.ErrUnauthorized.Is(err) {
			t.Fatalf("want unauthorized, got %+v", err)
		}

		// with a signature it is passed down with the signer condition
		tx.Signatures = []*StdSignature{sig0}
		assert.Nil(t, fn(d, kv, tx, next))
		assert.Equal(t, perms, next.Signers)

		// replaying the same sequence is blocked
		if err := fn(d, kv, tx, next); !ErrInvalidSequence.Is(err) {
			t.Fatalf("want invalid sequence, got %+v", err)
		}

		// unsigned transactions pass once we allow missing sigs
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		assert.Nil(t, fn(ad, kv, tx, next))
		assert.Equal(t, []guild.Condition{}, next.Signers)

		// and the sequence still advances for signed ones
		tx.Signatures = []*StdSignature{sig1}
		assert.Nil(t, fn(ad, kv, tx, next))
		assert.Equal(t, perms, next.Signers)

		// a transaction that cannot carry signatures passes through untouched
		next.Signers = perms
		assert.Nil(t, fn(d, kv, &guildtest.Tx{Msg: &guildtest.Msg{}}, next))
		assert.Nil(t, next.Signers)
	}

	ctx := guild.WithChainID(context.Background(), chainID)

	t.Run("check", func(t *testing.T) {
		run(t, func(d guild.Decorator, kv guild.KVStore, tx guild.Tx, next *sigCheckHandler) error {
			res, err := d.Check(ctx, kv, tx, next)
			if err == nil && res.GasPayment != int64(len(next.Signers))*signatureVerifyCost {
				t.Fatalf("unexpected gas payment: %d", res.GasPayment)
			}
			return err
		})
	})

	t.Run("deliver", func(t *testing.T) {
		run(t, func(d guild.Decorator, kv guild.KVStore, tx guild.Tx, next *sigCheckHandler) error {
			_, err := d.Deliver(ctx, kv, tx, next)
			return err
		})
	})
}

// sigCheckHandler stores the signers it sees on every call.
type sigCheckHandler struct {
	Signers []guild.Condition
}

var _ guild.Handler = (*sigCheckHandler)(nil)

func (s *sigCheckHandler) Check(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &guild.CheckResult{}, nil
}

func (s *sigCheckHandler) Deliver(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &guild.DeliverResult{}, nil
}
