package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/store"
	"github.com/tendermint/go-amino"
)

func TestDecoratorSplitsBatch(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()
	d := NewDecorator()

	msg := newExecuteBatchMsg(4)
	tx := &guildtest.Tx{Msg: msg}
	next := &recordingHandler{
		check:   &guild.CheckResult{Data: []byte{7}, Log: "ok", GasAllocated: 11, GasPayment: 3},
		deliver: &guild.DeliverResult{Data: []byte{7}, Log: "ok", GasUsed: 11},
	}

	cres, err := d.Check(ctx, db, tx, next)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(next.checkMsgs))
	assert.Equal(t, msg.msgs, next.checkMsgs)
	assert.Equal(t, int64(4*11), cres.GasAllocated)
	assert.Equal(t, int64(4*3), cres.GasPayment)
	assert.Equal(t, strings.Join([]string{"ok", "ok", "ok", "ok"}, "\n"), cres.Log)

	wantData, err := amino.MarshalBinaryBare([][]byte{{7}, {7}, {7}, {7}})
	assert.Nil(t, err)
	assert.Equal(t, wantData, cres.Data)

	dres, err := d.Deliver(ctx, db, tx, next)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(next.deliverMsgs))
	assert.Equal(t, int64(4*11), dres.GasUsed)
	assert.Equal(t, wantData, dres.Data)
}

func TestDecoratorPassesNonBatch(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()
	d := NewDecorator()

	tx := &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "test/any"}}
	next := &recordingHandler{
		check:   &guild.CheckResult{Data: []byte("untouched")},
		deliver: &guild.DeliverResult{Data: []byte("untouched")},
	}

	cres, err := d.Check(ctx, db, tx, next)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(next.checkMsgs))
	assert.Equal(t, []byte("untouched"), cres.Data)

	dres, err := d.Deliver(ctx, db, tx, next)
	assert.Nil(t, err)
	assert.Equal(t, []byte("untouched"), dres.Data)
}

func TestDecoratorRejectsHugeBatch(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()
	d := NewDecorator()

	tx := &guildtest.Tx{Msg: newExecuteBatchMsg(MaxBatchMessages + 1)}
	next := &recordingHandler{
		check:   &guild.CheckResult{},
		deliver: &guild.DeliverResult{},
	}

	if _, err := d.Check(ctx, db, tx, next); !errors.ErrMsg.Is(err) {
		t.Fatalf("want msg error, got %+v", err)
	}
	if _, err := d.Deliver(ctx, db, tx, next); !errors.ErrMsg.Is(err) {
		t.Fatalf("want msg error, got %+v", err)
	}
	assert.Equal(t, 0, len(next.checkMsgs))
	assert.Equal(t, 0, len(next.deliverMsgs))
}

func TestDecoratorStopsOnFirstFailure(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()
	d := NewDecorator()

	tx := &guildtest.Tx{Msg: newExecuteBatchMsg(5)}
	next := &recordingHandler{
		check:   &guild.CheckResult{},
		deliver: &guild.DeliverResult{},
		failAt:  3,
	}

	if _, err := d.Check(ctx, db, tx, next); !errors.ErrExpired.Is(err) {
		t.Fatalf("want expired error, got %+v", err)
	}
	assert.Equal(t, 3, len(next.checkMsgs))

	if _, err := d.Deliver(ctx, db, tx, next); !errors.ErrExpired.Is(err) {
		t.Fatalf("want expired error, got %+v", err)
	}
	assert.Equal(t, 3, len(next.deliverMsgs))
}

// recordingHandler remembers every message it was called with and replies
// with a copy of a fixed result. When failAt is non zero, that call fails.
type recordingHandler struct {
	check       *guild.CheckResult
	deliver     *guild.DeliverResult
	checkMsgs   []guild.Msg
	deliverMsgs []guild.Msg
	failAt      int
}

var _ guild.Handler = (*recordingHandler)(nil)

func (h *recordingHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	h.checkMsgs = append(h.checkMsgs, msg)
	if h.failAt != 0 && len(h.checkMsgs) == h.failAt {
		return nil, errors.ErrExpired
	}
	cpy := *h.check
	return &cpy, nil
}

func (h *recordingHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	h.deliverMsgs = append(h.deliverMsgs, msg)
	if h.failAt != 0 && len(h.deliverMsgs) == h.failAt {
		return nil, errors.ErrExpired
	}
	cpy := *h.deliver
	return &cpy, nil
}
