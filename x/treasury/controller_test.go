package treasury

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
)

func walletCoins(t testing.TB, db guild.KVStore, addr guild.Address) coin.Coins {
	t.Helper()
	obj, err := NewBucket().Get(db, addr)
	if err != nil {
		t.Fatalf("cannot get wallet: %+v", err)
	}
	return AsCoins(obj)
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")

	addr := guildtest.NewCondition().Address()
	addr2 := guildtest.NewCondition().Address()
	control := NewController(NewBucket())

	plus := coin.NewCoin(500, 1000, "GLD")
	minus := coin.NewCoin(-400, -600, "GLD")
	total := coin.NewCoin(100, 400, "GLD")
	other := coin.NewCoin(1, 0, "SEAT")

	assert.Nil(t, walletCoins(t, db, addr))
	assert.Nil(t, walletCoins(t, db, addr2))

	// Issue positive amount.
	assert.Nil(t, control.IssueCoins(db, addr, plus))
	assert.Equal(t, true, walletCoins(t, db, addr).Contains(plus))
	assert.Nil(t, walletCoins(t, db, addr2))

	// Issuing a negative amount burns.
	assert.Nil(t, control.IssueCoins(db, addr, minus))
	w := walletCoins(t, db, addr)
	assert.Equal(t, false, w.Contains(plus))
	assert.Equal(t, true, w.Contains(total))

	// Wallets are independent.
	assert.Nil(t, control.IssueCoins(db, addr2, other))
	assert.Equal(t, false, walletCoins(t, db, addr).Contains(other))
	assert.Equal(t, true, walletCoins(t, db, addr2).Contains(other))

	// Burning down to zero removes the currency.
	assert.Nil(t, control.IssueCoins(db, addr2, other.Negative()))
	assert.Equal(t, true, walletCoins(t, db, addr2).IsEmpty())

	// Overflow is rejected and the wallet state is untouched.
	if err := control.IssueCoins(db, addr, coin.NewCoin(coin.MaxInt, 0, "GLD")); err == nil {
		t.Fatal("expected an overflow error")
	}
	assert.Equal(t, true, walletCoins(t, db, addr).Contains(total))
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")

	addr := guildtest.NewCondition().Address()
	addr2 := guildtest.NewCondition().Address()
	addr3 := guildtest.NewCondition().Address()
	control := NewController(NewBucket())

	bank := coin.NewCoin(50000, 0, "GLD")
	send := coin.NewCoin(300, 0, "GLD")

	// Cannot send from an empty wallet.
	assert.IsErr(t, errors.ErrEmpty, control.MoveCoins(db, addr, addr2, send))

	assert.Nil(t, control.IssueCoins(db, addr, bank))

	assert.Nil(t, control.MoveCoins(db, addr, addr2, send))
	assert.Equal(t, true, walletCoins(t, db, addr).Contains(coin.NewCoin(49700, 0, "GLD")))
	assert.Equal(t, true, walletCoins(t, db, addr2).Contains(send))
	assert.Nil(t, walletCoins(t, db, addr3))

	// Cannot send a negative or zero amount.
	assert.IsErr(t, errors.ErrAmount, control.MoveCoins(db, addr2, addr3, send.Negative()))
	assert.IsErr(t, errors.ErrAmount, control.MoveCoins(db, addr2, addr3, coin.NewCoin(0, 0, "GLD")))

	// Cannot send more than owned, or a currency not owned.
	assert.IsErr(t, errors.ErrAmount, control.MoveCoins(db, addr2, addr3, bank))
	assert.IsErr(t, errors.ErrAmount, control.MoveCoins(db, addr2, addr3, coin.NewCoin(5, 0, "BAD")))
	assert.Equal(t, true, walletCoins(t, db, addr2).Contains(send))

	// Sending the whole balance empties the wallet.
	assert.Nil(t, control.MoveCoins(db, addr2, addr3, send))
	assert.Equal(t, true, walletCoins(t, db, addr2).IsEmpty())
	assert.Equal(t, true, walletCoins(t, db, addr3).Contains(send))
}

func TestBalance(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")

	addr := guildtest.NewCondition().Address()
	control := NewController(NewBucket())

	_, err := control.Balance(db, addr)
	assert.IsErr(t, errors.ErrEmpty, err)

	funds := coin.NewCoin(42, 0, "GLD")
	assert.Nil(t, control.IssueCoins(db, addr, funds))

	coins, err := control.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, true, coins.Contains(funds))
}
