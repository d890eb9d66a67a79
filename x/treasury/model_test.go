package treasury

import (
	"testing"

	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
)

func TestWalletBucket(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")
	bucket := NewBucket()
	addr := guildtest.NewCondition().Address()

	// A missing wallet is nil, not an error.
	obj, err := bucket.Get(db, addr)
	assert.Nil(t, err)
	assert.Nil(t, obj)
	assert.Nil(t, AsWallet(obj))

	// GetOrCreate returns an empty wallet instead.
	obj, err = bucket.GetOrCreate(db, addr)
	assert.Nil(t, err)
	if obj == nil {
		t.Fatal("expected a wallet object")
	}
	assert.Equal(t, 0, AsCoins(obj).Count())

	assert.Nil(t, Add(AsWallet(obj), coin.NewCoin(100, 5, "GLD")))
	assert.Nil(t, bucket.Save(db, obj))

	obj, err = bucket.Get(db, addr)
	assert.Nil(t, err)
	coins := AsCoins(obj)
	assert.Equal(t, 1, coins.Count())
	assert.Equal(t, true, coins.Contains(coin.NewCoin(100, 5, "GLD")))
}

func TestWalletWith(t *testing.T) {
	addr := guildtest.NewCondition().Address()

	obj, err := WalletWith(addr, coin.NewCoinp(10, 0, "GLD"), coin.NewCoinp(2, 0, "SEAT"))
	assert.Nil(t, err)
	assert.Nil(t, obj.Validate())
	assert.Equal(t, true, AsCoins(obj).Contains(coin.NewCoin(10, 0, "GLD")))
	assert.Equal(t, true, AsCoins(obj).Contains(coin.NewCoin(2, 0, "SEAT")))

	// Same ticker amounts are merged into a single coin.
	obj, err = WalletWith(addr, coin.NewCoinp(1, 0, "GLD"), coin.NewCoinp(2, 0, "GLD"))
	assert.Nil(t, err)
	assert.Equal(t, 1, AsCoins(obj).Count())
	assert.Equal(t, true, AsCoins(obj).Contains(coin.NewCoin(3, 0, "GLD")))
}

func TestWalletArithmetic(t *testing.T) {
	w := AsWallet(NewWallet(guildtest.NewCondition().Address()))

	assert.Nil(t, Add(w, coin.NewCoin(7, 0, "GLD")))
	assert.Nil(t, Subtract(w, coin.NewCoin(2, 0, "GLD")))
	assert.Equal(t, true, coin.Coins(w.Coins).Contains(coin.NewCoin(5, 0, "GLD")))

	// Subtracting below zero is legal on the model level. Funds
	// protection is the controller responsibility.
	assert.Nil(t, Subtract(w, coin.NewCoin(8, 0, "GLD")))
	assert.Equal(t, true, coin.Coins(w.Coins).Contains(coin.NewCoin(-3, 0, "GLD")))

	// A broken ticker is inserted without complaint but fails the
	// wallet validation.
	assert.Nil(t, Add(w, coin.NewCoin(1, 0, "no-such-ticker")))
	if err := w.Validate(); err == nil {
		t.Fatal("expected a ticker validation error")
	}
}

func TestWalletConcat(t *testing.T) {
	w := AsWallet(NewWallet(guildtest.NewCondition().Address()))

	coins := coin.Coins{
		coin.NewCoinp(1, 2, "GLD"),
		coin.NewCoinp(4, 0, "SEAT"),
	}
	assert.Nil(t, Concat(w, coins))
	assert.Nil(t, Concat(w, coins))
	assert.Equal(t, true, coin.Coins(w.Coins).Contains(coin.NewCoin(2, 4, "GLD")))
	assert.Equal(t, true, coin.Coins(w.Coins).Contains(coin.NewCoin(8, 0, "SEAT")))
}
