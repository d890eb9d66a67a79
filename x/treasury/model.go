package treasury

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
)

func init() {
	migration.MustRegister(1, &Wallet{}, migration.NoModification)
}

// BucketName is where we store the balances
const BucketName = "treasury"

var _ orm.CloneableData = (*Wallet)(nil)

// Validate requires the coins to be sorted, unique per ticker and positive.
func (w *Wallet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", w.Metadata.Validate())
	errs = errors.AppendField(errs, "Coins", coin.Coins(w.Coins).Validate())
	return errs
}

// Copy makes a new wallet with the same coins
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		Metadata: w.Metadata.Copy(),
		Coins:    coin.Coins(w.Coins).Clone(),
	}
}

// Add modifies the wallet to add Coin c
func Add(w *Wallet, c coin.Coin) error {
	cs, err := coin.Coins(w.Coins).Add(c)
	if err != nil {
		return err
	}
	w.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func Subtract(w *Wallet, c coin.Coin) error {
	return Add(w, c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func Concat(w *Wallet, coins coin.Coins) error {
	joint, err := coin.Coins(w.Coins).Combine(coins)
	if err != nil {
		return err
	}
	w.Coins = joint
	return nil
}

// AsWallet safely extracts a Wallet value from the object
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Wallet)
}

// AsCoins safely extracts the wallet balance from the object
func AsCoins(obj orm.Object) coin.Coins {
	if w := AsWallet(obj); w != nil {
		return coin.Coins(w.Coins)
	}
	return nil
}

// NewWallet creates an empty wallet with this address serving as key
func NewWallet(key guild.Address) orm.Object {
	return orm.NewSimpleObj(key, &Wallet{
		Metadata: &guild.Metadata{Schema: 1},
	})
}

// WalletWith creates a wallet with an initial balance
func WalletWith(key guild.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	if err := Concat(AsWallet(obj), coins); err != nil {
		return nil, err
	}
	return obj, nil
}

//--- treasury.Bucket - type-safe wrapper around orm.Bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	migration.Bucket
}

// NewBucket initializes a treasury.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: migration.NewBucket("treasury", BucketName, NewWallet(nil)),
	}
}

// GetOrCreate returns the wallet stored under the address,
// or creates an empty one
func (b Bucket) GetOrCreate(db guild.KVStore, key guild.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}
