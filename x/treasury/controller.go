package treasury

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
)

// CoinMover moves value between two accounts.
type CoinMover interface {
	MoveCoins(store guild.KVStore, src guild.Address, dest guild.Address, amount coin.Coin) error
}

// CoinMinter creates new value on the destination account.
type CoinMinter interface {
	IssueCoins(store guild.KVStore, dest guild.Address, amount coin.Coin) error
}

// Controller is the functionality needed by the handlers and by
// collaborating extensions. BaseController should work plenty fine,
// but you can add other logic if so desired
type Controller interface {
	CoinMover
	CoinMinter
	Balance(store guild.KVStore, addr guild.Address) (coin.Coins, error)
}

// BaseController implements Controller using the wallet bucket as the
// storage engine.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given address.
func (c BaseController) Balance(store guild.KVStore, src guild.Address) (coin.Coins, error) {
	obj, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire wallet")
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "no wallet for %s", src)
	}
	return AsCoins(obj), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient coins, it fails.
func (c BaseController) MoveCoins(store guild.KVStore, src guild.Address, dest guild.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !AsCoins(sender).Contains(amount) {
		return errors.Wrap(errors.ErrAmount, "insufficient funds")
	}
	if err := Subtract(AsWallet(sender), amount); err != nil {
		return err
	}
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := Add(AsWallet(recipient), amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store guild.KVStore, dest guild.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := Add(AsWallet(recipient), amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
