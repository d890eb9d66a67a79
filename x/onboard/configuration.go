package onboard

import (
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	// Owner is optional. Without an owner set only the genesis
	// configuration admin can update this configuration.
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	errs = errors.AppendField(errs, "NativeTicker", validateTicker(c.NativeTicker))
	errs = errors.AppendField(errs, "WrappedTicker", validateTicker(c.WrappedTicker))
	errs = errors.AppendField(errs, "UnitTicker", validateTicker(c.UnitTicker))
	if c.NativeTicker == c.WrappedTicker {
		errs = errors.AppendField(errs, "WrappedTicker", errors.Wrap(errors.ErrCurrency, "must differ from the native ticker"))
	}
	if c.UnitTicker == c.WrappedTicker || c.UnitTicker == c.NativeTicker {
		errs = errors.AppendField(errs, "UnitTicker", errors.Wrap(errors.ErrCurrency, "must differ from the contribution tickers"))
	}
	return errs
}

func validateTicker(t string) error {
	if !coin.IsCC(t) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %q", t)
	}
	return nil
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "onboard", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
