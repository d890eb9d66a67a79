package treasury

import (
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
	if len(c.Collector) == 0 {
		errs = errors.AppendField(errs, "Collector", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Collector", c.Collector.Validate())
	}
	if !c.MinimalFee.IsZero() {
		errs = errors.AppendField(errs, "MinimalFee", c.MinimalFee.Validate())
		if !c.MinimalFee.IsNonNegative() {
			errs = errors.AppendField(errs, "MinimalFee", errors.Wrap(errors.ErrAmount, "cannot be negative"))
		}
	}
	return errs
}

func mustLoadConf(db gconf.Store) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "treasury", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}
