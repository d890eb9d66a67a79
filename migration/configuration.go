package migration

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func mustLoadConf(db gconf.ReadStore) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentAdmin returns the migration extension admin address as currently
// configured. This function is helpful for all extensions that want to use
// the schema upgrade administrator for authentication of other operations,
// for example initialization of an extension configuration.
func CurrentAdmin(db guild.ReadOnlyKVStore) (guild.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Admin, nil
}
