package migration

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ guild.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts guild.Options, params guild.GenesisParams, db guild.KVStore) error {
	if err := gconf.InitConfig(db, opts, "migration", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var pkgNames []string
	if err := opts.ReadOptions("initialize_schema", &pkgNames); err != nil {
		return errors.Wrap(err, "cannot read initialize schema package names")
	}

	// Before any other package, the migration package schema version must
	// be set. Without it no schema aware bucket operation can succeed,
	// including the initialization below.
	pkgNames = append([]string{"migration"}, pkgNames...)

	bucket := NewSchemaBucket()
	for _, name := range pkgNames {
		schema := Schema{
			Metadata: &guild.Metadata{Schema: 1},
			Pkg:      name,
			Version:  1,
		}
		if _, err := bucket.Create(db, &schema); err != nil && !errors.ErrDuplicate.Is(err) {
			return errors.Wrapf(err, "initialize %q schema", name)
		}
	}
	return nil
}
