package charter

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
)

// genesisCharter is used to parse a charter declaration from the
// genesis file.
type genesisCharter struct {
	Title     string         `json:"title"`
	Admin     guild.Address  `json:"admin"`
	KycSigner guild.Address  `json:"kyc_signer"`
	UnitPrice coin.Coin      `json:"unit_price"`
	MaxUnits  int64          `json:"max_units"`
	TopUp     bool           `json:"top_up"`
	CreatedAt guild.UnixTime `json:"created_at"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ guild.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial charters from genesis and save them
// to the database. Charter IDs are drawn from the same sequence the
// create handler uses, so genesis charters count from one.
func (*Initializer) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	var decls []genesisCharter
	if err := opts.ReadOptions("charter", &decls); err != nil {
		return errors.Wrap(err, "cannot load charters")
	}
	bucket := NewCharterBucket()
	for i, d := range decls {
		key, err := charterSeq.NextVal(kv)
		if err != nil {
			return errors.Wrapf(err, "charter #%d key", i)
		}
		c := Charter{
			Metadata:  &guild.Metadata{},
			Title:     d.Title,
			Admin:     d.Admin,
			KycSigner: d.KycSigner,
			UnitPrice: d.UnitPrice,
			MaxUnits:  d.MaxUnits,
			TopUp:     d.TopUp,
			Treasury:  TreasuryCondition(key).Address(),
			CreatedAt: d.CreatedAt,
		}
		if _, err := bucket.Put(kv, key, &c); err != nil {
			return errors.Wrapf(err, "cannot store charter #%d", i)
		}
	}
	return nil
}
