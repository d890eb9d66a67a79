package migration

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

func init() {
	MustRegister(1, &UpgradeSchemaMsg{}, NoModification)
}

var _ guild.Msg = (*UpgradeSchemaMsg)(nil)

const pathUpgradeSchemaMsg = "migration/upgrade_schema"

func (msg *UpgradeSchemaMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Pkg == "" {
		return errors.Wrap(errors.ErrEmpty, "pkg is required")
	}
	if msg.ToVersion == 0 {
		return errors.Wrap(errors.ErrEmpty, "to version is required")
	}
	return nil
}

func (UpgradeSchemaMsg) Path() string {
	return pathUpgradeSchemaMsg
}
