package guild

import "github.com/guild-net/guild/errors"

// Validate returns an error if the metadata is invalid. All persistent
// entities and messages must declare a schema version of at least one.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "invalid schema version")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when implementing
// orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}
