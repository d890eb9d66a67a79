package migration

import (
	"fmt"
	"reflect"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

// Migratable is implemented by both messages and models that can be migrated
// between schema versions.
type Migratable interface {
	// GetMetadata returns metadata attached to this entity. Metadata
	// contains the schema version of the entity.
	GetMetadata() *guild.Metadata

	// Validate returns an error if the entity state is not valid.
	Validate() error
}

// Migrator is a function that migrates a data entity from the previous schema
// version to the declared one.
//
// Because changes are applied directly on the passed payload, even if a
// migration chain fails some of the migrations might already be applied.
type Migrator func(db guild.ReadOnlyKVStore, msgOrModel Migratable) error

// NoModification is a migration function that migrates data that requires no
// change. It should be used to register migrations that only bump the schema
// version of an entity.
func NoModification(db guild.ReadOnlyKVStore, msgOrModel Migratable) error {
	return nil
}

// reg is a globally available register instance that must be used during the
// runtime to register migration handlers.
// Register is declared as a separate type so that it can be tested without
// worrying about the global state.
var reg *register = newRegister()

func newRegister() *register {
	return &register{
		migrations: make(map[payloadVersion]Migrator),
	}
}

type register struct {
	migrations map[payloadVersion]Migrator
}

// payloadVersion references a message or a model at a given schema version.
type payloadVersion struct {
	payload reflect.Type
	version uint32
}

func (pv payloadVersion) String() string {
	return fmt.Sprintf("%v version %d", pv.payload, pv.version)
}

// MustRegister registers a migration function on the global register. It
// panics if the migration cannot be registered.
func MustRegister(migrationTo uint32, msgOrModel Migratable, fn Migrator) {
	reg.MustRegister(migrationTo, msgOrModel, fn)
}

func (r *register) MustRegister(migrationTo uint32, msgOrModel Migratable, fn Migrator) {
	if err := r.Register(migrationTo, msgOrModel, fn); err != nil {
		panic(err)
	}
}

// Register adds a migration function for a given payload type and schema
// version. Migrations must be registered sequentially, starting with version
// one.
func (r *register) Register(migrationTo uint32, msgOrModel Migratable, fn Migrator) error {
	if migrationTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal allowed version is 1")
	}

	tp := reflect.TypeOf(msgOrModel)
	pv := payloadVersion{
		version: migrationTo,
		payload: tp,
	}
	if _, ok := r.migrations[pv]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "already registered: %s", pv)
	}
	if migrationTo > 1 {
		prev := payloadVersion{version: migrationTo - 1, payload: tp}
		if _, ok := r.migrations[prev]; !ok {
			return errors.Wrapf(errors.ErrInput, "missing previous migration: %s", prev)
		}
	}
	r.migrations[pv] = fn
	return nil
}

// Apply updates a payload by applying all missing data migrations, in order.
// Even a no modification migration is updating the metadata to point to the
// latest schema version.
//
// Migrating beyond the highest registered version updates the payload to the
// highest available schema and returns an error.
//
// Validation method is called only on the final version of the payload.
func (r *register) Apply(db guild.ReadOnlyKVStore, msgOrModel Migratable, migrateTo uint32) error {
	if migrateTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal allowed version is 1")
	}

	meta := msgOrModel.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", msgOrModel)
	}
	if meta.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be set")
	}

	tp := reflect.TypeOf(msgOrModel)
	for v := meta.Schema + 1; v <= migrateTo; v++ {
		migrate, ok := r.migrations[payloadVersion{version: v, payload: tp}]
		if !ok {
			return errors.Wrapf(errors.ErrSchema, "migration to version %d missing", v)
		}
		if err := migrate(db, msgOrModel); err != nil {
			return errors.Wrapf(err, "migration to version %d", v)
		}
		meta.Schema = v
	}

	if err := msgOrModel.Validate(); err != nil {
		return errors.Wrap(err, "validation")
	}
	return nil
}
