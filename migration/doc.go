/*

Package migration provides tooling necessary for working with schema versioned
entities. Functionality provided here can be applied to both messages and
models.


Global preparation.

1. update the application genesis to provide a "migration" configuration and
the list of packages that must have their schema initialized,

2. register the migration message handler using the `RegisterRoutes` function,

3. register the migration bucket query using the `RegisterQuery` function.


Extension integration.

1. update all protobuf declarations of messages and models that are to be
schema versioned. The first attribute must be the metadata:

    message MyMessage {
      Metadata metadata = 1;
      ...
    }

Make sure that whenever you create a new entity the metadata attribute is
provided as a `nil` metadata value is not valid.

2. register your migration functions in the package `init`. Schema version is
declared per package, not per entity, so each upgrade must provide a migration
function for all entities of that package. Use `migration.NoModification` for
those entities that require no change:

    func init() {
        migration.MustRegister(1, &MyModel{}, migration.NoModification)
        migration.MustRegister(1, &MyMessage{}, migration.NoModification)
    }

3. change your bucket implementation to embed `migration.Bucket` instead of
`orm.Bucket`,

4. wrap your handler with `migration.SchemaMigratingHandler` to ensure all
messages are always migrated to the latest schema before being passed to the
handler,

5. make sure the `.Metadata.Schema` attribute of newly created messages is
set. This is not necessary for models as it will default to the current schema
version.

*/
package migration
