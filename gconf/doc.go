/*

Package gconf provides a toolset for managing an extension configuration.

Each extension can declare a configuration object that is stored as a
singleton in the database, in a namespace private to that extension. Use
`Save` and `Load` to interact with the configuration entity directly and
`InitConfig` to initialize the state from a genesis declaration.

A configuration can be updated at runtime by processing a configuration patch
message with the `UpdateConfigurationHandler`. To authorize the change, each
patch message must be signed by the current configuration owner.

*/
package gconf
