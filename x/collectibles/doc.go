/*
Package collectibles implements a minimal non fungible token ledger.

Collections group tokens under a single issuer who is the only identity
allowed to mint. Tokens are identified by the collection ID and an
opaque token ID and carry exactly one owner. Owners transfer directly,
collaborating extensions move custody through the Controller.
*/
package collectibles
