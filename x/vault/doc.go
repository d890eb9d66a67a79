/*
Package vault implements the asset custody registry of a charter.

Each charter can run exactly one vault. The vault takes collectible
tokens into custody under a derived custody account and keeps its own
books about them: a listing of collections with at least one held
token, a shelf per collection enumerating the held token identifiers,
and a holding record per token naming the internal owner.

Tokens enter custody on two paths. A deposit moves the token from its
owner and records it in one transaction. Alternatively the token can
be transferred to the custody account first and recorded afterwards
with a reconcile transaction, which anyone may submit since it only
writes down what the token ledger already proves.

Newly recorded tokens belong to the pooled guild owner. Officers with
the transfer permission can reassign them to individual members, and
officers with the withdraw permission can release them to external
addresses. Withdrawing removes every trace from the books.

The derived vault accounts never hold fungible value. The package
exports a treasury blocklist that refuses direct coin transfers to
them, because coins parked there could never be recovered.
*/
package vault
