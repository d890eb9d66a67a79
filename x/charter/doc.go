/*
Package charter keeps the registry of guilds. A charter carries the
onboarding terms of one guild, the identity that may sign coupons for
it, its admin and the address of its treasury account.

The roster (members) and the officer appointments live next to the
charters. Both are consulted by other extensions through the
Gatekeeper, never by reading the buckets directly.
*/
package charter
