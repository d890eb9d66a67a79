/*
Package onboard implements coupon based admission into a guild.

A prospect obtains a coupon off chain: the charter's KYC signer signs a
hash binding the charter, the deployment verifier address, the chain ID,
the member address and a one time nonce. Redeeming the coupon on chain
pays a contribution into the charter treasury and grants fund units in
return. Contributions arrive either directly in the wrapped contribution
token or in the native token, which is locked in a per charter reserve
and wrapped 1:1 first.

Each member consumes nonces strictly in sequence, so a coupon can be
used only once. Contributions that do not convert into at least one
whole unit are rejected, and the remainder above the last whole unit is
returned to the sender within the same transaction.
*/
package onboard
