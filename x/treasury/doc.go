/*
Package treasury maintains the fund side of the ledger. Every member and
every charter treasury is a wallet holding a multi currency balance.

There is no logic in the coins (tokens), except that the balance of any
coin may not go below zero. Funds only move, the total supply of a token
changes only when a controller with minting rights issues new units.

The package also ships the fee decorator that collects transaction fees
into a configured collector wallet before the transaction is executed.
*/
package treasury
