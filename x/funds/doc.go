/*
Package funds implements a minimal token wallet.

Every account is identified by an address and holds a single uint64
balance. The Controller provides balance transfers to other extensions
so that they never touch the wallet bucket directly.
*/
package funds
