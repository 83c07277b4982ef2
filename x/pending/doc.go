/*
Package pending implements the withdrawable reward ledger.

Other extensions credit an account with a reward and move the matching
funds into the payment escrow. The account owner can later claim the
whole pending balance in a single atomic operation. The balance is
zeroed before the payout so a repeated claim cannot double pay.
*/
package pending
