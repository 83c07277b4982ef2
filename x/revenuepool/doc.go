/*
Package revenuepool implements share weighted reward pools.

A pool distributes every funded reward proportionally to the share
count of its members, using an accumulated reward per share counter.
The counter is scaled by 1e18 so that integer division losses stay
below one token per member. Rewards accrued by a member are settled
into the pending ledger before any share mutation, so a member can
never earn from rewards funded before joining or after leaving.
*/
package revenuepool
