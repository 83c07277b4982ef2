/*
Package referral implements the multi level referral reward engine.

Positions are bound to a sponsor position exactly once, forming a
forest. When a sale is processed the payment is split into four
buckets. The referral bucket is walked level by level up the sponsor
chain, paying each level weight to the nearest active partner, with
anything unassignable routed to the treasury. The holder and partner
buckets fund the two revenue pools and the treasury bucket goes to
the treasury directly.
*/
package referral
