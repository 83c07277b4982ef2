/*
Package position implements stake holding slots.

A position is created by paying a price, holds a share count in the
holders revenue pool and can be referred by a sponsor position. The
position identity is a sequence number, stable across ownership
transfers, so the sponsorship graph never needs rewiring.
*/
package position
