package referral

import (
	"math"

	"github.com/cascade-one/cascade/errors"
)

// maxBps is the full share range in basis points.
const maxBps = 10000

// Split divides the amount proportionally to the weights. All buckets
// except the last are computed with truncating division and the last
// bucket receives the rest, so the buckets always sum exactly to the
// amount. Weights must sum to 10000.
func Split(amount uint64, weights []uint32) ([]uint64, error) {
	if len(weights) == 0 {
		return nil, errors.Wrap(ErrInvalidWeights, "no weights")
	}
	var sum uint64
	for _, w := range weights {
		sum += uint64(w)
	}
	if sum != maxBps {
		return nil, errors.Wrapf(ErrInvalidWeights, "weights sum to %d", sum)
	}
	if amount > math.MaxUint64/maxBps {
		return nil, errors.Wrap(errors.ErrOverflow, "amount too big to split")
	}

	buckets := make([]uint64, len(weights))
	var used uint64
	for i, w := range weights[:len(weights)-1] {
		buckets[i] = amount * uint64(w) / maxBps
		used += buckets[i]
	}
	buckets[len(buckets)-1] = amount - used
	return buckets, nil
}
