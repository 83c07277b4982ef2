package referral

import (
	"testing"

	"github.com/cascade-one/cascade/errors"
)

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		amount  uint64
		weights []uint32
		want    []uint64
		wantErr *errors.Error
	}{
		"even split": {
			amount:  100,
			weights: []uint32{5000, 5000},
			want:    []uint64{50, 50},
		},
		"four buckets": {
			amount:  1000,
			weights: []uint32{5000, 2000, 2000, 1000},
			want:    []uint64{500, 200, 200, 100},
		},
		"remainder goes to the last bucket": {
			amount:  101,
			weights: []uint32{3333, 3333, 3334},
			want:    []uint64{33, 33, 35},
		},
		"single unit": {
			amount:  1,
			weights: []uint32{5000, 5000},
			want:    []uint64{0, 1},
		},
		"single bucket": {
			amount:  77,
			weights: []uint32{10000},
			want:    []uint64{77},
		},
		"weights must sum to full range": {
			amount:  100,
			weights: []uint32{5000, 4000},
			wantErr: ErrInvalidWeights,
		},
		"no weights": {
			amount:  100,
			weights: nil,
			wantErr: ErrInvalidWeights,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Split(tc.amount, tc.weights)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("want %d buckets, got %d", len(tc.want), len(got))
			}
			var sum uint64
			for i, b := range got {
				if b != tc.want[i] {
					t.Errorf("bucket %d: want %d, got %d", i, tc.want[i], b)
				}
				sum += b
			}
			if sum != tc.amount {
				t.Errorf("buckets sum to %d, want %d", sum, tc.amount)
			}
		})
	}
}
