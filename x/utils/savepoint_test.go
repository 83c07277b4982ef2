package utils

import (
	"context"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ cascade.Handler = writeHandler{}

func (h writeHandler) Check(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	k, v := []byte("key"), []byte("value")

	cases := map[string]struct {
		handler   cascade.Handler
		decorator cascade.Decorator
		deliver   bool
		wantErr   *errors.Error
		written   bool
	}{
		"deliver succeeds, saved": {
			handler:   writeHandler{key: k, value: v},
			decorator: NewSavepoint().OnDeliver(),
			deliver:   true,
			written:   true,
		},
		"deliver fails, rolled back": {
			handler:   writeHandler{key: k, value: v, err: errors.ErrState},
			decorator: NewSavepoint().OnDeliver(),
			deliver:   true,
			wantErr:   errors.ErrState,
			written:   false,
		},
		"deliver fails, no savepoint set, leak": {
			handler:   writeHandler{key: k, value: v, err: errors.ErrState},
			decorator: NewSavepoint().OnCheck(),
			deliver:   true,
			wantErr:   errors.ErrState,
			written:   true,
		},
		"check succeeds, saved": {
			handler:   writeHandler{key: k, value: v},
			decorator: NewSavepoint().OnCheck(),
			written:   true,
		},
		"check fails, rolled back": {
			handler:   writeHandler{key: k, value: v, err: errors.ErrState},
			decorator: NewSavepoint().OnCheck(),
			wantErr:   errors.ErrState,
			written:   false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			stack := cascadetest.Decorate(tc.handler, tc.decorator)
			tx := &cascadetest.Tx{Msg: &cascadetest.Msg{RoutePath: "util/test"}}

			var err error
			if tc.deliver {
				_, err = stack.Deliver(context.Background(), db, tx)
			} else {
				_, err = stack.Check(context.Background(), db, tx)
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}

			got, gerr := db.Get(k)
			require.NoError(t, gerr)
			if tc.written {
				assert.Equal(t, v, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
