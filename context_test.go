package cascade_test

import (
	"context"
	"testing"
	"time"

	"github.com/cascade-one/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := cascade.DefaultLogger.With("path", "context_test")
	ctx := cascade.WithLogger(bg, newLogger)
	assert.Equal(t, cascade.DefaultLogger, cascade.GetLogger(bg))
	assert.Equal(t, newLogger, cascade.GetLogger(ctx))

	// test height
	_, ok := cascade.GetHeight(ctx)
	assert.False(t, ok)
	ctx = cascade.WithHeight(ctx, 7)
	val, ok := cascade.GetHeight(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 7, val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { cascade.GetChainID(ctx) })
	ctx = cascade.WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", cascade.GetChainID(ctx))
	// don't try a second time
	assert.Panics(t, func() { cascade.WithChainID(ctx, "bad") })

	// block time required
	_, err := cascade.BlockTime(ctx)
	assert.Error(t, err)
	now := time.Now()
	ctx = cascade.WithBlockTime(ctx, now)
	bt, err := cascade.BlockTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.UTC(), bt)
}

func TestChainID(t *testing.T) {
	cases := map[string]bool{
		"foo":                    false,
		"special":                true,
		"wish-YOU-88":            true,
		"invalid;;chars":         false,
		"much-too-long-chain-id": false,
	}

	for chainID, valid := range cases {
		t.Run(chainID, func(t *testing.T) {
			assert.Equal(t, valid, cascade.IsValidChainID(chainID))
		})
	}
}
