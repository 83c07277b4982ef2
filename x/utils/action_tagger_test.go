package utils

import (
	"context"
	"testing"

	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTagger(t *testing.T) {
	var h cascadetest.Handler
	stack := cascadetest.Decorate(&h, NewActionTagger())

	db := store.MemStore()
	tx := &cascadetest.Tx{Msg: &cascadetest.Msg{RoutePath: "referral/bind"}}

	res, err := stack.Deliver(context.Background(), db, tx)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, ActionKey, string(res.Tags[0].Key))
	assert.Equal(t, "referral/bind", string(res.Tags[0].Value))

	// check adds no tags
	cres, err := stack.Check(context.Background(), db, tx)
	require.NoError(t, err)
	assert.NotNil(t, cres)
}
