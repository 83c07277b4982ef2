package app

import (
	"context"
	"testing"

	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var h cascadetest.Handler
	r.Handle("test/good", &h)

	tx := &cascadetest.Tx{Msg: &cascadetest.Msg{RoutePath: "test/good"}}
	db := store.MemStore()

	if _, err := r.Check(context.Background(), db, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(context.Background(), db, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &cascadetest.Tx{Msg: &cascadetest.Msg{RoutePath: "test/secret"}}
	db := store.MemStore()

	if _, err := r.Check(context.Background(), db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
	if _, err := r.Deliver(context.Background(), db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()

	r.Handle("test/good", &cascadetest.Handler{})

	// invalid paths are rejected
	assert.Panics(t, func() { r.Handle("test/BAD-path", &cascadetest.Handler{}) })

	// a route can be registered only once
	assert.Panics(t, func() { r.Handle("test/good", &cascadetest.Handler{}) })
}
