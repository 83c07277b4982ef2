package app

import (
	"fmt"
	"regexp"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	handlers map[string]cascade.Handler
}

var _ cascade.Registry = (*Router)(nil)
var _ cascade.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]cascade.Handler),
	}
}

// Handle implements Registry interface.
func (r *Router) Handle(path string, h cascade.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPathHandler.
func (r *Router) handler(m cascade.Msg) cascade.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound error regardless of the
// arguments provided
type noSuchPathHandler struct {
	path string
}

var _ cascade.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(cascade.Context, cascade.KVStore, cascade.Tx) (*cascade.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(cascade.Context, cascade.KVStore, cascade.Tx) (*cascade.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
