package app

import (
	"fmt"
	"regexp"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]guild.Handler
}

var _ guild.Registry = (*Router)(nil)
var _ guild.Handler = (*Router)(nil)

// pathPattern is a regular expression that every message path must match.
var pathPattern = regexp.MustCompile(`^[a-z0-9_/]{4,64}$`)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]guild.Handler),
	}
}

// Handle implements guild.Registry interface.
func (r *Router) Handle(m guild.Msg, h guild.Handler) {
	path := m.Path()
	if !pathPattern.MatchString(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("double registration of a handler for path %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no route is
// present a handler that always fails with ErrNotFound is returned.
func (r *Router) handler(m guild.Msg) guild.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return unknownPathHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// unknownPathHandler is a handler that always fails. It is used when no
// handler was registered for a given message path.
type unknownPathHandler string

var _ guild.Handler = unknownPathHandler("")

func (path unknownPathHandler) Check(guild.Context, guild.KVStore, guild.Tx) (*guild.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}

func (path unknownPathHandler) Deliver(guild.Context, guild.KVStore, guild.Tx) (*guild.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}
