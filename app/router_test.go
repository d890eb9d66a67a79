package app

import (
	"context"
	"testing"

	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	msg := &guildtest.Msg{RoutePath: "test/good"}
	h := &guildtest.Handler{}
	r.Handle(msg, h)

	tx := &guildtest.Tx{Msg: msg}

	if _, err := r.Check(context.TODO(), nil, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(context.TODO(), nil, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 2, h.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "test/alone"}}

	if _, err := r.Check(context.TODO(), nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := r.Deliver(context.TODO(), nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &guildtest.Handler{}

	r.Handle(&guildtest.Msg{RoutePath: "test/good"}, h)

	assert.Panics(t, func() {
		// Registering the same path twice is not allowed.
		r.Handle(&guildtest.Msg{RoutePath: "test/good"}, h)
	})
	assert.Panics(t, func() {
		r.Handle(&guildtest.Msg{RoutePath: "Bad Path!"}, h)
	})
}
