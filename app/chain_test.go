package app

import (
	"context"
	"testing"

	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestChain(t *testing.T) {
	c1 := &guildtest.Decorator{}
	c2 := &guildtest.Decorator{}
	c3 := &guildtest.Decorator{}
	h := &guildtest.Handler{}

	// nil decorators must be silently ignored
	stack := ChainDecorators(c1, nil, c2).Chain(c3).WithHandler(h)

	bg := context.Background()

	if _, err := stack.Check(bg, nil, nil); err != nil {
		t.Fatalf("check: %+v", err)
	}
	if _, err := stack.Deliver(bg, nil, nil); err != nil {
		t.Fatalf("deliver: %+v", err)
	}

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failure in the middle of the chain stops execution
	c2.CheckErr = errors.ErrUnauthorized
	c2.DeliverErr = errors.ErrUnauthorized

	if _, err := stack.Check(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	if _, err := stack.Deliver(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}
