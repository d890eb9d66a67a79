package app

import (
	"encoding/json"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/store"
)

type writeInit struct {
	key string
}

func (w writeInit) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	var value string
	if err := opts.ReadOptions(w.key, &value); err != nil {
		return err
	}
	return kv.Set([]byte(w.key), []byte(value))
}

type countInit struct {
	called int
	err    error
}

func (c *countInit) FromGenesis(guild.Options, guild.GenesisParams, guild.KVStore) error {
	c.called++
	return c.err
}

func TestChainInitializers(t *testing.T) {
	opts := guild.Options{
		"primary": json.RawMessage(`"genesis value"`),
	}

	first := &countInit{}
	second := &countInit{}
	init := ChainInitializers(nil, first, writeInit{key: "primary"}, second)

	db := store.MemStore()
	assert.Nil(t, init.FromGenesis(opts, guild.GenesisParams{}, db))
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, second.called)

	raw, err := db.Get([]byte("primary"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("genesis value"), raw)
}

func TestChainInitializersStopOnError(t *testing.T) {
	first := &countInit{}
	second := &countInit{err: errors.ErrHuman}
	third := &countInit{}
	init := ChainInitializers(first, second, third)

	db := store.MemStore()
	if err := init.FromGenesis(guild.Options{}, guild.GenesisParams{}, db); !errors.ErrHuman.Is(err) {
		t.Fatalf("want a coding error, got %+v", err)
	}
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, second.called)
	assert.Equal(t, 0, third.called)
}
