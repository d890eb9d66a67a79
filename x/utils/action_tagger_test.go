package utils_test

import (
	"context"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/app"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/x/batch"
	"github.com/guild-net/guild/x/utils"
	"github.com/tendermint/tendermint/libs/common"
)

func stringTag(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		stack guild.Handler
		tx    guild.Tx
		err   *errors.Error
		tags  []common.KVPair
	}{
		"simple call": {
			stack: app.ChainDecorators(utils.NewActionTagger()).WithHandler(
				&guildtest.Handler{},
			),
			tx:   &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "foobar/create"}},
			tags: []common.KVPair{stringTag(utils.ActionKey, "foobar/create")},
		},
		"passes through error": {
			stack: app.ChainDecorators(utils.NewActionTagger()).WithHandler(
				&guildtest.Handler{DeliverErr: errors.ErrHuman},
			),
			tx:  &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "foobar/create"}},
			err: errors.ErrHuman,
		},
		"tags are additive": {
			stack: app.ChainDecorators(utils.NewActionTagger()).WithHandler(
				&guildtest.Handler{
					DeliverResult: guild.DeliverResult{Tags: []common.KVPair{stringTag(utils.ActionKey, "random")}},
				},
			),
			tx:   &guildtest.Tx{Msg: &guildtest.Msg{RoutePath: "foobar/create"}},
			tags: []common.KVPair{stringTag(utils.ActionKey, "random"), stringTag(utils.ActionKey, "foobar/create")},
		},
		"all in batch are tagged": {
			stack: app.ChainDecorators(
				batch.NewDecorator(),
				utils.NewActionTagger(),
			).WithHandler(
				&guildtest.Handler{},
			),
			tx: &guildtest.Tx{Msg: &batchMsg{
				msgs: []guild.Msg{
					&guildtest.Msg{RoutePath: "onboard/claim"},
					&guildtest.Msg{RoutePath: "treasury/send"},
					&guildtest.Msg{RoutePath: "vault/deposit"},
				},
			}},
			tags: []common.KVPair{
				stringTag(utils.ActionKey, "onboard/claim"),
				stringTag(utils.ActionKey, "treasury/send"),
				stringTag(utils.ActionKey, "vault/deposit"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := store.MemStore()

			// we get tagged on success
			res, err := tc.stack.Deliver(ctx, store, tc.tx)
			if tc.err != nil {
				if !tc.err.Is(err) {
					t.Fatalf("Unexpected error type returned: %v", err)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, len(tc.tags), len(res.Tags))
			for i := range tc.tags {
				assert.Equal(t, string(tc.tags[i].Key), string(res.Tags[i].Key))
				assert.Equal(t, string(tc.tags[i].Value), string(res.Tags[i].Value))
			}
		})
	}
}

var _ batch.Msg = (*batchMsg)(nil)

type batchMsg struct {
	msgs []guild.Msg
}

func (m *batchMsg) Marshal() ([]byte, error) {
	panic("implement me")
}

func (m *batchMsg) Unmarshal([]byte) error {
	panic("implement me")
}

func (m *batchMsg) Path() string {
	panic("implement me")
}

func (m *batchMsg) Validate() error {
	return nil
}

func (m *batchMsg) MsgList() ([]guild.Msg, error) {
	return m.msgs, nil
}
