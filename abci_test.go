package guild_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestDeliverTxError(t *testing.T) {
	cases := map[string]struct {
		err      error
		wantCode uint32
		wantLog  string
	}{
		"nil error is a success": {
			err:      nil,
			wantCode: 0,
			wantLog:  "",
		},
		"internal error details are hidden": {
			err:      fmt.Errorf("attach full disk"),
			wantCode: 1,
			wantLog:  "cannot deliver tx: internal error",
		},
		"registered error exposes code and message": {
			err:      errors.Wrap(errors.ErrUnauthorized, "no signature"),
			wantCode: 2,
			wantLog:  "cannot deliver tx: no signature: unauthorized",
		},
		"not found": {
			err:      errors.Wrap(errors.ErrNotFound, "wallet"),
			wantCode: 3,
			wantLog:  "cannot deliver tx: wallet: not found",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := guild.DeliverTxError(tc.err, false)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantLog, res.Log)
		})
	}
}

func TestDeliverTxErrorDebug(t *testing.T) {
	res := guild.DeliverTxError(fmt.Errorf("attach full disk"), true)
	assert.Equal(t, uint32(1), res.Code)
	if !strings.Contains(res.Log, "attach full disk") {
		t.Fatalf("debug log must carry the original message: %q", res.Log)
	}
}

func TestCheckTxError(t *testing.T) {
	res := guild.CheckTxError(errors.Wrap(errors.ErrExpired, "deadline"), false)
	assert.Equal(t, uint32(15), res.Code)
	assert.Equal(t, "cannot check tx: deadline: expired", res.Log)
}

func TestDeliverOrError(t *testing.T) {
	res := guild.DeliverOrError(&guild.DeliverResult{Data: []byte{1, 3, 4}, Log: "got it"}, nil, false)
	assert.Equal(t, uint32(0), res.Code)

	parsed, err := guild.ParseDeliverOrError(res)
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 3, 4}, parsed.Data)
	assert.Equal(t, "got it", parsed.Log)

	res = guild.DeliverOrError(nil, errors.Wrap(errors.ErrAmount, "negative"), false)
	assert.Equal(t, uint32(13), res.Code)
	if _, err := guild.ParseDeliverOrError(res); !errors.ErrAmount.Is(err) {
		t.Fatalf("want an amount error back, got %+v", err)
	}
}

func TestCheckOrError(t *testing.T) {
	res := guild.CheckOrError(guild.NewCheck(12345, "aok"), nil, false)
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, int64(12345), res.GasWanted)
	assert.Equal(t, "aok", res.Log)

	res = guild.CheckOrError(nil, errors.Wrap(errors.ErrUnauthorized, "invalid nonce"), false)
	assert.Equal(t, uint32(2), res.Code)
	assert.Equal(t, "cannot check tx: invalid nonce: unauthorized", res.Log)
}
