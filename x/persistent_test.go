package x

import (
	"testing"

	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestPersistent(t *testing.T) {
	c := &coin.Coin{Whole: 52, Fractional: 12345, Ticker: "FOO"}
	bad := &coin.Coin{Whole: 52, Fractional: -12345, Ticker: "of"}

	should, err := c.Marshal()
	assert.Nil(t, err)

	bz := MustMarshal(c)
	assert.Equal(t, should, bz)

	got := new(coin.Coin)
	MustUnmarshal(got, bz)
	assert.Equal(t, c, got)

	// Wire type 7 does not exist, decoding must fail.
	garbage := []byte{0xff, 0xff, 0xff}
	assert.Panics(t, func() { MustUnmarshal(got, garbage) })

	assert.Panics(t, func() { MustValidate(bad) })
	MustValidate(c)
	assert.Panics(t, func() { MustMarshalValid(bad) })
	rebz := MustMarshalValid(c)
	assert.Equal(t, should, rebz)
}
