package guild_test

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestVersion(t *testing.T) {
	guild.GitCommit = ""
	assert.Equal(t, "v0.2.0", guild.Version())

	guild.GitCommit = "12345678"
	assert.Equal(t, "v0.2.0 12345678", guild.Version())
}
