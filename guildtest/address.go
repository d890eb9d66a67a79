package guildtest

import (
	"testing"

	"github.com/guild-net/guild"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// guild.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) guild.Address {
	t.Helper()

	addr, err := guild.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
