package sigs

import (
	"context"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/x"
)

//------------------- Context --------
// Add context information specific to this package

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx guild.Context, signers []guild.Condition) guild.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate implements x.Authenticator and provides
// authentication based on signatures that were verified
// by the Decorator in this package.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx guild.Context) []guild.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]guild.Condition)
	// if we were paranoid about our own code, we would deep-copy
	// the signers here
	return val
}

// HasAddress returns true iff the given address signed the
// current Context.
func (a Authenticate) HasAddress(ctx guild.Context, addr guild.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
