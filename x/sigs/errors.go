package sigs

import (
	"github.com/guild-net/guild/errors"
)

var (
	// ErrInvalidSequence is returned whenever a sequence provided with a
	// signature does not match the value expected for this signer.
	ErrInvalidSequence = errors.Register(120, "invalid sequence")
)
