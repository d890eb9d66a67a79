package guild

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/guild-net/guild/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain.
type Context = context.Context

// contextKey is local to this package to avoid collisions with
// keys set by other packages.
type contextKey int

const (
	contextKeyHeader contextKey = iota
	contextKeyHeight
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
	contextKeyCommitInfo
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeader sets the block header for the Context.
// panics if called with header already set
func WithHeader(ctx Context, header abci.Header) Context {
	if _, ok := GetHeader(ctx); ok {
		panic("Header already set")
	}
	return context.WithValue(ctx, contextKeyHeader, header)
}

// GetHeader returns the current block header
// ok is false if no header set in this Context
func GetHeader(ctx Context) (abci.Header, bool) {
	val, ok := ctx.Value(contextKeyHeader).(abci.Header)
	return val, ok
}

// WithHeight sets the block height for the Context.
// panics if called with height already set
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height
// ok is false if no height set in this Context
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the context. Block time is always
// represented in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the block time as declared in the context. An error is
// returned if a block time is not present in the context or if it holds a
// zero time value.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	if val.IsZero() {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "zero time present in the context")
	}
	return val.UTC(), nil
}

// WithChainID sets the chain id for the Context.
// panics if called with chain id already set
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("chain id is invalid: %v", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id
// panics if chain id not already set (as constructor should enforce)
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("Chain id is not in context")
	}
	return val
}

// WithCommitInfo stores the info on who had signed the block in the context.
func WithCommitInfo(ctx Context, info CommitInfo) Context {
	return context.WithValue(ctx, contextKeyCommitInfo, info)
}

// GetCommitInfo returns the info on who signed the block.
// Requires that WithCommitInfo was called before.
func GetCommitInfo(ctx Context) (CommitInfo, bool) {
	val, ok := ctx.Value(contextKeyCommitInfo).(CommitInfo)
	return val, ok
}

// WithLogger sets the logger this Context.
// Can be called multiple times to override
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. Expiration is inclusive, meaning that if
// current time is equal to the expiration time than this function returns
// true.
//
// This function panics if the block time is not provided in the context.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic(fmt.Sprintf("cannot check expiration: %s", err))
	}
	return t <= AsUnixTime(blockNow)
}

// InThePast returns true if given time is in the past compared to the current
// time as declared in the context. Context "now" should come from the block
// header.
// Keep in mind that this function is not inclusive of current time. It given
// time is equal to "now" then this function returns false.
//
// This function panics if the block time is not provided in the context.
func InThePast(ctx context.Context, t time.Time) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(fmt.Sprintf("cannot check if in the past: %s", err))
	}
	return t.Before(now)
}

// InTheFuture returns true if given time is in the future compared to the
// current time as declared in the context. Context "now" should come from the
// block header.
// Keep in mind that this function is not inclusive of current time. It given
// time is equal to "now" then this function returns false.
//
// This function panics if the block time is not provided in the context.
func InTheFuture(ctx context.Context, t time.Time) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(fmt.Sprintf("cannot check if in the future: %s", err))
	}
	return t.After(now)
}
