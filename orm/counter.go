package orm

import (
	"github.com/guild-net/guild/errors"
)

var _ CloneableData = (*Counter)(nil)

// NewCounter returns an initialized counter
func NewCounter(count int64) *Counter {
	return &Counter{Count: count}
}

// Validate returns an error if the counter state is out of range.
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "count cannot be negative")
	}
	return nil
}

// Copy produces another counter with the same value
func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

var _ Model = (*CounterWithID)(nil)

// SetID is a minimal implementation, useful when the ID is a separate protobuf field
func (c *CounterWithID) SetID(id []byte) error {
	c.ID = id
	return nil
}

// Copy produces a new copy to fulfill the Model interface
func (c *CounterWithID) Copy() CloneableData {
	return &CounterWithID{
		ID:    c.ID,
		Count: c.Count,
	}
}

// Validate returns an error if the counter state is out of range.
func (c *CounterWithID) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "count cannot be negative")
	}
	return nil
}
