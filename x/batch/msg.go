package batch

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

const (
	// PathExecuteBatchMsg is the path for the batch message, the concrete
	// protobuf type is defined by the application.
	PathExecuteBatchMsg = "batch/execute"

	// MaxBatchMessages is the maximum number of messages in a single
	// batch transaction.
	MaxBatchMessages = 10
)

// Msg requirements for the application defined batch message.
type Msg interface {
	guild.Msg
	MsgList() ([]guild.Msg, error)
}

// Validate returns an error if the given batch message cannot be processed.
// The messages themselves are validated by their handlers.
func Validate(msg Msg) error {
	l, err := msg.MsgList()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve batch messages")
	}
	if len(l) > MaxBatchMessages {
		return errors.Wrapf(errors.ErrMsg, "transaction is too large, max number of messages is %d", MaxBatchMessages)
	}
	return nil
}
