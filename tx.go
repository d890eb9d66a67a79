package guild

import (
	"reflect"

	"github.com/guild-net/guild/errors"
)

// Msg is message for the blockchain to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate returns error if the message content is not valid. This
	// check does not require any access to the database or any other
	// state. It can only verify that the message payload is correct.
	Validate() error

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
//
// Each Application must define their own tx type, which
// embeds all the middlewares that we wish to use.
// sigs.SignedTx and treasury.FeeTx are common interfaces that
// many apps will wish to support.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message from the transaction and unpacks it into the
// given destination. The destination must be a non nil pointer to a message
// instance of the same type as carried by the transaction.
// The message is validated before being loaded into the destination.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "message is <nil>")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	drv := reflect.ValueOf(destination)
	if drv.Kind() != reflect.Ptr || drv.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	mrv := reflect.ValueOf(msg)
	if drv.Type() != mrv.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	drv.Elem().Set(mrv.Elem())
	return nil
}

// ExtractMsgFromSum will find a message inside a sum type if it exists.
// Assuming you define your Tx with protobuf, this will help you implement
// GetMsg()
//
//   func (tx *Tx) GetMsg() (guild.Msg, error) {
//       return guild.ExtractMsgFromSum(tx.GetSum())
//   }
//
// As this uses reflection, it is a bit slower than a switch statement,
// but it works with all sum types with no additional code to write.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container")
	}
	pval := reflect.ValueOf(sum)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container: %T", sum)
	}
	val := pval.Elem()
	if val.NumField() != 1 {
		return nil, errors.Wrapf(errors.ErrInput, "unexpected message container field count: %d", val.NumField())
	}
	field := val.Field(0)
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, "message is <nil>")
	}
	res, ok := field.Interface().(Msg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "invalid message type: %T", field.Interface())
	}
	return res, nil
}
