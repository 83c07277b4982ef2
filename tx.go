package cascade

import (
	"reflect"

	"github.com/cascade-one/cascade/errors"
)

// Msg is message for the engine to take an action
// (make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate returns an error if the message does not pass
	// a static validation. This is called before the message
	// is handled.
	Validate() error

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that
	// corresponds to them.
	//
	// Multiple types may have the same value, and will end up at
	// the same Handler.
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

// Tx represent the data sent from the user to the engine.
// It includes the actual message, along with information needed
// to authenticate the sender, and anything else needed to pass
// through middleware.
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

// ExtractMsgFromSum will find a message from a tagged sum type
// if it exists. Assuming you define your Tx with protobuf,
// this will help you implement GetMsg()
//
//   func (tx ReferralTx) GetMsg() (cascade.Msg, error) {
//     return cascade.ExtractMsgFromSum(tx.GetSum())
//   }
//
// The source must be a pointer to a struct with one non-nil field,
// and that field must implement Msg.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container")
	}
	pval := reflect.ValueOf(sum)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container: %T", sum)
	}
	val := pval.Elem()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() == reflect.Ptr && field.IsNil() {
			continue
		}
		res, ok := field.Interface().(Msg)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInput, "invalid message: %T", field.Interface())
		}
		return res, nil
	}
	return nil, errors.Wrap(errors.ErrState, "message is not present")
}

// LoadMsg extracts the message from the transaction and unpacks it into
// the given destination. Before returning the message is also validated.
// Destination must be a non-nil pointer to a Msg implementation.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	dstVal := reflect.ValueOf(destination)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}
	msgVal := reflect.ValueOf(msg)
	if msgVal.Type() != dstVal.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}

	dstVal.Elem().Set(msgVal.Elem())

	if err := destination.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)
