package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If any of the passed errors is a collection of errors, it is flattened and
// all its members are included into the result set directly.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError is a group of errors clubbed together. It is a result of calling
// the Append function with more than one not nil error.
type multiError []error

var _ unpacker = (multiError)(nil)
var _ coder = (multiError)(nil)

// Unpack implements the unpacker interface.
func (errs multiError) Unpack() []error {
	return errs
}

func (errs multiError) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ABCICode returns the code of the first member error. This is consistent
// with the fail fast approach, where the processing is stopped by the first
// failure.
func (errs multiError) ABCICode() uint32 {
	if len(errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(errs[0])
}
