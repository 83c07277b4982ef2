package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given errors are itself a result of the Append call they are flattened.
// This means that the final error is a single level collection of all
// errors.
func Append(errs ...error) error {
	var collection multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case multiError:
			collection = append(collection, e...)
		case *Error:
			if e != nil {
				collection = append(collection, e)
			}
		default:
			collection = append(collection, e)
		}
	}

	switch len(collection) {
	case 0:
		return nil
	case 1:
		return collection[0]
	default:
		return collection
	}
}

// multiError represents a group of errors.
type multiError []error

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	descs := make([]string, len(e))
	for i, err := range e {
		descs[i] = err.Error()
	}
	return strings.Join(descs, "; ")
}

// ABCICode returns the code of the first error that provides one. Order of
// the errors within a group is expected to follow fail-fast semantics.
func (e multiError) ABCICode() uint32 {
	for _, err := range e {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
	}
	return internalABCICode
}

// Cause returns the first error of the group. This allows the Is check to
// unwrap a group and test against the most important failure.
func (e multiError) Cause() error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}

var _ coder = (multiError)(nil)
var _ causer = (multiError)(nil)
var _ error = (multiError)(nil)
