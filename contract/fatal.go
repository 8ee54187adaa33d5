package contract

import "errors"

// A FatalError signals that the execution environment itself is terminating.
// It is the one fault category that evaluation guards must never convert into
// a property outcome: it is always re-propagated unchanged and is expected to
// abort the whole process.
//
// A contract marks a fault as fatal by panicking with a *FatalError or by
// returning an error that wraps one. The category is defined by the fault's
// identity, not by which channel it arrived on.
type FatalError struct {
	Err error
}

// Fatal wraps err into the fatal category.
func Fatal(err error) *FatalError {
	return &FatalError{Err: err}
}

func (f *FatalError) Error() string {
	if f.Err == nil {
		return "fatal environment fault"
	}
	return "fatal environment fault: " + f.Err.Error()
}

func (f *FatalError) Unwrap() error {
	return f.Err
}

// IsFatal reports whether a fault recovered from a contract evaluation
// belongs to the fatal category. It accepts arbitrary panic values; non-error
// values are never fatal.
func IsFatal(fault any) bool {
	switch f := fault.(type) {
	case *FatalError:
		return f != nil
	case error:
		var fatal *FatalError
		return errors.As(f, &fatal)
	default:
		return false
	}
}
