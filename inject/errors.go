package inject

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrorCode is a machine-readable classification of a registry error.
type ErrorCode string

const (
	CodeDuplicateRegistration ErrorCode = "DUPLICATE_REGISTRATION"
	CodeUnknownKey            ErrorCode = "UNKNOWN_KEY"
)

// Sentinel targets for errors.Is matching.
var (
	ErrDuplicateRegistration = errors.New("inject: duplicate registration")
	ErrUnknownKey            = errors.New("inject: unknown key")
)

// DuplicateRegistrationError reports a strict-once registration against a
// key that already holds a value. It signals a programming error (two code
// paths claiming the same dependency), not a transient condition; the
// existing value is left untouched.
type DuplicateRegistrationError struct {
	Key KeyID
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("%s: key %s already registered", CodeDuplicateRegistration, e.Key)
}

// Code returns the machine-readable error code.
func (e *DuplicateRegistrationError) Code() ErrorCode { return CodeDuplicateRegistration }

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

// UnknownKeyError reports a key whose stored value cannot be recovered as
// the key's declared type, or a key with no reachable identity. Well-formed
// keys cannot produce it; it exists as a defensive check.
type UnknownKeyError struct {
	Key  KeyID
	Want reflect.Type
	Got  reflect.Type
}

func (e *UnknownKeyError) Error() string {
	if e.Got != nil {
		return fmt.Sprintf("%s: key %s holds %s, want %s", CodeUnknownKey, e.Key, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: key %s has no reachable default", CodeUnknownKey, e.Key)
}

// Code returns the machine-readable error code.
func (e *UnknownKeyError) Code() ErrorCode { return CodeUnknownKey }

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
