package math

import (
	"errors"
)

// Kind classifies why an input was rejected.
type Kind int

const (
	// KindType means the input's type, not its value, is invalid.
	KindType Kind = iota + 1
	// KindValue means the input has the right type but is outside the accepted domain.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

const (
	msgNotInteger = "Input must be an integer"
	msgNegative   = "Input must be non-negative"
	msgOutOfRange = "Input is too large"
)

// Error is returned for rejected inputs. Error() is the bare message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrType) matches every type error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrType  = &Error{Kind: KindType, Message: msgNotInteger}
	ErrValue = &Error{Kind: KindValue, Message: msgNegative}
)

func typeError() error {
	return &Error{Kind: KindType, Message: msgNotInteger}
}

func valueError(msg string) error {
	return &Error{Kind: KindValue, Message: msg}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
