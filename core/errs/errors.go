package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind int

const (
	KindValidation Kind = iota
	KindInvalidState
	KindNotFound
)

// Error message constants shared by the cart, chat and customization domains.
const (
	ErrMsgQuantityPositive    = "quantity must be positive"
	ErrMsgQuantityNegative    = "quantity cannot be negative"
	ErrMsgItemNotInCart       = "item not in cart"
	ErrMsgCartEmpty           = "cart is empty"
	ErrMsgWizardCompleted     = "customization already completed"
	ErrMsgOptionTypeUnknown   = "unknown option type"
	ErrMsgOptionValueRequired = "option value is required"
	ErrMsgSessionNotFound     = "session not found"
	ErrMsgWizardNotFound      = "customization not found"
	ErrMsgProductNotFound     = "product not found"
	ErrMsgGroupNotFound       = "recommendation group not found"
	ErrMsgProductIDRequired   = "product id is required"
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindInvalidState:
		return "INVALID_STATE"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrValidation   = &Error{Kind: KindValidation, Message: "validation error"}
	ErrInvalidState = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Kind so callers can compare against the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func InvalidStatef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
