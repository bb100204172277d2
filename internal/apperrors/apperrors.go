// Package apperrors classifies service failures so transport code can map
// them to responses without inspecting error strings.
package apperrors

import "errors"

// Kind partitions errors by how the caller should react to them.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindParse
	KindPersistence
	KindNotFound
	KindStructure
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindPersistence:
		return "persistence"
	case KindNotFound:
		return "not found"
	case KindStructure:
		return "structure"
	case KindAuthorization:
		return "authorization"
	default:
		return "unknown"
	}
}

// Error carries a caller-safe message alongside the wrapped cause. Message
// never contains SQL, file paths, or other internals.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Parse(message string, err error) error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

func Persistence(message string, err error) error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Structure(message string, err error) error {
	return &Error{Kind: KindStructure, Message: message, Err: err}
}

func Authorization(message string) error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// KindOf reports the classification of err, walking the wrap chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// UserMessage returns the caller-safe message for err, or a generic one for
// unclassified errors.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
