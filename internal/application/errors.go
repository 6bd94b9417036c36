package application

import "errors"

// ErrKind classifies an auth failure. Handlers flatten every kind into
// the uniform {success:false, message} body; the kind only picks the
// HTTP status and keeps the service code exhaustive.
type ErrKind int

const (
	KindValidation ErrKind = iota + 1 // missing or malformed input
	KindNotFound                      // no matching account
	KindCredential                    // wrong password, invalid or expired OTP
	KindConflict                      // duplicate registration, already verified
	KindInfra                         // store, notifier or token failure
)

// Error is the failure type returned by the application services.
// Message is safe to show to the caller; the wrapped cause is not.
type Error struct {
	Kind    ErrKind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func validationErr(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func notFoundErr(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func credentialErr(msg string) *Error { return &Error{Kind: KindCredential, Message: msg} }
func conflictErr(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

func infraErr(msg string, cause error) *Error {
	return &Error{Kind: KindInfra, Message: msg, cause: cause}
}

// AsError extracts an *Error from err, wrapping anything unexpected as
// an infrastructure failure so nothing ever escapes the flat shape.
func AsError(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return infraErr("Something went wrong", err)
}
