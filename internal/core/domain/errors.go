package domain

import (
	"errors"
	"net/http"
)

// ErrorKind is the closed set of failure categories the services produce.
// Handlers switch over it exhaustively to pick an HTTP status; nothing else
// in the system inspects error strings.
type ErrorKind int

const (
	// KindValidation marks a field that failed format or range rules.
	KindValidation ErrorKind = iota
	// KindNotFound marks a lookup by id (or an empty listing) with no match.
	KindNotFound
	// KindDuplicate marks a CPF or e-mail collision on user registration.
	KindDuplicate
	// KindInvalidReference marks an order whose user id the user API
	// reported as missing (404/422).
	KindInvalidReference
	// KindUpstream marks a peer service that answered with an unexpected
	// status or could not be reached at all.
	KindUpstream
	// KindEncryption and KindDecryption mark confidentiality codec failures.
	KindEncryption
	KindDecryption
	// KindUnknown is the catch-all for faults with no better category.
	KindUnknown
)

// Error is the single error type crossing the service boundary. Status is
// only meaningful for KindInvalidReference and KindUpstream, where the peer's
// HTTP status is mirrored back to the caller.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError reports a field format/range violation (HTTP 400).
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewNotFoundError reports a missing entity (HTTP 404).
func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewDuplicateError reports a CPF/e-mail collision (HTTP 400).
func NewDuplicateError(msg string) *Error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

// NewInvalidReferenceError reports a rejected user reference; status carries
// the user API's own answer (404 or 422) and is mirrored to the caller.
func NewInvalidReferenceError(status int, msg string) *Error {
	return &Error{Kind: KindInvalidReference, Status: status, Message: msg}
}

// NewUpstreamError reports an unexpected peer response. A zero status is
// normalised to 500 (transport failures have no status to mirror).
func NewUpstreamError(status int, msg string, cause error) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: KindUpstream, Status: status, Message: msg, cause: cause}
}

// NewEncryptionError wraps a codec failure during encryption.
func NewEncryptionError(cause error) *Error {
	return &Error{Kind: KindEncryption, Message: "error encrypting data", cause: cause}
}

// NewDecryptionError wraps a codec failure during decryption.
func NewDecryptionError(cause error) *Error {
	return &Error{Kind: KindDecryption, Message: "error decrypting data", cause: cause}
}

// NewUnknownError wraps an uncategorised fault.
func NewUnknownError(cause error) *Error {
	return &Error{Kind: KindUnknown, Message: "an unknown error occurred", cause: cause}
}

// KindOf extracts the kind of err, unwrapping as needed. Foreign errors are
// reported as KindUnknown.
func KindOf(err error) ErrorKind {
	return From(err).Kind
}

// From recovers the typed Error from err's chain, or wraps a foreign error
// as KindUnknown so callers always have a kind and message to work with.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewUnknownError(err)
}
