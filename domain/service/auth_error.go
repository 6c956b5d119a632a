package service

import "fmt"

type AuthErrorKind int

const (
	// AuthErrorMalformedHeader covers a missing/garbled Authorization header
	// or a token that does not parse at all.
	AuthErrorMalformedHeader AuthErrorKind = iota + 1
	AuthErrorBadSignature
	AuthErrorTokenExpired
	AuthErrorInvalidClaims
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthErrorMalformedHeader:
		return "malformed_header"
	case AuthErrorBadSignature:
		return "bad_signature"
	case AuthErrorTokenExpired:
		return "token_expired"
	case AuthErrorInvalidClaims:
		return "invalid_claims"
	default:
		return "unknown"
	}
}

// AuthError distinguishes why credential verification failed. All kinds map
// to the same generic 401 externally; the kind exists for logging and tests.
type AuthError struct {
	Kind  AuthErrorKind
	cause error
}

func newAuthError(kind AuthErrorKind, cause error) *AuthError {
	return &AuthError{Kind: kind, cause: cause}
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("auth failed (%s): %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("auth failed (%s)", e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.cause
}
