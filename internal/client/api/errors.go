package api

import "errors"

// FallbackMessage is shown to the user when a failure carries no usable
// server-provided message.
const FallbackMessage = "An error occurred"

// AuthError is a rejection from the auth API: a non-2xx response, carrying
// the server's message payload when one was present.
type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

// ErrorMessage maps any error from this package to the text shown to the
// user: the server's message for rejections that carried one, otherwise
// FallbackMessage. It never returns an empty string.
func ErrorMessage(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return FallbackMessage
}
