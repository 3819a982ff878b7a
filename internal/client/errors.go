package client

import "errors"

var (
	// ErrUnexpectedStatusCode indicates the server answered the status
	// request with a non-200 HTTP code.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)
