package gateway

import "errors"

var (
	ErrTransport  = errors.New("transport")  // network unreachable or 5xx
	ErrValidation = errors.New("validation") // server rejected the payload, 4xx
	ErrDecode     = errors.New("decode")     // malformed response body
)
