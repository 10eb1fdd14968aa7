package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// ErrUpstream reports a 5xx answer; the upstream may recover.
	ErrUpstream = errors.New("upstream error")

	// ErrTooManyRequests reports a 429 answer; the upstream asks to come back
	// later.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrRequestTimeout reports a 408 answer.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrUnexpectedStatus reports any other non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrUnreachable reports a transport failure (DNS, connect, timeout).
	ErrUnreachable = errors.New("upstream unreachable")

	// ErrKeyRejected is returned when the SMS provider reports that the key
	// cannot be used.
	ErrKeyRejected = errors.New("sms key rejected by provider")
)
