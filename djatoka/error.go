package djatoka

import (
	"fmt"
	"net/http"
)

// Kind classifies a translation failure.
type Kind int

// Every way a request can fail inside the shim. A failure is final,
// nothing is retried or recovered.
const (
	UnresolvableIdentifier Kind = iota
	UpstreamUnavailable
	MalformedMetadata
	InvalidParameter
	LevelOutOfRange
)

var kindNames = [...]string{
	"unresolvable identifier",
	"upstream unavailable",
	"malformed metadata",
	"invalid parameter",
	"level out of range",
}

// String names the error kind.
func (k Kind) String() string {
	return kindNames[k]
}

// Error represents a translation failure to be shown to the caller.
type Error struct {
	Kind    Kind
	Message string
}

// Error formats the failure message.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// StatusCode maps the error kind onto an HTTP status. Caller faults
// are 400, upstream faults are 502.
func (e Error) StatusCode() int {
	switch e.Kind {
	case UpstreamUnavailable, MalformedMetadata:
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

// asError keeps a typed Error as is and labels anything else, like an
// error coming back through groupcache, as an upstream failure.
func asError(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return Error{UpstreamUnavailable, err.Error()}
}
