package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Envelope is the part common to all responses. Every response payload type
// embeds it
type Envelope struct {
	Success *bool           `json:"success"`
	Error   json.RawMessage `json:"error,omitempty"`
}

func (e *Envelope) envelope() *Envelope {
	return e
}

func (e *Envelope) errorMessage() string {
	if len(e.Error) == 0 {
		return ""
	}
	var message string
	if err := json.Unmarshal(e.Error, &message); err == nil {
		return message
	}
	return string(e.Error)
}

// Payload is satisfied by a pointer to a struct embedding Envelope
type Payload[P any] interface {
	*P
	envelope() *Envelope
}

// Endpoint describes a remote operation. Name is used verbatim as URL path.
// With AbsentOnFailure a response with success == false is not an error and
// yields zero value of the result ("not found").
type Endpoint struct {
	Name            string
	AbsentOnFailure bool
}

var errMissingSuccess = errors.New(`required field "success" is missing`)

// MissingFieldError is returned by extract functions when a field required on
// success is absent from response
type MissingFieldError struct {
	Field string
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", err.Field)
}

// Field returns *value or MissingFieldError if value was absent in response
func Field[T any](name string, value *T) (T, error) {
	if value == nil {
		var zero T
		return zero, &MissingFieldError{Field: name}
	}
	return *value, nil
}

// Decode parses response body of endpoint as payload P and applies extract
// to a successful payload. Malformed body results in JSONParseError,
// success == false in RemoteOperationFailedError unless endpoint has
// AbsentOnFailure set.
func Decode[P any, PP Payload[P], T any](ep Endpoint, body []byte, extract func(*P) (T, error)) (T, error) {
	var zero T

	payload := PP(new(P))
	if err := json.Unmarshal(body, payload); err != nil {
		// a failed response may leave payload fields malformed, they are not
		// required then
		var plain Envelope
		if json.Unmarshal(body, &plain) == nil && plain.Success != nil && !*plain.Success {
			return failure[T](ep, &plain)
		}
		return zero, &JSONParseError{Endpoint: ep.Name, Body: string(body), Err: err}
	}

	env := payload.envelope()
	if env.Success == nil {
		return zero, &JSONParseError{Endpoint: ep.Name, Body: string(body), Err: errMissingSuccess}
	}
	if !*env.Success {
		return failure[T](ep, env)
	}

	result, err := extract(payload)
	if err != nil {
		return zero, &JSONParseError{Endpoint: ep.Name, Body: string(body), Err: err}
	}
	return result, nil
}

func failure[T any](ep Endpoint, env *Envelope) (T, error) {
	var zero T
	if ep.AbsentOnFailure {
		return zero, nil
	}
	return zero, &RemoteOperationFailedError{Endpoint: ep.Name, Message: env.errorMessage()}
}

// Call exchanges params with endpoint through caller and decodes response
// with Decode
func Call[P any, PP Payload[P], T any](ctx context.Context, caller Caller, ep Endpoint, params Params, extract func(*P) (T, error)) (T, error) {
	body, err := caller.Exchange(ctx, ep.Name, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[P, PP](ep, body, extract)
}
