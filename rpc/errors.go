package rpc

import (
	"fmt"
)

// CredentialIOError is returned when a certificate or key file can't be
// opened or read. It is fatal to client creation
type CredentialIOError struct {
	Path string
	Err  error
}

func (err *CredentialIOError) Error() string {
	return fmt.Sprintf("failed to read TLS credential file %s: %s", err.Path, err.Err)
}

func (err *CredentialIOError) Unwrap() error {
	return err.Err
}

// CredentialFormatError is returned when certificate or key file contents
// can't be parsed
type CredentialFormatError struct {
	Path string
	Err  error
}

func (err *CredentialFormatError) Error() string {
	return fmt.Sprintf("failed to parse TLS credential file %s: %s", err.Path, err.Err)
}

func (err *CredentialFormatError) Unwrap() error {
	return err.Err
}

// InvalidArgumentError reports a local precondition violation. It is returned
// before any network I/O is done
type InvalidArgumentError struct {
	Endpoint string
	Reason   string
}

func (err *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument for %s: %s", err.Endpoint, err.Reason)
}

// NetworkError wraps a transport-level failure: DNS, connect, TLS handshake,
// connection reset, timeout or cancellation
type NetworkError struct {
	URL string
	Err error
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", err.URL, err.Err)
}

func (err *NetworkError) Unwrap() error {
	return err.Err
}

// BadStatusError is returned when server responds with HTTP status other than
// 200 OK. Response body is not interpreted
type BadStatusError struct {
	Status int
	URL    string
}

func (err *BadStatusError) Error() string {
	return fmt.Sprintf("bad status code %d for URL %s", err.Status, err.URL)
}

// ResponseTooLargeError is returned when response body exceeds configured
// size limit
type ResponseTooLargeError struct {
	URL   string
	Limit int64
}

func (err *ResponseTooLargeError) Error() string {
	return fmt.Sprintf("response from %s exceeds limit of %d bytes", err.URL, err.Limit)
}

// JSONParseError is returned when response body is not valid JSON or does not
// match expected payload shape. Body holds the offending response text
type JSONParseError struct {
	Endpoint string
	Body     string
	Err      error
}

const maxBodyInError = 4096

func (err *JSONParseError) Error() string {
	body := err.Body
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "...(truncated)"
	}
	return fmt.Sprintf("failed to parse %s response %q: %s", err.Endpoint, body, err.Err)
}

func (err *JSONParseError) Unwrap() error {
	return err.Err
}

// RemoteOperationFailedError is returned for a well-formed response with
// success == false. Message is the error text sent by the service, if any
type RemoteOperationFailedError struct {
	Endpoint string
	Message  string
}

func (err *RemoteOperationFailedError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("%s failed on remote side", err.Endpoint)
	}
	return fmt.Sprintf("%s failed on remote side: %s", err.Endpoint, err.Message)
}
