package bitbucket

import "fmt"

// APIError is a non-2xx response from Bitbucket. Message carries the
// error.message field of the Cloud error envelope when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bitbucket: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("bitbucket: %s (status %d)", e.Message, e.Status)
}

// RequestError is a transport-level failure: the request never produced an
// HTTP response.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("bitbucket: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the standard Cloud API error body
// {"type":"error","error":{"message":"..."}}
type errorEnvelope struct {
	Type  string `json:"type"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
