package semrush

import "fmt"

// MissingArgumentError reports a report invocation rejected by local
// validation: a required argument absent or empty, a list over its
// maximum length, or paired lists with mismatched lengths. It is always
// returned before any credential resolution or network traffic.
type MissingArgumentError struct {
	Argument string
	Reason   string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
	}
	return fmt.Sprintf("missing required argument %q", e.Argument)
}

// RemoteRequestError reports a non-2xx response from the report API.
// The body is carried verbatim; the remote reports failures as plain
// text lines such as "ERROR 120 :: WRONG KEY - ID PAIR".
type RemoteRequestError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("semrush request failed with status %d: %s", e.StatusCode, e.Body)
}
