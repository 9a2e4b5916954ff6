package fetch

import "errors"

// ErrUnexpectedStatus is returned when the server responds with a
// non-2xx status code. The response body is not read in that case.
var ErrUnexpectedStatus = errors.New("unexpected status code")
