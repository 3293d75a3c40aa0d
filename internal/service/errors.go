package service

import "errors"

// ErrNotAuthenticated indicates that an operation requiring a valid session
// was invoked without one, or that an authentication step finished without
// producing one. Handlers map it to HTTP 401.
var ErrNotAuthenticated = errors.New("not authenticated")
