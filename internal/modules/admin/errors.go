package admin

import "errors"

// ErrInvalidTransition rejects status updates that would move a booking
// backwards or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")
