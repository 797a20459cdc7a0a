package chat

import "errors"

// ErrGuestIdentityRequired rejects anonymous messages that carry no name or
// email to answer back to.
var ErrGuestIdentityRequired = errors.New("guest name and email are required")
