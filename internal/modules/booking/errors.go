package booking

import "errors"

var (
	// ErrMissingFields rejects a submission with an incomplete interval or
	// blank guest name/email. The availability oracle is never consulted.
	ErrMissingFields = errors.New("missing required booking fields")

	// ErrNotAvailable means the oracle answered no (or the store's overlap
	// constraint fired). The caller may pick other dates and resubmit; there
	// is no automatic retry.
	ErrNotAvailable = errors.New("room is not available for the requested interval")

	// ErrAvailabilityCheck wraps a transport failure while consulting the
	// oracle. Conservative policy: an unanswered oracle blocks the booking.
	ErrAvailabilityCheck = errors.New("availability check failed")

	// ErrPersist wraps a store failure on the booking insert. The insert is
	// single-row atomic, so no partial record is left behind.
	ErrPersist = errors.New("booking could not be stored")

	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
