package session

import "errors"

// ErrStoreUnavailable wraps any database failure. It is the one error the
// dialogue engine does not absorb: the turn fails without a state write.
var ErrStoreUnavailable = errors.New("session store unavailable")
