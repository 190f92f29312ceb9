package contract

import "errors"

// ErrNotFound is returned by conditional writes when the target row no
// longer exists, e.g. a permanent delete landed after the caller's
// ownership read.
var ErrNotFound = errors.New("record not found")
