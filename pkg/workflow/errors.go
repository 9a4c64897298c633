package workflow

import "errors"

// ErrMissingSpec marks a planning stage that finished without producing
// a specification file.
var ErrMissingSpec = errors.New("planning finished without a specification file under specs/")
