package locmatch

import "errors"

// ErrNilFilesystem indicates a nil filesystem passed to a load function.
var ErrNilFilesystem = errors.New("nil filesystem")
