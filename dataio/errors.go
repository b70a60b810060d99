package dataio

import "errors"

var (
	// ErrNotImplemented reports a file kind without a loader or saver.
	ErrNotImplemented = errors.New("dataio: not implemented for file kind")
	// ErrFormat reports malformed file contents.
	ErrFormat = errors.New("dataio: malformed data")
	// ErrNoPaths reports an empty path list.
	ErrNoPaths = errors.New("dataio: no paths given")
)
