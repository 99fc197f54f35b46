package installer

import "errors"

// ErrUnsupportedOS is returned when an installer does not support the
// detected operating system.
var ErrUnsupportedOS = errors.New("unsupported operating system")
