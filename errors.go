package pen

import "errors"

// ErrUnknownParam is reported when a block names a color parameter pen
// does not know. It is a usage error: the state is left as it was.
var ErrUnknownParam = errors.New("pen: unknown color parameter")
