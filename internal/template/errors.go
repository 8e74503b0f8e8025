package template

import "errors"

// ErrUnknownPack indicates an invalid template pack name was specified.
var ErrUnknownPack = errors.New("unknown template pack")
