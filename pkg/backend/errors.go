package backend

import "errors"

var ErrUnknownDriver = errors.New("backend: unknown session store driver")
