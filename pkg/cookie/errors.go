package cookie

import "errors"

var (
	ErrCookieNotFound  = errors.New("cookie.not_found")
	ErrEmptyValue      = errors.New("cookie.empty_value")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)
