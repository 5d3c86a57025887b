package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleTooLong = errors.New("post title is too long")
	ErrBodyTooLong  = errors.New("post body is too long")
)
