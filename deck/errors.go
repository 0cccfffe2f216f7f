package deck

import "errors"

// ErrUnsupportedInput indicates a content value whose shape no slide
// handler accepts.
var ErrUnsupportedInput = errors.New("unsupported input")

// ErrNilContent indicates a nil content value.
var ErrNilContent = errors.New("nil content")

// ErrInvalidWorkbook indicates an operation on a handle that does not wrap
// a live document (nil or not built by New).
var ErrInvalidWorkbook = errors.New("invalid workbook handle")
