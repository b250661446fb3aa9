package extract

import "errors"

// Fatal extraction failures. They are returned wrapped with context and
// should be matched with errors.Is.
var (
	ErrTableNotFound    = errors.New("table not found")
	ErrMarkerNotFound   = errors.New("marker not found")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingSubTable  = errors.New("missing sub table")
)
