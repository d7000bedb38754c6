package filter

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date value is neither a yyyy-mm-dd date nor an integer
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrDuplicateFilter is returned when a Set holds more than one filter for the same kind and key.
	// It means the Set was built around AddOrUpdate with duplicate filters.
	ErrDuplicateFilter = errors.New("duplicate filter for kind and key")
	// ErrLogicKey is returned when a query has no logic key or has it more than once
	ErrLogicKey = errors.New("missing or ambiguous logic key")
	// ErrInvalidLogic is returned when the logic value is not and/or
	ErrInvalidLogic = errors.New("invalid logic")
	// ErrUnrecognizedKind is returned for an unknown filter kind
	ErrUnrecognizedKind = errors.New("unrecognized filter kind")
	// ErrUnrecognizedKey is returned when a query key is not one of the known keys
	ErrUnrecognizedKey = errors.New("unrecognized key")
	// ErrMalformedQuery is returned when a query string cannot be split into its parts
	ErrMalformedQuery = errors.New("malformed query")
)
