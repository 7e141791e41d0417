package repository

import "eventhub/internal/errors"

// ErrInvalidID is returned when an identifier is neither a store id nor a valid secondary key.
var ErrInvalidID = errors.New("invalid identifier")
