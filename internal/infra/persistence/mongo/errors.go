package mongo

import (
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// storeError converts a driver error into an AppError. Connection level
// failures become STORE_UNAVAILABLE, everything else DATABASE_EXECUTE_FAILED.
func storeError(err error, details string) error {
	if isUnavailable(err) {
		return errors.Wrapf(domainerrors.ErrStoreUnavailable.WithDetails(details), "%v", err)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func isUnavailable(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// lookupError maps the error of a single document lookup: no document becomes
// notFound, a malformed id passes through, anything else is a store error.
func lookupError(err, notFound error, details string) error {
	switch {
	case isNotFound(err):
		return notFound
	case errors.Is(err, repository.ErrInvalidID):
		return err
	default:
		return storeError(err, details)
	}
}
