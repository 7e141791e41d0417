package model

import (
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseID converts a domain identifier into a store id.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, errors.Wrapf(repository.ErrInvalidID, "%q", id)
	}

	return oid, nil
}

// ParseOptionalID is ParseID for optional references: "" maps to nil.
func ParseOptionalID(id string) (*bson.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	return &oid, nil
}

// ParseIDs converts a list of domain identifiers.
func ParseIDs(ids []string) ([]bson.ObjectID, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	return oids, nil
}

// Hex returns the domain form of an optional reference.
func Hex(oid *bson.ObjectID) string {
	if oid == nil || oid.IsZero() {
		return ""
	}

	return oid.Hex()
}

// Hexes returns the domain form of a list of store ids.
func Hexes(oids []bson.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}

	return ids
}
