package mongo

import (
	"context"

	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// pageOptions turns a validated page into find options sorted by sort.
func pageOptions(page repository.Page, sort bson.D) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(sort).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))
}

// findAll runs a query and converts every decoded document.
func findAll[M any, E any](
	ctx context.Context,
	coll *mongo.Collection,
	filter any,
	opts *options.FindOptionsBuilder,
	convert func(*M) *E,
) ([]*E, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []*M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]*E, 0, len(docs))
	for _, doc := range docs {
		result = append(result, convert(doc))
	}

	return result, nil
}

// distinctIDs returns the hex form of the distinct ObjectID values of field.
func distinctIDs(ctx context.Context, coll *mongo.Collection, field string, filter any) ([]string, error) {
	var oids []bson.ObjectID
	if err := coll.Distinct(ctx, field, filter).Decode(&oids); err != nil {
		return nil, err
	}

	return model.Hexes(oids), nil
}

// findByIDOr decodes the document whose store id is id. When id is not a
// store id, or nothing matches, the secondary field is tried instead.
func findByIDOr(ctx context.Context, coll *mongo.Collection, id, secondary string, doc any) error {
	if oid, err := model.ParseID(id); err == nil {
		err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(doc)
		if !isNotFound(err) {
			return err
		}
	}

	return coll.FindOne(ctx, bson.M{secondary: id}).Decode(doc)
}

// findByID decodes the document whose store id is id.
func findByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	return coll.FindOne(ctx, bson.M{"_id": oid}).Decode(doc)
}

// inIDs matches field against any of ids. Invalid ids fail the query.
func inIDs(field string, ids []string) (bson.M, error) {
	oids, err := model.ParseIDs(ids)
	if err != nil {
		return nil, err
	}

	return bson.M{field: bson.M{"$in": oids}}, nil
}
