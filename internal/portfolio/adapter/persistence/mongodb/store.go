package mongodb

import (
	"context"
	"time"

	"portfolio-backend/internal/portfolio/domain/model"
	"portfolio-backend/internal/portfolio/domain/repository"
	"portfolio-backend/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultListLimit caps list reads that do not request their own limit.
const defaultListLimit = int64(1000)

// MongoDocumentStore implements the DocumentStore interface using MongoDB.
// Identifiers are validated before any round-trip and normalized to hex
// strings on the way out.
type MongoDocumentStore struct {
	db *mongo.Database
}

// NewMongoDocumentStore creates a new MongoDB-backed document store.
func NewMongoDocumentStore(db *mongo.Database) *MongoDocumentStore {
	return &MongoDocumentStore{db: db}
}

// FindOne returns the first document matching filter.
func (s *MongoDocumentStore) FindOne(ctx context.Context, collection string, filter model.Document) (model.Document, error) {
	query, err := s.buildFilter(filter)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := s.db.Collection(collection).FindOne(ctx, query).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	return normalizeDocument(doc), nil
}

// FindMany returns documents matching filter, sorted and capped.
func (s *MongoDocumentStore) FindMany(ctx context.Context, collection string, filter model.Document, sort []repository.SortField, limit int64) ([]model.Document, error) {
	query, err := s.buildFilter(filter)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	opts := options.Find().SetLimit(limit)
	if len(sort) > 0 {
		sortDoc := bson.D{}
		for _, f := range sort {
			order := 1
			if f.Desc {
				order = -1
			}
			sortDoc = append(sortDoc, bson.E{Key: f.Key, Value: order})
		}
		opts.SetSort(sortDoc)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(raw))
	for _, doc := range raw {
		docs = append(docs, normalizeDocument(doc))
	}
	return docs, nil
}

// Insert stores a new document and returns its assigned identifier as a hex
// string.
func (s *MongoDocumentStore) Insert(ctx context.Context, collection string, doc model.Document) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", errors.NewInternalError("store returned a non-ObjectID identifier")
}

// UpdateByID patches the given fields onto one document.
func (s *MongoDocumentStore) UpdateByID(ctx context.Context, collection, id string, fields model.Document) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.ErrInvalidID
	}

	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteByID removes one document.
func (s *MongoDocumentStore) DeleteByID(ctx context.Context, collection, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.ErrInvalidID
	}

	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// buildFilter converts a caller filter to a query document. A string value
// under "_id" is converted to an ObjectID; malformed identifiers fail here,
// before any store round-trip.
func (s *MongoDocumentStore) buildFilter(filter model.Document) (bson.M, error) {
	query := bson.M{}
	for key, value := range filter {
		if key == "_id" {
			str, ok := value.(string)
			if !ok {
				query[key] = value
				continue
			}
			oid, err := primitive.ObjectIDFromHex(str)
			if err != nil {
				return nil, errors.ErrInvalidID
			}
			query[key] = oid
			continue
		}
		query[key] = value
	}
	return query, nil
}

// normalizeDocument walks a decoded document and converts driver types to
// their wire representation: ObjectIDs become hex strings, BSON datetimes
// become UTC times, nested documents and arrays are walked recursively.
func normalizeDocument(doc bson.M) model.Document {
	if doc == nil {
		return nil
	}
	out := model.Document{}
	for key, value := range doc {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v.UTC()
	case bson.M:
		return normalizeDocument(v)
	case map[string]interface{}:
		return normalizeDocument(v)
	case bson.D:
		nested := bson.M{}
		for _, elem := range v {
			nested[elem.Key] = elem.Value
		}
		return normalizeDocument(nested)
	case bson.A:
		items := make([]interface{}, 0, len(v))
		for _, item := range v {
			items = append(items, normalizeValue(item))
		}
		return items
	case []interface{}:
		items := make([]interface{}, 0, len(v))
		for _, item := range v {
			items = append(items, normalizeValue(item))
		}
		return items
	default:
		return value
	}
}
