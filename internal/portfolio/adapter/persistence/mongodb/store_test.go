package mongodb

import (
	"testing"
	"time"

	"portfolio-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDocument_ObjectIDToHex(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := normalizeDocument(bson.M{"_id": oid, "name": "Devang Shah"})

	assert.Equal(t, oid.Hex(), doc["_id"])
	assert.Equal(t, "Devang Shah", doc["name"])
}

func TestNormalizeDocument_Recursive(t *testing.T) {
	inner := primitive.NewObjectID()
	created := primitive.NewDateTimeFromTime(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	doc := normalizeDocument(bson.M{
		"links":      bson.M{"repo": "https://github.com", "ref": inner},
		"stack":      bson.A{"Go", "MongoDB", bson.M{"nested": inner}},
		"created_at": created,
	})

	links, ok := doc["links"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, inner.Hex(), links["ref"])

	stack, ok := doc["stack"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "Go", stack[0])
	nested, ok := stack[2].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, inner.Hex(), nested["nested"])

	ts, ok := doc["created_at"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.UTC, ts.Location())
}

func TestNormalizeDocument_BsonDSubdocument(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := normalizeDocument(bson.M{
		"details": bson.D{{Key: "problem", Value: "x"}, {Key: "ref", Value: oid}},
	})

	details, ok := doc["details"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "x", details["problem"])
	assert.Equal(t, oid.Hex(), details["ref"])
}

func TestBuildFilter_ConvertsIDStrings(t *testing.T) {
	store := NewMongoDocumentStore(nil)
	oid := primitive.NewObjectID()

	query, err := store.buildFilter(map[string]interface{}{"_id": oid.Hex(), "featured": true})
	require.NoError(t, err)
	assert.Equal(t, oid, query["_id"])
	assert.Equal(t, true, query["featured"])
}

func TestBuildFilter_RejectsMalformedID(t *testing.T) {
	store := NewMongoDocumentStore(nil)

	_, err := store.buildFilter(map[string]interface{}{"_id": "not-a-hex-id"})
	assert.ErrorIs(t, err, errors.ErrInvalidID)
}

func TestBuildFilter_NilFilter(t *testing.T) {
	store := NewMongoDocumentStore(nil)

	query, err := store.buildFilter(nil)
	require.NoError(t, err)
	assert.Empty(t, query)
}
