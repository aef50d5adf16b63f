package storage

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"NobelDashboard/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Document field names.
const (
	fieldYear        = "year"
	fieldCategory    = "category"
	fieldGender      = "gender"
	fieldBornCountry = "bornCountry"
	fieldBorn        = "born"
	fieldAge         = "age"
)

type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// OpenMongo connects once and verifies the server is reachable. The returned
// store is shared by every dashboard cycle.
func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, unavailable("OpenMongo()", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, unavailable("OpenMongo()", err)
	}
	log.Printf("OpenMongo(): connected to %s.%s", database, collection)
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoStore) FetchAll(ctx context.Context) ([]models.AwardRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, unavailable("MongoStore.FetchAll()", err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("MongoStore.FetchAll()", err)
	}

	records := make([]models.AwardRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, recordFromDocument(doc))
	}
	return records, nil
}

func (s *MongoStore) Insert(ctx context.Context, record models.AwardRecord) error {
	if _, err := s.collection.InsertOne(ctx, documentFromRecord(record)); err != nil {
		return writeFailed("MongoStore.Insert()", err)
	}
	return nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, key models.AwardKey, patch models.AwardPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, ErrEmptyPatch
	}
	set := bson.D{}
	if patch.Gender != nil {
		set = append(set, bson.E{Key: fieldGender, Value: *patch.Gender})
	}
	if patch.BornCountry != nil {
		set = append(set, bson.E{Key: fieldBornCountry, Value: *patch.BornCountry})
	}

	result, err := s.collection.UpdateOne(ctx, keyFilter(key), bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, writeFailed("MongoStore.UpdateOne()", err)
	}
	return result.MatchedCount, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, key models.AwardKey) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return 0, writeFailed("MongoStore.DeleteOne()", err)
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return unavailable("MongoStore.Ping()", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func keyFilter(key models.AwardKey) bson.D {
	return bson.D{
		{Key: fieldYear, Value: key.Year},
		{Key: fieldCategory, Value: key.Category},
	}
}

func documentFromRecord(r models.AwardRecord) bson.D {
	doc := bson.D{}
	if year, ok := r.Year.Int(); ok {
		doc = append(doc, bson.E{Key: fieldYear, Value: year})
	}
	doc = append(doc, bson.E{Key: fieldCategory, Value: r.Category})
	if r.Gender != nil {
		doc = append(doc, bson.E{Key: fieldGender, Value: *r.Gender})
	}
	if r.BornCountry != nil {
		doc = append(doc, bson.E{Key: fieldBornCountry, Value: *r.BornCountry})
	}
	if r.Born != nil {
		doc = append(doc, bson.E{Key: fieldBorn, Value: *r.Born})
	}
	if r.Age != nil {
		doc = append(doc, bson.E{Key: fieldAge, Value: *r.Age})
	}
	return doc
}

// recordFromDocument keeps whatever the collection holds. Fields written by
// other tools with unexpected types are treated as absent, except year which
// goes through numeric coercion.
func recordFromDocument(doc bson.M) models.AwardRecord {
	r := models.AwardRecord{
		Year: models.ParseYear(doc[fieldYear]),
	}
	switch id := doc["_id"].(type) {
	case bson.ObjectID:
		r.ID = id.Hex()
	case nil:
	default:
		r.ID = fmt.Sprint(id)
	}
	if s, ok := doc[fieldCategory].(string); ok {
		r.Category = s
	}
	if s, ok := doc[fieldGender].(string); ok {
		r.Gender = &s
	}
	if s, ok := doc[fieldBornCountry].(string); ok {
		r.BornCountry = &s
	}
	switch born := doc[fieldBorn].(type) {
	case bson.DateTime:
		t := born.Time().UTC()
		r.Born = &t
	case time.Time:
		t := born.UTC()
		r.Born = &t
	}
	if age, ok := intValue(doc[fieldAge]); ok {
		r.Age = &age
	}
	return r
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
