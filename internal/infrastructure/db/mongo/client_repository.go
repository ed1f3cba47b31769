package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

const collectionClients = "clients"

// ClientRepository persists clients and serves the day-grouped join
// aggregations used by the dashboard.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

// idFilter matches a record by its identifier. Hex object ids are matched
// as ObjectID; anything else falls back to a plain string match.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"email":     client.Email,
		"name":      client.Name,
		"contact":   client.Contact,
		"joined_at": client.JoinedAt,
		"address":   client.Address,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// FindAll returns every client in the collection, unfiltered.
func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	defer cur.Close(ctx)

	clients := []*domain.Client{}
	for cur.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			Email    string             `bson:"email"`
			Name     string             `bson:"name"`
			Contact  string             `bson:"contact"`
			JoinedAt time.Time          `bson:"joined_at"`
			Address  string             `bson:"address"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, &domain.Client{
			ID:       doc.ID.Hex(),
			Email:    doc.Email,
			Name:     doc.Name,
			Contact:  doc.Contact,
			JoinedAt: doc.JoinedAt,
			Address:  doc.Address,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}

// UpdateFields merge-patches the supplied fields onto the matching record.
// The field map is written through as-is; there is no whitelist.
func (r *ClientRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// DeleteByID removes at most one record. A non-matching id deletes nothing
// and is not an error.
func (r *ClientRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, idFilter(id)); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepository) CountJoinedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"joined_at": bson.M{"$gte": from, "$lte": to},
	})
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// DailyJoins groups clients joined in [from, to] by UTC calendar day,
// ascending. Days without joins produce no bucket.
func (r *ClientRepository) DailyJoins(ctx context.Context, from, to time.Time) ([]ports.DailyCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"joined_at": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d", "date": "$joined_at",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate daily joins: %w", err)
	}
	defer cur.Close(ctx)

	buckets := []ports.DailyCount{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode daily joins: %w", err)
	}
	return buckets, nil
}

// EnsureIndexes creates the join-date index backing the dashboard pipelines.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "joined_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
