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

const collectionTransactions = "transactions"

// TransactionRepository persists transactions and serves the revenue
// aggregations used by the dashboard.
type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"store_id": tx.StoreID,
		"uid":      tx.UID,
		"amount":   tx.Amount,
		"date":     tx.Date,
		"detail":   tx.Detail,
		"category": string(tx.Category),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cur.Close(ctx)

	txs := []*domain.Transaction{}
	for cur.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			StoreID  string             `bson:"store_id"`
			UID      string             `bson:"uid"`
			Amount   float64            `bson:"amount"`
			Date     time.Time          `bson:"date"`
			Detail   string             `bson:"detail"`
			Category string             `bson:"category"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		txs = append(txs, &domain.Transaction{
			ID:       doc.ID.Hex(),
			StoreID:  doc.StoreID,
			UID:      doc.UID,
			Amount:   doc.Amount,
			Date:     doc.Date,
			Detail:   doc.Detail,
			Category: domain.Category(doc.Category),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (r *TransactionRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, idFilter(id)); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// RevenueTotal sums amount over transactions dated in [from, to]. An empty
// window yields 0.
func (r *TransactionRepository) RevenueTotal(ctx context.Context, from, to time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// DailyRevenue groups transactions dated in [from, to] by UTC calendar day,
// ascending, summing amount per day.
func (r *TransactionRepository) DailyRevenue(ctx context.Context, from, to time.Time) ([]ports.DailyAmount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d", "date": "$date",
			}},
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate daily revenue: %w", err)
	}
	defer cur.Close(ctx)

	buckets := []ports.DailyAmount{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode daily revenue: %w", err)
	}
	return buckets, nil
}

// EnsureIndexes creates the date indexes backing the dashboard pipelines.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "store_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
