package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
)

const collectionAdmins = "admins"

// AdminRepository persists administrator identities in the admins collection.
type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection(collectionAdmins)}
}

type adminDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	StoreLocation string             `bson:"store_location"`
	StoreID       string             `bson:"store_id"`
	PhoneNo       string             `bson:"phone_no"`
	PinCode       string             `bson:"pin_code"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d adminDoc) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		StoreLocation: d.StoreLocation,
		StoreID:       d.StoreID,
		PhoneNo:       d.PhoneNo,
		PinCode:       d.PinCode,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		CreatedAt:     d.CreatedAt,
	}
}

// Create inserts a new admin document and reads it back so the generated id
// is populated on the returned value.
func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := adminDoc{
		Name:          admin.Name,
		StoreLocation: admin.StoreLocation,
		StoreID:       admin.StoreID,
		PhoneNo:       admin.PhoneNo,
		PinCode:       admin.PinCode,
		Email:         admin.Email,
		PasswordHash:  admin.PasswordHash,
		CreatedAt:     admin.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	return r.FindByEmail(ctx, admin.Email)
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adminDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique indexes backing login and store identity.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "store_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
