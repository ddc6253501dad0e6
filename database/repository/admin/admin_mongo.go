package adminRepo

import (
	"context"
	"fmt"
	"time"

	"psrcustoms/database"
	"psrcustoms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of AdminRepository using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	coll := database.Collection("admins")
	repo := &MongoAdminRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an admin by its unique ID.
func (r *MongoAdminRepo) GetByID(id string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.AdminUser
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with id %s: %w", id, err)
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by its email address.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.AdminUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with email %s: %w", email, err)
	}
	return &admin, nil
}

// Create inserts a new admin document.
func (r *MongoAdminRepo) Create(admin *models.AdminUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
