package auth

import (
	"context"

	"KecPortal/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(client *config.MongoDBClient) *AccountRepository {
	return &AccountRepository{collection: client.GetCollection("users")}
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*Account, error) {
	return r.findOne(ctx, bson.M{"username": username, "role": role})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*Account, error) {
	var account Account
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *Account) error {
	_, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *AccountRepository) All(ctx context.Context) ([]Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteByID is idempotent: an unknown or malformed id deletes nothing
// and reports no error.
func (r *AccountRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
