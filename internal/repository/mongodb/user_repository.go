package mongodb

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		coll: db.database.Collection(usersCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDocument{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return errors.ErrUserExists
	}
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("insert user: %w", err))
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id.Hex()
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("find user: %w", err))
	}

	return doc.toDomain(), nil
}
