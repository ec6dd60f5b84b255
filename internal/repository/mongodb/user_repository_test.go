package mongodb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/repository/mongodb"
)

func TestUserRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now()}
		require.NoError(mt, repo.Create(ctx, u))
		assert.NotEmpty(mt, u.ID)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: email_1",
		}))

		err := repo.Create(ctx, &domain.User{Email: "alice@example.com"})
		assert.ErrorIs(mt, err, errors.ErrUserExists)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice"},
			{Key: "email", Value: "alice@example.com"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		u, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "$2a$10$hash", u.PasswordHash)
	})

	mt.Run("unknown email", func(mt *mtest.T) {
		repo := mongodb.NewUserRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(mt, err, errors.ErrUserNotFound)
	})
}
