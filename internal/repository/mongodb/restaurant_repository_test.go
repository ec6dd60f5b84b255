package mongodb_test

import (
	"context"
	"testing"

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

const ns = "test.restaurants"

func restaurantDoc(id primitive.ObjectID, name string, ratings bson.A) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: "desc"},
		{Key: "location", Value: bson.D{
			{Key: "type", Value: "Point"},
			{Key: "coordinates", Value: bson.A{-122.42, 37.77}},
		}},
		{Key: "ratings", Value: ratings},
		{Key: "radius", Value: 500.0},
		{Key: "minimumDistance", Value: 500.0},
		{Key: "maximumDistance", Value: 2000.0},
	}
}

func TestRestaurantRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		r := domain.NewRestaurant("Zuni", "Cafe", domain.NewPoint(-122.42, 37.77), nil)
		require.NoError(mt, repo.Create(ctx, r))

		_, err := primitive.ObjectIDFromHex(r.ID)
		assert.NoError(mt, err)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, restaurantDoc(id, "Zuni", bson.A{4.0, 5.0})))

		r, err := repo.GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), r.ID)
		assert.Equal(mt, "Zuni", r.Name)
		assert.Equal(mt, domain.NewPoint(-122.42, 37.77), r.Location)
		assert.Equal(mt, []float64{4, 5}, r.Ratings)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, errors.ErrRestaurantNotFound)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))

		_, err := repo.GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, errors.ErrRestaurantNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "not-an-object-id"), errors.ErrRestaurantNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			restaurantDoc(primitive.NewObjectID(), "A", bson.A{}),
			restaurantDoc(primitive.NewObjectID(), "B", bson.A{3.0}),
		))

		res, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, res, 2)
		assert.Equal(mt, []float64{}, res[0].Ratings)
	})

	mt.Run("find near decodes null average", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		near := primitive.NewObjectID()
		far := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: near},
				{Key: "name", Value: "Here"},
				{Key: "location", Value: bson.D{{Key: "type", Value: "Point"}, {Key: "coordinates", Value: bson.A{-122.42, 37.77}}}},
				{Key: "averageRating", Value: nil},
				{Key: "numberOfRatings", Value: int32(0)},
				{Key: "distance", Value: 0.0},
			},
			bson.D{
				{Key: "_id", Value: far},
				{Key: "name", Value: "There"},
				{Key: "location", Value: bson.D{{Key: "type", Value: "Point"}, {Key: "coordinates", Value: bson.A{-122.41, 37.77}}}},
				{Key: "averageRating", Value: 4.5},
				{Key: "numberOfRatings", Value: int32(2)},
				{Key: "distance", Value: 880.5},
			},
		))

		res, err := repo.FindNear(ctx, domain.ProximityQuery{Center: domain.NewPoint(-122.42, 37.77), MaxDistance: 1000})
		require.NoError(mt, err)
		require.Len(mt, res, 2)
		assert.Nil(mt, res[0].AverageRating)
		assert.Equal(mt, 0, res[0].NumberOfRatings)
		require.NotNil(mt, res[1].AverageRating)
		assert.Equal(mt, 4.5, *res[1].AverageRating)
		assert.Equal(mt, 2, res[1].NumberOfRatings)
		assert.Equal(mt, far.Hex(), res[1].ID)
	})

	mt.Run("find near store failure", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    291,
			Message: "unable to find index for $geoNear query",
			Name:    "NoQueryExecutionPlans",
		}))

		_, err := repo.FindNear(ctx, domain.ProximityQuery{Center: domain.NewPoint(0, 0), MaxDistance: 1})
		assert.ErrorIs(mt, err, errors.ErrDatabaseError)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: restaurantDoc(id, "Renamed", bson.A{})},
		))

		name := "Renamed"
		r, err := repo.Update(ctx, id.Hex(), domain.RestaurantUpdate{Name: &name})
		require.NoError(mt, err)
		assert.Equal(mt, "Renamed", r.Name)
	})

	mt.Run("update not found", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		name := "x"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), domain.RestaurantUpdate{Name: &name})
		assert.ErrorIs(mt, err, errors.ErrRestaurantNotFound)
	})

	mt.Run("delete twice", func(mt *mtest.T) {
		repo := mongodb.NewRestaurantRepository(mongodb.NewDBForTest(mt.DB, zap.NewNop()))
		id := primitive.NewObjectID().Hex()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, repo.Delete(ctx, id))
		assert.ErrorIs(mt, repo.Delete(ctx, id), errors.ErrRestaurantNotFound)
	})
}
