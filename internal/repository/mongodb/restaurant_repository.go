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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type restaurantRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewRestaurantRepository(db *DB) repository.RestaurantRepository {
	return &restaurantRepository{
		coll:   db.database.Collection(restaurantsCollection),
		logger: db.logger,
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	res, err := r.coll.InsertOne(ctx, newRestaurantDocument(restaurant))
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("insert restaurant: %w", err))
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	restaurant.ID = id.Hex()

	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrRestaurantNotFound
	}

	var doc restaurantDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("find restaurant %s: %w", id, err))
	}

	return doc.toDomain(), nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	return r.find(ctx, bson.D{})
}

func (r *restaurantRepository) FindWithinSphere(
	ctx context.Context,
	center domain.GeoPoint,
	radiusMeters float64,
) ([]*domain.Restaurant, error) {
	return r.find(ctx, withinSphereFilter(center, radiusMeters))
}

func (r *restaurantRepository) find(ctx context.Context, filter bson.D) ([]*domain.Restaurant, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("find restaurants: %w", err))
	}

	var docs []restaurantDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("decode restaurants: %w", err))
	}

	restaurants := make([]*domain.Restaurant, 0, len(docs))
	for _, doc := range docs {
		restaurants = append(restaurants, doc.toDomain())
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindNear(
	ctx context.Context,
	query domain.ProximityQuery,
) ([]*domain.NearbyRestaurant, error) {
	pipeline := nearPipeline(query)

	if ce := r.logger.Check(zap.DebugLevel, "Running $geoNear aggregation"); ce != nil {
		ce.Write(zap.Any("pipeline", pipeline))
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("aggregate nearby restaurants: %w", err))
	}

	var docs []nearbyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("decode nearby restaurants: %w", err))
	}

	result := make([]*domain.NearbyRestaurant, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.toDomain())
	}
	return result, nil
}

func (r *restaurantRepository) Update(
	ctx context.Context,
	id string,
	update domain.RestaurantUpdate,
) (*domain.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrRestaurantNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc restaurantDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, updateDocument(update), opts).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("update restaurant %s: %w", id, err))
	}

	return doc.toDomain(), nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrRestaurantNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("delete restaurant %s: %w", id, err))
	}
	if res.DeletedCount == 0 {
		return errors.ErrRestaurantNotFound
	}

	return nil
}
