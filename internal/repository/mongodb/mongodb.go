package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/restaurant-directory/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	restaurantsCollection = "restaurants"
	usersCollection       = "users"
)

// DB - долгоживущее подключение к MongoDB, создаётся в main и передаётся в репозитории
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *zap.Logger
}

func New(cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("MongoDB connected", zap.String("database", cfg.Database))

	return db, nil
}

// EnsureIndexes создаёт 2dsphere индекс по location и уникальный индекс по email
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(restaurantsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create 2dsphere index: %w", err)
	}

	_, err = db.database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}

	return nil
}

func (db *DB) Close(ctx context.Context) error {
	db.logger.Info("Closing MongoDB connection")
	return db.client.Disconnect(ctx)
}

func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.client.Ping(ctx, readpref.Primary())
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(database *mongo.Database, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		client:   database.Client(),
		database: database,
		logger:   logger,
	}
}

// DropDatabaseForTest removes the database used by an integration test run
func DropDatabaseForTest(ctx context.Context, db *DB) error {
	return db.database.Drop(ctx)
}
