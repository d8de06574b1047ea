package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const snapshotCollection = "dashboard_snapshots"

// ErrNoSnapshot is returned when the archive is empty.
var ErrNoSnapshot = errors.New("no dashboard snapshot stored")

// SnapshotRepository archives dashboard snapshots.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error
	LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error)
}

// MongoDBRepository implements SnapshotRepository for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository connects and pings the server.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return newRepository(client, dbName), nil
}

func newRepository(client *mongo.Client, dbName string) *MongoDBRepository {
	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: snapshotCollection,
	}
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SaveSnapshot inserts a snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error {
	if _, err := r.collection().InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert dashboard snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot by taken_at.
func (r *MongoDBRepository) LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error) {
	var snapshot models.DashboardSnapshot

	opts := options.FindOne().SetSort(bson.D{{Key: "taken_at", Value: -1}})
	err := r.collection().FindOne(ctx, bson.D{}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DashboardSnapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	return snapshot, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
