package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

const startupsCollection = "startups"

type StartupRepository struct {
	col *mongo.Collection
}

func NewStartupRepository(db *mongo.Database) *StartupRepository {
	return &StartupRepository{col: db.Collection(startupsCollection)}
}

func (r *StartupRepository) Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StartupRepository) FindByID(ctx context.Context, id string) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Startup
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StartupRepository) List(ctx context.Context, filter ports.StartupFilter) ([]*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.FounderID != "" {
		query["founder_id"] = filter.FounderID
	}
	if filter.Domain != "" {
		query["domain"] = filter.Domain
	}
	if filter.Stage != "" {
		query["stage"] = filter.Stage
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var startups []*domain.Startup
	if err := cur.All(ctx, &startups); err != nil {
		return nil, err
	}
	return startups, nil
}

func (r *StartupRepository) Update(ctx context.Context, s *domain.Startup) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrStartupNotFound
	}
	return nil
}

func (r *StartupRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrStartupNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the startups collection.
func (r *StartupRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "founder_id", Value: 1}}},
		{Keys: bson.D{{Key: "domain", Value: 1}}},
		{Keys: bson.D{{Key: "stage", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
