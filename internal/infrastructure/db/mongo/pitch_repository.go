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
)

const pitchesCollection = "pitches"

type PitchRepository struct {
	col *mongo.Collection
}

func NewPitchRepository(db *mongo.Database) *PitchRepository {
	return &PitchRepository{col: db.Collection(pitchesCollection)}
}

func (r *PitchRepository) Create(ctx context.Context, p *domain.Pitch) (*domain.Pitch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PitchRepository) FindByID(ctx context.Context, id string) (*domain.Pitch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Pitch
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPitchNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PitchRepository) ListByStartup(ctx context.Context, startupID string) ([]*domain.Pitch, error) {
	return r.list(ctx, bson.M{"startup_id": startupID})
}

// ListForUser returns pitches where the user is either party.
func (r *PitchRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Pitch, error) {
	return r.list(ctx, bson.M{"$or": bson.A{
		bson.M{"founder_id": userID},
		bson.M{"investor_id": userID},
	}})
}

func (r *PitchRepository) list(ctx context.Context, query bson.M) ([]*domain.Pitch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pitches []*domain.Pitch
	if err := cur.All(ctx, &pitches); err != nil {
		return nil, err
	}
	return pitches, nil
}

func (r *PitchRepository) UpdateStatus(ctx context.Context, id string, status domain.PitchStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPitchNotFound
	}
	return nil
}

func (r *PitchRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPitchNotFound
	}
	return nil
}

// EnsureIndexes creates the party lookup indexes on the pitches collection.
func (r *PitchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "startup_id", Value: 1}}},
		{Keys: bson.D{{Key: "founder_id", Value: 1}}},
		{Keys: bson.D{{Key: "investor_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
