package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

const preferencesCollection = "investor_preferences"

// PreferenceRepository keys documents by investor id: one preference
// document per investor, replaced on every Set.
type PreferenceRepository struct {
	col *mongo.Collection
}

func NewPreferenceRepository(db *mongo.Database) *PreferenceRepository {
	return &PreferenceRepository{col: db.Collection(preferencesCollection)}
}

func (r *PreferenceRepository) Upsert(ctx context.Context, p *domain.InvestorPreference) (*domain.InvestorPreference, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = p.InvestorID
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PreferenceRepository) FindByInvestor(ctx context.Context, investorID string) (*domain.InvestorPreference, error) {
	var p domain.InvestorPreference
	if err := r.col.FindOne(ctx, bson.M{"_id": investorID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
