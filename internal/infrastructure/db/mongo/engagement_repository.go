package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// Repositories for the simple timestamped engagement records. Each is a
// thin collection wrapper with the same insert/find/delete shape.

const (
	meetingsCollection = "meetings"
	messagesCollection = "messages"
	ratingsCollection  = "ratings"
	commentsCollection = "comments"
)

// findAll runs a sorted query and decodes the cursor into out (a pointer to
// a slice).
func findAll(ctx context.Context, col *mongo.Collection, query bson.M, sort bson.D, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Meetings ---

type MeetingRepository struct {
	col *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{col: db.Collection(meetingsCollection)}
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id string) (*domain.Meeting, error) {
	var m domain.Meeting
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MeetingRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	query := bson.M{"$or": bson.A{
		bson.M{"organizer_id": userID},
		bson.M{"attendee_id": userID},
	}}
	if err := findAll(ctx, r.col, query, bson.D{{Key: "scheduled_at", Value: 1}}, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// --- Messages ---

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(messagesCollection)}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	var m domain.Message
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Conversation(ctx context.Context, userA, userB string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := bson.M{"$or": bson.A{
		bson.M{"sender_id": userA, "recipient_id": userB},
		bson.M{"sender_id": userB, "recipient_id": userA},
	}}
	if err := findAll(ctx, r.col, query, bson.D{{Key: "created_at", Value: 1}}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// --- Ratings ---

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection(ratingsCollection)}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	rating.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *RatingRepository) FindByID(ctx context.Context, id string) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rating); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListBySubject(ctx context.Context, subjectID string) ([]*domain.Rating, error) {
	var ratings []*domain.Rating
	if err := findAll(ctx, r.col, bson.M{"subject_id": subjectID}, bson.D{{Key: "created_at", Value: -1}}, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// --- Comments ---

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(commentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByStartup(ctx context.Context, startupID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := findAll(ctx, r.col, bson.M{"startup_id": startupID}, bson.D{{Key: "created_at", Value: 1}}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
