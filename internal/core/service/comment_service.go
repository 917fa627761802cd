package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type CommentService struct {
	repo     ports.CommentRepository
	startups ports.StartupRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, startups ports.StartupRepository, users ports.UserRepository, log zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, startups: startups, users: users, log: log}
}

func (s *CommentService) Post(ctx context.Context, actor *domain.User, startupID, body string) (*domain.Comment, error) {
	if body == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.startups.FindByID(ctx, startupID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		AuthorID:  actor.ID,
		StartupID: startupID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, comment)
}

func (s *CommentService) ListByStartup(ctx context.Context, startupID string) ([]domain.CommentSummary, error) {
	if _, err := s.startups.FindByID(ctx, startupID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByStartup(ctx, startupID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CommentSummary, 0, len(comments))
	for _, c := range comments {
		summary := domain.CommentSummary{Comment: *c}
		if author, err := s.users.FindByID(ctx, c.AuthorID); err == nil {
			pub := author.Public()
			summary.Author = &pub
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *CommentService) Delete(ctx context.Context, actor *domain.User, id string) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(comment.AuthorID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
