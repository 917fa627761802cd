package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type MeetingService struct {
	repo     ports.MeetingRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewMeetingService(repo ports.MeetingRepository, users ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *MeetingService {
	return &MeetingService{repo: repo, users: users, notifier: notifier, log: log}
}

func (s *MeetingService) Schedule(ctx context.Context, actor *domain.User, in ports.ScheduleMeetingInput) (*domain.Meeting, error) {
	if in.Title == "" || in.ScheduledAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, in.AttendeeID); err != nil {
		return nil, err
	}

	meeting := &domain.Meeting{
		OrganizerID: actor.ID,
		AttendeeID:  in.AttendeeID,
		PitchID:     in.PitchID,
		Title:       in.Title,
		ScheduledAt: in.ScheduledAt.UTC(),
		MeetingLink: in.MeetingLink,
		Notes:       in.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, meeting)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientID: in.AttendeeID,
		ActorID:     actor.ID,
		Kind:        domain.NotifyMeeting,
		Text:        fmt.Sprintf("%s scheduled a meeting: %s", actor.Name, in.Title),
		PitchID:     in.PitchID,
	})

	s.log.Info().Str("meeting_id", created.ID).Str("organizer_id", actor.ID).Msg("meeting scheduled")
	return created, nil
}

func (s *MeetingService) ListForActor(ctx context.Context, actor *domain.User) ([]*domain.Meeting, error) {
	return s.repo.ListForUser(ctx, actor.ID)
}

func (s *MeetingService) Cancel(ctx context.Context, actor *domain.User, id string) error {
	meeting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(meeting.OrganizerID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
