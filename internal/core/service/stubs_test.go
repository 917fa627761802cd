package service

import (
	"context"
	"fmt"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *memUserRepo) add(u *domain.User) *domain.User {
	r.users[u.ID] = cloneUser(u)
	return u
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	// Reads outside the login path never expose the hash.
	clone := cloneUser(u)
	clone.PasswordHash = ""
	return clone, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := cloneUser(u)
		clone.PasswordHash = ""
		out = append(out, clone)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	hash := r.users[user.ID].PasswordHash
	clone := cloneUser(user)
	clone.PasswordHash = hash
	r.users[user.ID] = clone
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memStartupRepo struct {
	startups map[string]*domain.Startup
	nextID   int
}

func newMemStartupRepo() *memStartupRepo {
	return &memStartupRepo{startups: make(map[string]*domain.Startup)}
}

func (r *memStartupRepo) add(s *domain.Startup) *domain.Startup {
	r.startups[s.ID] = s
	return s
}

func (r *memStartupRepo) Create(_ context.Context, s *domain.Startup) (*domain.Startup, error) {
	r.nextID++
	s.ID = fmt.Sprintf("s%d", r.nextID)
	r.startups[s.ID] = s
	return s, nil
}

func (r *memStartupRepo) FindByID(_ context.Context, id string) (*domain.Startup, error) {
	s, ok := r.startups[id]
	if !ok {
		return nil, domain.ErrStartupNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memStartupRepo) List(_ context.Context, filter ports.StartupFilter) ([]*domain.Startup, error) {
	out := make([]*domain.Startup, 0, len(r.startups))
	for _, s := range r.startups {
		if filter.FounderID != "" && s.FounderID != filter.FounderID {
			continue
		}
		if filter.Domain != "" && s.Domain != filter.Domain {
			continue
		}
		if filter.Stage != "" && s.Stage != filter.Stage {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memStartupRepo) Update(_ context.Context, s *domain.Startup) error {
	if _, ok := r.startups[s.ID]; !ok {
		return domain.ErrStartupNotFound
	}
	clone := *s
	r.startups[s.ID] = &clone
	return nil
}

func (r *memStartupRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.startups[id]; !ok {
		return domain.ErrStartupNotFound
	}
	delete(r.startups, id)
	return nil
}

type memPitchRepo struct {
	pitches map[string]*domain.Pitch
	nextID  int
}

func newMemPitchRepo() *memPitchRepo {
	return &memPitchRepo{pitches: make(map[string]*domain.Pitch)}
}

func (r *memPitchRepo) add(p *domain.Pitch) *domain.Pitch {
	r.pitches[p.ID] = p
	return p
}

func (r *memPitchRepo) Create(_ context.Context, p *domain.Pitch) (*domain.Pitch, error) {
	r.nextID++
	p.ID = fmt.Sprintf("p%d", r.nextID)
	r.pitches[p.ID] = p
	return p, nil
}

func (r *memPitchRepo) FindByID(_ context.Context, id string) (*domain.Pitch, error) {
	p, ok := r.pitches[id]
	if !ok {
		return nil, domain.ErrPitchNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memPitchRepo) ListByStartup(_ context.Context, startupID string) ([]*domain.Pitch, error) {
	var out []*domain.Pitch
	for _, p := range r.pitches {
		if p.StartupID == startupID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memPitchRepo) ListForUser(_ context.Context, userID string) ([]*domain.Pitch, error) {
	var out []*domain.Pitch
	for _, p := range r.pitches {
		if p.FounderID == userID || p.InvestorID == userID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memPitchRepo) UpdateStatus(_ context.Context, id string, status domain.PitchStatus) error {
	p, ok := r.pitches[id]
	if !ok {
		return domain.ErrPitchNotFound
	}
	p.Status = status
	return nil
}

func (r *memPitchRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.pitches[id]; !ok {
		return domain.ErrPitchNotFound
	}
	delete(r.pitches, id)
	return nil
}

type memRatingRepo struct {
	ratings map[string]*domain.Rating
	nextID  int
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{ratings: make(map[string]*domain.Rating)}
}

func (r *memRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.nextID++
	rating.ID = fmt.Sprintf("r%d", r.nextID)
	r.ratings[rating.ID] = rating
	return rating, nil
}

func (r *memRatingRepo) FindByID(_ context.Context, id string) (*domain.Rating, error) {
	rating, ok := r.ratings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *rating
	return &clone, nil
}

func (r *memRatingRepo) ListBySubject(_ context.Context, subjectID string) ([]*domain.Rating, error) {
	var out []*domain.Rating
	for _, rating := range r.ratings {
		if rating.SubjectID == subjectID {
			clone := *rating
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memRatingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.ratings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.ratings, id)
	return nil
}

// recordNotifier captures notification inputs for assertions.
type recordNotifier struct {
	sent []ports.NotificationInput
}

func (n *recordNotifier) Notify(in ports.NotificationInput) {
	n.sent = append(n.sent, in)
}

// memThrottle is a LoginThrottle fake with a per-email counter.
type memThrottle struct {
	failures map[string]int
	limit    int
}

func newMemThrottle(limit int) *memThrottle {
	return &memThrottle{failures: make(map[string]int), limit: limit}
}

func (t *memThrottle) TooManyAttempts(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.limit, nil
}

func (t *memThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *memThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
