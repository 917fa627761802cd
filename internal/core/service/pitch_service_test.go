package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type pitchFixture struct {
	svc      *PitchService
	pitches  *memPitchRepo
	notifier *recordNotifier
	founder  *domain.User
	investor *domain.User
	startup  *domain.Startup
}

func newPitchFixture(t *testing.T) *pitchFixture {
	t.Helper()
	users := newMemUserRepo()
	startups := newMemStartupRepo()
	pitches := newMemPitchRepo()
	notifier := &recordNotifier{}

	founder := users.add(&domain.User{ID: "founder-1", Name: "Alice", Role: domain.RoleFounder})
	investor := users.add(&domain.User{ID: "investor-1", Name: "Bob", Role: domain.RoleInvestor})
	startup := startups.add(&domain.Startup{ID: "startup-1", FounderID: founder.ID, Name: "Acme", Stage: domain.StageMVP})

	return &pitchFixture{
		svc:      NewPitchService(pitches, startups, users, notifier, zerolog.Nop()),
		pitches:  pitches,
		notifier: notifier,
		founder:  founder,
		investor: investor,
		startup:  startup,
	}
}

func (f *pitchFixture) addPitch(status domain.PitchStatus) *domain.Pitch {
	return f.pitches.add(&domain.Pitch{
		ID:         "pitch-1",
		StartupID:  f.startup.ID,
		FounderID:  f.founder.ID,
		InvestorID: f.investor.ID,
		Status:     status,
	})
}

func TestPitchService_Create(t *testing.T) {
	f := newPitchFixture(t)

	pitch, err := f.svc.Create(context.Background(), f.founder, ports.CreatePitchInput{
		StartupID:  f.startup.ID,
		InvestorID: f.investor.ID,
		Message:    "take a look",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if pitch.Status != domain.PitchPending {
		t.Fatalf("expected new pitch to be pending, got %s", pitch.Status)
	}
	if len(f.notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(f.notifier.sent))
	}
	if got := f.notifier.sent[0]; got.RecipientID != f.investor.ID || got.Kind != domain.NotifyPitchReceived {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestPitchService_Create_NotOwner(t *testing.T) {
	f := newPitchFixture(t)
	other := &domain.User{ID: "founder-2", Role: domain.RoleFounder}

	_, err := f.svc.Create(context.Background(), other, ports.CreatePitchInput{
		StartupID:  f.startup.ID,
		InvestorID: f.investor.ID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPitchService_Create_TargetNotInvestor(t *testing.T) {
	f := newPitchFixture(t)

	// Pitching another founder is rejected.
	_, err := f.svc.Create(context.Background(), f.founder, ports.CreatePitchInput{
		StartupID:  f.startup.ID,
		InvestorID: f.founder.ID,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Pitching a nonexistent user is rejected.
	_, err = f.svc.Create(context.Background(), f.founder, ports.CreatePitchInput{
		StartupID:  f.startup.ID,
		InvestorID: "ghost",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPitchService_UpdateStatus_ValidTransition(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	pitch, err := f.svc.UpdateStatus(context.Background(), f.investor, "pitch-1", domain.PitchViewed)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if pitch.Status != domain.PitchViewed {
		t.Fatalf("expected viewed, got %s", pitch.Status)
	}
	if len(f.notifier.sent) != 1 || f.notifier.sent[0].RecipientID != f.founder.ID {
		t.Fatalf("expected founder to be notified, got %+v", f.notifier.sent)
	}
}

func TestPitchService_UpdateStatus_SkipViewed(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	// pending → interested is allowed without an intermediate viewed.
	pitch, err := f.svc.UpdateStatus(context.Background(), f.investor, "pitch-1", domain.PitchInterested)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if pitch.Status != domain.PitchInterested {
		t.Fatalf("expected interested, got %s", pitch.Status)
	}
}

func TestPitchService_UpdateStatus_InvalidTransition(t *testing.T) {
	f := newPitchFixture(t)

	cases := []struct {
		from domain.PitchStatus
		to   domain.PitchStatus
	}{
		{domain.PitchViewed, domain.PitchPending},
		{domain.PitchInterested, domain.PitchRejected},
		{domain.PitchRejected, domain.PitchInterested},
		{domain.PitchRejected, domain.PitchPending},
	}
	for _, tc := range cases {
		f.pitches.add(&domain.Pitch{
			ID:         "pitch-1",
			StartupID:  f.startup.ID,
			FounderID:  f.founder.ID,
			InvestorID: f.investor.ID,
			Status:     tc.from,
		})
		_, err := f.svc.UpdateStatus(context.Background(), f.investor, "pitch-1", tc.to)
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("%s → %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

// Only the target investor moves a pitch through the status machine. The
// founder, other investors, and admins are all rejected.
func TestPitchService_UpdateStatus_OnlyTargetInvestor(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	actors := []*domain.User{
		f.founder,
		{ID: "investor-2", Role: domain.RoleInvestor},
		{ID: "admin-1", Role: domain.RoleAdmin},
	}
	for _, actor := range actors {
		_, err := f.svc.UpdateStatus(context.Background(), actor, "pitch-1", domain.PitchViewed)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("actor %s: expected ErrForbidden, got %v", actor.ID, err)
		}
	}
}

func TestPitchService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	_, err := f.svc.UpdateStatus(context.Background(), f.investor, "pitch-1", "archived")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPitchService_Get_PartyOnly(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	for _, actor := range []*domain.User{f.founder, f.investor, {ID: "admin-1", Role: domain.RoleAdmin}} {
		if _, err := f.svc.Get(context.Background(), actor, "pitch-1"); err != nil {
			t.Fatalf("actor %s: Get returned error: %v", actor.ID, err)
		}
	}

	bystander := &domain.User{ID: "investor-2", Role: domain.RoleInvestor}
	if _, err := f.svc.Get(context.Background(), bystander, "pitch-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPitchService_Delete_OwnerOrAdmin(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	// The target investor does not own the pitch.
	if err := f.svc.Delete(context.Background(), f.investor, "pitch-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.founder, "pitch-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestPitchService_ListForActor(t *testing.T) {
	f := newPitchFixture(t)
	f.addPitch(domain.PitchPending)

	got, err := f.svc.ListForActor(context.Background(), f.investor)
	if err != nil {
		t.Fatalf("ListForActor returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pitch, got %d", len(got))
	}
	if got[0].Startup == nil || got[0].Startup.Name != "Acme" {
		t.Fatalf("expected startup to be embedded, got %+v", got[0].Startup)
	}
}
