package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"kazileo/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepo struct {
	sessions map[string]model.UserSession
	getErr   error
	updErr   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]model.UserSession{}}
}

func (m *mockRepo) GetByPhone(ctx context.Context, phone string) (model.UserSession, error) {
	if m.getErr != nil {
		return model.UserSession{}, m.getErr
	}
	return m.sessions[phone], nil
}

func (m *mockRepo) Insert(ctx context.Context, sess model.UserSession) error {
	m.sessions[sess.PhoneNumber] = sess
	return nil
}

func (m *mockRepo) Update(ctx context.Context, sess model.UserSession) error {
	if m.updErr != nil {
		return m.updErr
	}
	m.sessions[sess.PhoneNumber] = sess
	return nil
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates New Session With Defaults", func(t *testing.T) {
		repo := newMockRepo()
		store := New(&mockLogger{}, repo, 5*time.Minute)
		store.now = func() time.Time { return base }

		sess, isNew, err := store.GetOrCreate(ctx, "254700000001", "Jane")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !isNew {
			t.Error("expected isNew for unseen phone number")
		}
		if sess.CurrentMenu != model.MenuMain {
			t.Errorf("expected main menu, got %s", sess.CurrentMenu)
		}
		if sess.CVData == nil || sess.CoverLetterData == nil {
			t.Error("feature buffers must be initialized")
		}
		if _, ok := repo.sessions["254700000001"]; !ok {
			t.Error("new session must be inserted")
		}
	})

	t.Run("Expiry Resets Transient State Only", func(t *testing.T) {
		repo := newMockRepo()
		repo.sessions["p1"] = model.UserSession{
			PhoneNumber: "p1",
			DisplayName: "Jane",
			JobInterest: "accountant",
			CVData:      map[string]string{"full_name": "Jane Doe"},
			CurrentMenu: model.MenuJobs,
			Data:        model.SessionData{Awaiting: model.AwaitingQuery},
			LastActive:  base.Add(-10 * time.Minute),
		}
		store := New(&mockLogger{}, repo, 5*time.Minute)
		store.now = func() time.Time { return base }

		sess, isNew, err := store.GetOrCreate(ctx, "p1", "Jane")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if isNew {
			t.Error("existing session must not be reported new")
		}
		if sess.CurrentMenu != model.MenuMain {
			t.Errorf("expired session must return to main menu, got %s", sess.CurrentMenu)
		}
		if sess.Data.Awaiting != model.AwaitingNone {
			t.Errorf("expired session must drop pending state, got %s", sess.Data.Awaiting)
		}
		if sess.JobInterest != "accountant" {
			t.Error("expiry must not clear long-term interests")
		}
		if sess.CVData["full_name"] != "Jane Doe" {
			t.Error("expiry must not clear feature buffers")
		}
	})

	t.Run("Fresh Session Keeps Transient State", func(t *testing.T) {
		repo := newMockRepo()
		repo.sessions["p1"] = model.UserSession{
			PhoneNumber: "p1",
			CurrentMenu: model.MenuJobs,
			Data:        model.SessionData{Awaiting: model.AwaitingQuery},
			LastActive:  base.Add(-2 * time.Minute),
		}
		store := New(&mockLogger{}, repo, 5*time.Minute)
		store.now = func() time.Time { return base }

		sess, _, err := store.GetOrCreate(ctx, "p1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.CurrentMenu != model.MenuJobs || sess.Data.Awaiting != model.AwaitingQuery {
			t.Error("recent session must keep menu and pending state")
		}
	})

	t.Run("Persist Advances LastActive", func(t *testing.T) {
		repo := newMockRepo()
		repo.sessions["p1"] = model.UserSession{PhoneNumber: "p1", LastActive: base.Add(-time.Minute)}
		store := New(&mockLogger{}, repo, 5*time.Minute)
		store.now = func() time.Time { return base }

		sess := repo.sessions["p1"]
		if err := store.Persist(ctx, &sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sess.LastActive.Equal(base) {
			t.Errorf("expected last active %v, got %v", base, sess.LastActive)
		}
		if !repo.sessions["p1"].LastActive.Equal(base) {
			t.Error("update must be written through the repository")
		}
	})

	t.Run("Store Unavailable Is Fatal", func(t *testing.T) {
		repo := newMockRepo()
		repo.getErr = errors.New("connection refused")
		store := New(&mockLogger{}, repo, 5*time.Minute)

		_, _, err := store.GetOrCreate(ctx, "p1", "")
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}
