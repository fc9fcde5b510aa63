package session

import (
	"context"
	"fmt"
	"time"

	"kazileo/internal/model"
	"kazileo/pkg/log"
)

// Store is the session store: one durable record per user, expire-on-read
// reset of transient state, read-modify-write per message.
type Store struct {
	l       log.Logger
	repo    Repository
	timeout time.Duration

	now func() time.Time // test seam
}

// New creates a session Store over the given repository. timeout is the
// inactivity window after which transient dialogue state is discarded.
func New(l log.Logger, repo Repository, timeout time.Duration) *Store {
	return &Store{
		l:       l,
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
	}
}

// GetOrCreate looks up the session for phoneNumber, creating a fresh record
// for unseen users. For a known user whose last activity is older than the
// timeout, the transient state (current menu + session data) is reset before
// the session is returned; interests and feature buffers survive. The reset
// reaches the database with the turn's Persist, keeping one write per message.
func (s *Store) GetOrCreate(ctx context.Context, phoneNumber, displayName string) (model.UserSession, bool, error) {
	sess, err := s.repo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return model.UserSession{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if sess.PhoneNumber == "" {
		now := s.now()
		sess = model.UserSession{
			PhoneNumber:     phoneNumber,
			DisplayName:     displayName,
			CVData:          map[string]string{},
			CoverLetterData: map[string]string{},
			FeedbackData:    map[string]string{},
			CurrentMenu:     model.MenuMain,
			CreatedAt:       now,
			LastActive:      now,
		}
		if err := s.repo.Insert(ctx, sess); err != nil {
			return model.UserSession{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return sess, true, nil
	}

	if s.now().Sub(sess.LastActive) > s.timeout {
		s.l.Debugf(ctx, "session %s expired, resetting transient state", phoneNumber)
		sess.ResetTransient()
	}
	if displayName != "" {
		sess.DisplayName = displayName
	}
	return sess, false, nil
}

// Persist commits all mutated fields of the session as one unit and advances
// last_active to now.
func (s *Store) Persist(ctx context.Context, sess *model.UserSession) error {
	sess.LastActive = s.now()
	if err := s.repo.Update(ctx, *sess); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
