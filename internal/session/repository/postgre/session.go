package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"kazileo/internal/model"
)

const sessionColumns = `phone_number, display_name,
	job_interest, training_interest, mentorship_interest, business_interest,
	cv_data, cover_letter_data, feedback_data, interview, current_menu, session_data,
	created_at, last_active`

// GetByPhone fetches a session row by phone number.
// Returns zero-value session (PhoneNumber == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetByPhone(ctx context.Context, phoneNumber string) (model.UserSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_sessions WHERE phone_number = $1`, sessionColumns)

	var (
		sess            model.UserSession
		cvData          []byte
		coverLetterData []byte
		feedbackData    []byte
		interview       []byte
		sessionData     []byte
	)
	err := r.db.QueryRowContext(ctx, query, phoneNumber).Scan(
		&sess.PhoneNumber, &sess.DisplayName,
		&sess.JobInterest, &sess.TrainingInterest, &sess.MentorshipInterest, &sess.BusinessInterest,
		&cvData, &coverLetterData, &feedbackData, &interview, &sess.CurrentMenu, &sessionData,
		&sess.CreatedAt, &sess.LastActive,
	)
	if err == sql.ErrNoRows {
		return model.UserSession{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByPhone"), err)
		return model.UserSession{}, err
	}

	if err := r.unmarshalDocs(&sess, cvData, coverLetterData, feedbackData, interview, sessionData); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByPhone"), err)
		return model.UserSession{}, err
	}
	return sess, nil
}

// Insert creates a new session row.
func (r *implRepository) Insert(ctx context.Context, sess model.UserSession) error {
	query := fmt.Sprintf(`
		INSERT INTO user_sessions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`, sessionColumns)

	docs, err := r.marshalDocs(sess)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		sess.PhoneNumber, sess.DisplayName,
		sess.JobInterest, sess.TrainingInterest, sess.MentorshipInterest, sess.BusinessInterest,
		docs.cvData, docs.coverLetterData, docs.feedbackData, docs.interview, sess.CurrentMenu, docs.sessionData,
		sess.CreatedAt, sess.LastActive,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return err
	}
	return nil
}

// Update persists all mutated fields of an existing row as a single statement.
func (r *implRepository) Update(ctx context.Context, sess model.UserSession) error {
	const query = `
		UPDATE user_sessions
		SET display_name = $2,
			job_interest = $3, training_interest = $4, mentorship_interest = $5, business_interest = $6,
			cv_data = $7, cover_letter_data = $8, feedback_data = $9, interview = $10,
			current_menu = $11, session_data = $12, last_active = $13
		WHERE phone_number = $1`

	docs, err := r.marshalDocs(sess)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		sess.PhoneNumber, sess.DisplayName,
		sess.JobInterest, sess.TrainingInterest, sess.MentorshipInterest, sess.BusinessInterest,
		docs.cvData, docs.coverLetterData, docs.feedbackData, docs.interview,
		sess.CurrentMenu, docs.sessionData, sess.LastActive,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return err
	}
	return nil
}

type sessionDocs struct {
	cvData          []byte
	coverLetterData []byte
	feedbackData    []byte
	interview       []byte
	sessionData     []byte
}

func (r *implRepository) marshalDocs(sess model.UserSession) (sessionDocs, error) {
	var docs sessionDocs
	var err error

	if docs.cvData, err = json.Marshal(sess.CVData); err != nil {
		return sessionDocs{}, fmt.Errorf("marshal cv_data: %w", err)
	}
	if docs.coverLetterData, err = json.Marshal(sess.CoverLetterData); err != nil {
		return sessionDocs{}, fmt.Errorf("marshal cover_letter_data: %w", err)
	}
	if docs.feedbackData, err = json.Marshal(sess.FeedbackData); err != nil {
		return sessionDocs{}, fmt.Errorf("marshal feedback_data: %w", err)
	}
	if docs.interview, err = json.Marshal(sess.Interview); err != nil {
		return sessionDocs{}, fmt.Errorf("marshal interview: %w", err)
	}
	if docs.sessionData, err = json.Marshal(sess.Data); err != nil {
		return sessionDocs{}, fmt.Errorf("marshal session_data: %w", err)
	}
	return docs, nil
}

func (r *implRepository) unmarshalDocs(sess *model.UserSession, cvData, coverLetterData, feedbackData, interview, sessionData []byte) error {
	if err := json.Unmarshal(cvData, &sess.CVData); err != nil {
		return fmt.Errorf("unmarshal cv_data: %w", err)
	}
	if err := json.Unmarshal(coverLetterData, &sess.CoverLetterData); err != nil {
		return fmt.Errorf("unmarshal cover_letter_data: %w", err)
	}
	if err := json.Unmarshal(feedbackData, &sess.FeedbackData); err != nil {
		return fmt.Errorf("unmarshal feedback_data: %w", err)
	}
	if err := json.Unmarshal(interview, &sess.Interview); err != nil {
		return fmt.Errorf("unmarshal interview: %w", err)
	}
	if err := json.Unmarshal(sessionData, &sess.Data); err != nil {
		return fmt.Errorf("unmarshal session_data: %w", err)
	}
	return nil
}
