package model

import "time"

// Menu identifies which flow handler owns the session's current dialogue.
type Menu string

const (
	MenuMain        Menu = "main"
	MenuJobs        Menu = "jobs"
	MenuTraining    Menu = "training"
	MenuMentorship  Menu = "mentorship"
	MenuBusiness    Menu = "business"
	MenuCV          Menu = "cv"
	MenuInterview   Menu = "interview"
	MenuCoverLetter Menu = "cover_letter"
	MenuCVOptimizer Menu = "cv_optimizer"
	MenuSkillsGap   Menu = "skills_gap"
	MenuFeedback    Menu = "feedback"
)

// Awaiting is the single transient dialogue state tag. Exactly one value is
// active at a time; the empty string means no pending question.
type Awaiting string

const (
	AwaitingNone            Awaiting = ""
	AwaitingQuery           Awaiting = "query"            // search flows: free-text interest
	AwaitingReuseConfirm    Awaiting = "reuse_confirm"    // search flows: reuse saved interest? (yes/no)
	AwaitingMore            Awaiting = "more"             // search flows: results shown, pages remain
	AwaitingAnswer          Awaiting = "answer"           // Q&A flows: answer for Field
	AwaitingFieldConfirm    Awaiting = "field_confirm"    // Q&A flows: confirm Field's value (yes/no)
	AwaitingJobDescription  Awaiting = "job_description"  // AI flows: target job description
	AwaitingInterviewRole   Awaiting = "interview_role"   // interview: target role
	AwaitingInterviewReuse  Awaiting = "interview_reuse"  // interview: reuse job interest? (yes/no)
	AwaitingInterviewAnswer Awaiting = "interview_answer" // interview: answer to current question
)

// OfferKind names a modal post-completion offer.
type OfferKind string

const (
	OfferSimilarJobs   OfferKind = "similar_jobs"
	OfferCVRewrite     OfferKind = "cv_rewrite"
	OfferTrainingPivot OfferKind = "training_pivot"
)

// Offer is a pending yes/no pivot proposed after a flow completed. While set
// it is resolved before any other routing.
type Offer struct {
	Kind    OfferKind         `json:"kind"`
	Context map[string]string `json:"context,omitempty"`
}

// SessionData is the transient per-dialogue state, persisted as one jsonb
// document. It is cleared wholesale on reset or timeout.
type SessionData struct {
	Awaiting   Awaiting `json:"awaiting,omitempty"`
	Field      string   `json:"field,omitempty"`       // Q&A field key under answer/confirm
	Results    []string `json:"results,omitempty"`     // search snapshot being paged
	NextOffset int      `json:"next_offset,omitempty"` // next page start into Results
	Offer      *Offer   `json:"offer,omitempty"`
}

// InterviewProgress is the interview simulator's feature buffer. Answers is
// kept parallel to Questions so the transcript preserves asked order.
type InterviewProgress struct {
	Role      string   `json:"role,omitempty"`
	Questions []string `json:"questions,omitempty"`
	Answers   []string `json:"answers,omitempty"`
	Index     int      `json:"index,omitempty"`
}

// UserSession is the durable per-user record. Interests and feature buffers
// are long-term state; CurrentMenu and Data are transient and reset on
// timeout or explicit reset.
type UserSession struct {
	PhoneNumber string
	DisplayName string

	JobInterest        string
	TrainingInterest   string
	MentorshipInterest string
	BusinessInterest   string

	CVData          map[string]string
	CoverLetterData map[string]string
	FeedbackData    map[string]string
	Interview       InterviewProgress

	CurrentMenu Menu
	Data        SessionData

	CreatedAt  time.Time
	LastActive time.Time
}

// ResetTransient returns the session to the main menu and drops all pending
// dialogue state. Interests and feature buffers are untouched.
func (s *UserSession) ResetTransient() {
	s.CurrentMenu = MenuMain
	s.Data = SessionData{}
}

// HasCVIdentity reports whether the CV buffer carries the identity fields
// required by the cover-letter and AI flows.
func (s *UserSession) HasCVIdentity() bool {
	if s.CVData == nil {
		return false
	}
	for _, key := range []string{"full_name", "email", "phone"} {
		if s.CVData[key] == "" {
			return false
		}
	}
	return true
}
