package usecase

import (
	"fmt"

	"kazileo/internal/model"
)

func (uc *implUseCase) enterInterview(sess *model.UserSession) []string {
	sess.CurrentMenu = model.MenuInterview
	sess.Data = model.SessionData{}
	sess.Interview = model.InterviewProgress{}

	if sess.JobInterest != "" {
		sess.Data.Awaiting = model.AwaitingInterviewReuse
		return []string{fmt.Sprintf("Shall we practice for a *%s* interview? (yes/no)", sess.JobInterest)}
	}
	sess.Data.Awaiting = model.AwaitingInterviewRole
	return []string{"🎤 Which job role would you like to practice for? (e.g., Accountant, Sales, Software Developer)"}
}

func (uc *implUseCase) handleInterview(sess *model.UserSession, t, text string) []string {
	switch sess.Data.Awaiting {
	case model.AwaitingInterviewReuse:
		switch {
		case isAffirmative(t):
			return uc.startInterview(sess, sess.JobInterest)
		case isNegative(t):
			sess.Data.Awaiting = model.AwaitingInterviewRole
			return []string{"No problem. Which role would you like to practice for?"}
		default:
			return []string{yesNoReply}
		}

	case model.AwaitingInterviewRole:
		if text == "" || isNumeric(t) {
			return []string{"Please tell me the role in words, e.g., 'Accountant' or 'Sales'."}
		}
		return uc.startInterview(sess, text)

	case model.AwaitingInterviewAnswer:
		iv := &sess.Interview
		iv.Answers = append(iv.Answers, text)
		iv.Index++

		if iv.Index < len(iv.Questions) {
			return []string{fmt.Sprintf("Good answer. Here is question %d of %d:\n\n_%s_",
				iv.Index+1, len(iv.Questions), iv.Questions[iv.Index])}
		}

		summary := formatInterviewSummary(*iv)
		sess.Interview = model.InterviewProgress{}
		sess.ResetTransient()
		return []string{summary}
	}

	// Broken state, restart cleanly.
	sess.ResetTransient()
	return []string{"Something went wrong with the simulation. Let's start over.", mainMenu}
}

func (uc *implUseCase) startInterview(sess *model.UserSession, role string) []string {
	questions := uc.questionsForRole(role)
	sess.Interview = model.InterviewProgress{
		Role:      role,
		Questions: questions,
	}
	sess.Data.Awaiting = model.AwaitingInterviewAnswer
	return []string{fmt.Sprintf("Great! Let's practice for a *%s* interview. We'll go through %d questions.\n\nHere's your first one:\n\n_%s_",
		role, len(questions), questions[0])}
}
