package usecase

import (
	"context"
	"fmt"
	"strconv"

	"kazileo/internal/model"
)

// qaField is one scripted question keyed by the buffer slot it fills.
type qaField struct {
	key      string
	question string
}

// qaScript is one instance of the generic question-and-answer machine. The
// CV builder, cover letter builder and feedback survey all run it.
type qaScript struct {
	menu         model.Menu
	fields       []qaField
	confirm      bool // review-and-edit loop after each answer
	resetOnEnter bool // clear the buffer on entry so the flow restarts

	buffer       func(sess *model.UserSession) map[string]string
	precondition func(sess *model.UserSession) string                // non-empty reply blocks entry
	transform    func(field, t, text string) (value, errReply string) // optional validation
	finish       func(uc *implUseCase, ctx context.Context, sess *model.UserSession) []string
}

var cvScript = qaScript{
	menu:    model.MenuCV,
	confirm: true,
	fields: []qaField{
		{"full_name", "Of course. Let's build a CV that gets noticed. First, what is your full name?"},
		{"email", "Got it. What's a professional email address for employers to contact you? (e.g., jane.doe@email.com)"},
		{"phone", "Perfect. And your phone number?"},
		{"summary", "Next, let's write a powerful Professional Summary. Describe your main role and top achievement. " +
			"For example: 'Detail-oriented Accountant with 3 years of experience who saved a company KES 500,000 by optimizing budgets.'"},
		{"experience", "Now for your Work Experience. Please list your most recent job title, the company, and one key achievement with a number. " +
			"For example: 'Accountant, XYZ Corp (2022-2024) - Reduced monthly reporting errors by 15%.'\n\n(Type 'skip' if you have no formal work experience)"},
		{"skills", "Great. Now, list your most important technical and soft skills, separated by commas. Think about keywords from job descriptions. " +
			"For example: 'QuickBooks, Financial Reporting, Budgeting, Microsoft Excel, Communication, Problem-Solving'"},
		{"education", "Almost done! What is your highest qualification and where did you get it? " +
			"For example: 'Bachelor of Commerce in Finance, University of Nairobi'"},
	},
	buffer: func(sess *model.UserSession) map[string]string { return sess.CVData },
	transform: func(field, t, text string) (string, string) {
		if field == "experience" && t == "skip" {
			return "No formal work experience.", ""
		}
		return text, ""
	},
	finish: func(uc *implUseCase, ctx context.Context, sess *model.UserSession) []string {
		cv := formatCV(sess.CVData)
		sess.ResetTransient()
		return []string{cv}
	},
}

var coverLetterScript = qaScript{
	menu:    model.MenuCoverLetter,
	confirm: true,
	fields: []qaField{
		{"company_name", "Let's get started on your cover letter. What is the name of the company you are applying to?"},
		{"job_role", "And what is the exact job role you're applying for? (e.g., 'Junior Accountant')"},
		{"key_skill", "Great. Now, what is the #1 most important skill from the job description that you have? (e.g., 'Financial Reporting')"},
		{"experience_match", "Perfect. Briefly, how does your past experience match this key skill? (1-2 sentences). For example: 'In my previous role at XYZ, I was responsible for preparing monthly financial reports.'"},
		{"passion", "Finally, what excites you most about working for this specific company? (1 sentence). For example: 'I am inspired by your company's commitment to sustainable business practices.'"},
	},
	buffer: func(sess *model.UserSession) map[string]string { return sess.CoverLetterData },
	precondition: func(sess *model.UserSession) string {
		if sess.HasCVIdentity() {
			return ""
		}
		return "I need your CV details first so your cover letter carries your name and contacts. Type '5' to build your simple CV, then come back!"
	},
	finish: func(uc *implUseCase, ctx context.Context, sess *model.UserSession) []string {
		letter := formatCoverLetter(sess.CoverLetterData, sess.CVData)
		jobRole := sess.CoverLetterData["job_role"]
		sess.ResetTransient()
		sess.Data.Offer = &model.Offer{
			Kind:    model.OfferSimilarJobs,
			Context: map[string]string{"job_role": jobRole},
		}
		return []string{letter}
	},
}

var feedbackScript = qaScript{
	menu:         model.MenuFeedback,
	resetOnEnter: true,
	fields: []qaField{
		{"what_liked", "Thank you for helping us improve KaziLeo! 🙏\n\nFirst, what do you like most about the bot so far?"},
		{"what_confusing", "Great, thanks! Now, what has been the most confusing or difficult part of using the bot?"},
		{"feature_requests", "That's very helpful. Is there anything you wish KaziLeo could do that it doesn't do yet?"},
		{"rating", "Finally, on a scale of 1 to 5 (where 5 is 'very helpful'), how would you rate your experience with KaziLeo so far?"},
	},
	buffer: func(sess *model.UserSession) map[string]string { return sess.FeedbackData },
	transform: func(field, t, text string) (string, string) {
		if field != "rating" {
			return text, ""
		}
		rating, err := strconv.Atoi(t)
		if err != nil {
			return "", "That doesn't seem to be a valid number. Please enter a number from 1 to 5."
		}
		if rating < 1 || rating > 5 {
			return "", "Please enter a number between 1 and 5."
		}
		return strconv.Itoa(rating), ""
	},
	finish: func(uc *implUseCase, ctx context.Context, sess *model.UserSession) []string {
		uc.l.Infof(ctx, "feedback from %s: %s", sess.PhoneNumber, formatFeedbackSummary(sess.FeedbackData))
		sess.ResetTransient()
		return []string{"Thank you so much! Your feedback is incredibly valuable and will help us make KaziLeo better for everyone. 🙏"}
	},
}

func (uc *implUseCase) enterQA(ctx context.Context, sess *model.UserSession, script qaScript) []string {
	if script.precondition != nil {
		if blocked := script.precondition(sess); blocked != "" {
			return []string{blocked}
		}
	}
	sess.CurrentMenu = script.menu
	sess.Data = model.SessionData{}
	if script.resetOnEnter {
		buffer := script.buffer(sess)
		for key := range buffer {
			delete(buffer, key)
		}
	}
	return uc.askNext(ctx, sess, script)
}

func (uc *implUseCase) handleQA(ctx context.Context, sess *model.UserSession, script qaScript, t, text string) []string {
	buffer := script.buffer(sess)

	switch sess.Data.Awaiting {
	case model.AwaitingFieldConfirm:
		switch {
		case isAffirmative(t):
			sess.Data.Awaiting = model.AwaitingNone
			sess.Data.Field = ""
		case isNegative(t):
			delete(buffer, sess.Data.Field)
			sess.Data.Awaiting = model.AwaitingNone
			sess.Data.Field = ""
		default:
			return []string{fieldYesNoReply}
		}
		return uc.askNext(ctx, sess, script)

	case model.AwaitingAnswer:
		value := text
		if script.transform != nil {
			var errReply string
			value, errReply = script.transform(sess.Data.Field, t, text)
			if errReply != "" {
				return []string{errReply}
			}
		}
		buffer[sess.Data.Field] = value

		if script.confirm {
			sess.Data.Awaiting = model.AwaitingFieldConfirm
			return []string{fmt.Sprintf("I have this down as:\n\n_%s_\n\nIs that correct? (yes/no)", value)}
		}
		sess.Data.Awaiting = model.AwaitingNone
		sess.Data.Field = ""
		return uc.askNext(ctx, sess, script)
	}

	return uc.askNext(ctx, sess, script)
}

// askNext asks the first unanswered question, or finishes the script once
// every field is filled and confirmed.
func (uc *implUseCase) askNext(ctx context.Context, sess *model.UserSession, script qaScript) []string {
	buffer := script.buffer(sess)
	for _, field := range script.fields {
		if _, ok := buffer[field.key]; !ok {
			sess.Data.Awaiting = model.AwaitingAnswer
			sess.Data.Field = field.key
			return []string{field.question}
		}
	}
	return script.finish(uc, ctx, sess)
}
