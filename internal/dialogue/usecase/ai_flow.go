package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"kazileo/internal/model"
)

const optimizeSystemPrompt = "You are KaziLeo, a friendly AI career coach from Kenya. Your task is to help a user optimize their CV for a specific job. " +
	"Analyze the CV and job description. Give 3-4 clear, actionable suggestions in a numbered list. " +
	"Focus on keywords, action verbs, and quantifiable achievements. Keep the tone positive and encouraging. " +
	"**Important: Your entire response must be under 3000 characters.**"

const rewriteSystemPrompt = "You are an expert CV writer. Your task is to rewrite the 'Professional Summary' and 'Work Experience' sections of a user's CV. " +
	"Use the original CV, the target job description, and the provided AI feedback to make the new sections more impactful and keyword-rich. " +
	"Your response MUST ONLY contain the rewritten 'Professional Summary' and 'Work Experience' sections under their respective headings. Do not add any extra conversation or commentary."

const skillsGapSystemPrompt = "You are KaziLeo, an expert AI career coach in Kenya. Your task is to perform a skills gap analysis. " +
	"Analyze the user's CV and the provided job description. " +
	"Your response MUST contain a friendly summary followed by a numbered list of the top 3-5 most important skills required by the job that are missing from the CV. " +
	"Format the missing skills in the list like this: `1. **Skill Name**`. " +
	"Conclude by encouraging them to learn these skills."

const aiUnavailableReply = "Sorry, I'm having trouble connecting to the AI service right now. Please try again later."

// skillPattern matches numbered or bulleted list entries with a bolded skill
// name, the format the skills gap prompt asks for.
var skillPattern = regexp.MustCompile(`[\d\*\-]+\.\s+\*\*(.*?)\*\*`)

func extractSkills(response string) []string {
	var skills []string
	for _, match := range skillPattern.FindAllStringSubmatch(response, -1) {
		if skill := strings.TrimSpace(match[1]); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func (uc *implUseCase) enterAI(sess *model.UserSession, menu model.Menu) []string {
	if !sess.HasCVIdentity() {
		return []string{"I can only work with a CV you've built with me. Type '5' to create your CV first, then come back!"}
	}
	sess.CurrentMenu = menu
	sess.Data = model.SessionData{Awaiting: model.AwaitingJobDescription}

	if menu == model.MenuSkillsGap {
		return []string{"Let's find your skill gaps. 🔍 Please paste the job description you're targeting."}
	}
	return []string{"Let's tailor your CV. 📄 Please paste the job description you want to optimize your CV for."}
}

func (uc *implUseCase) handleAI(ctx context.Context, sess *model.UserSession, text string) []string {
	if sess.Data.Awaiting != model.AwaitingJobDescription {
		sess.ResetTransient()
		return []string{fallbackReply, mainMenu}
	}
	if text == "" {
		return []string{"Please paste the job description as text."}
	}

	cvText := formatCV(sess.CVData)
	aiCtx, cancel := context.WithTimeout(ctx, uc.aiTimeout)
	defer cancel()

	if sess.CurrentMenu == model.MenuSkillsGap {
		userPrompt := fmt.Sprintf(
			"Here is my CV:\n---CV START---\n%s\n---CV END---\n\n"+
				"Here is the job description I am targeting:\n---JOB START---\n%s\n---JOB END---\n\n"+
				"Please perform a skills gap analysis and tell me what key skills I am missing for this role.",
			cvText, text)

		analysis, err := uc.gen.Generate(aiCtx, skillsGapSystemPrompt, userPrompt)
		if err != nil {
			uc.l.Errorf(ctx, "dialogue.handleAI skills gap: %v", err)
			return []string{aiUnavailableReply}
		}

		sess.ResetTransient()
		replies := []string{analysis}
		if skills := extractSkills(analysis); len(skills) > 0 {
			sess.Data.Offer = &model.Offer{
				Kind:    model.OfferTrainingPivot,
				Context: map[string]string{"skill": skills[0], "skills": strings.Join(skills, ", ")},
			}
			replies = append(replies, "Would you like to see training courses to help close these gaps? (yes/no)")
		}
		return replies
	}

	userPrompt := fmt.Sprintf(
		"My CV:\n%s\n\nJob Description:\n%s\n\nPlease give me 3-4 specific suggestions to improve my CV for this job.",
		cvText, text)

	feedback, err := uc.gen.Generate(aiCtx, optimizeSystemPrompt, userPrompt)
	if err != nil {
		uc.l.Errorf(ctx, "dialogue.handleAI optimize: %v", err)
		return []string{aiUnavailableReply}
	}

	sess.ResetTransient()
	sess.Data.Offer = &model.Offer{
		Kind:    model.OfferCVRewrite,
		Context: map[string]string{"job_description": text, "feedback": feedback},
	}
	return []string{
		"*--- AI-Powered Feedback ---*\n\n" + feedback,
		"Would you like me to rewrite your Professional Summary and Work Experience based on this feedback? (yes/no)",
	}
}

// resolveOffer settles a pending yes/no pivot. The offer is consumed on any
// definite answer; anything else re-prompts without consuming it.
func (uc *implUseCase) resolveOffer(ctx context.Context, sess *model.UserSession, t string) []string {
	offer := sess.Data.Offer

	switch {
	case isAffirmative(t):
		sess.Data.Offer = nil
	case isNegative(t):
		sess.Data.Offer = nil
		return []string{"No problem. Type 'menu' whenever you're ready for the next step."}
	default:
		return []string{yesNoReply}
	}

	switch offer.Kind {
	case model.OfferSimilarJobs:
		jobRole := strings.ToLower(offer.Context["job_role"])
		d := domainFor(model.MenuJobs)
		sess.CurrentMenu = model.MenuJobs
		return uc.runSearch(ctx, sess, d, jobRole, fmt.Sprintf("Here are the latest jobs for *%s*:\n\n", jobRole))

	case model.OfferTrainingPivot:
		skill := strings.ToLower(offer.Context["skill"])
		d := domainFor(model.MenuTraining)
		sess.CurrentMenu = model.MenuTraining
		return uc.runSearch(ctx, sess, d, skill, fmt.Sprintf("Here are trainings for *%s*:\n\n", skill))

	case model.OfferCVRewrite:
		aiCtx, cancel := context.WithTimeout(ctx, uc.aiTimeout)
		defer cancel()

		userPrompt := fmt.Sprintf(
			"Original CV:\n%s\n\nTarget Job Description:\n%s\n\nAI Feedback to apply:\n%s\n\n"+
				"Please rewrite the 'Professional Summary' and 'Work Experience' sections based on all the information above.",
			formatCV(sess.CVData), offer.Context["job_description"], offer.Context["feedback"])

		rewritten, err := uc.gen.Generate(aiCtx, rewriteSystemPrompt, userPrompt)
		if err != nil {
			uc.l.Errorf(ctx, "dialogue.resolveOffer rewrite: %v", err)
			sess.ResetTransient()
			return []string{aiUnavailableReply}
		}
		return []string{"*--- AI-Suggested Rewrite ---*\n\nHere are the updated sections for your CV:\n\n" + rewritten}
	}

	return []string{fallbackReply, mainMenu}
}
