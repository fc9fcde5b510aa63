package usecase

import (
	"context"
	"strings"

	"kazileo/internal/model"
)

// route dispatches one message. Universal commands win over everything, a
// pending offer is resolved next, then the current menu's flow, then main
// menu selection.
func (uc *implUseCase) route(ctx context.Context, sess *model.UserSession, raw string) []string {
	text := strings.TrimSpace(raw)
	t := strings.ToLower(text)

	switch t {
	case "hi", "hello", "start", "menu":
		sess.ResetTransient()
		name := sess.DisplayName
		if name == "" {
			name = "there"
		}
		return []string{uc.pick(returningGreetings(name)), mainMenu}
	case "0":
		sess.ResetTransient()
		return []string{resetReply}
	}

	if isShengGreeting(t) && sess.CurrentMenu == model.MenuMain && sess.Data.Awaiting == model.AwaitingNone && sess.Data.Offer == nil {
		return []string{uc.pick(shengGreetingReplies), mainMenu}
	}

	if sess.Data.Offer != nil {
		return uc.resolveOffer(ctx, sess, t)
	}

	if sess.CurrentMenu != model.MenuMain {
		return uc.continueFlow(ctx, sess, t, text)
	}

	if menu, ok := menuSelection(t); ok {
		return uc.enterMenu(ctx, sess, menu)
	}
	if menu, ok := menuKeyword(t); ok {
		return uc.enterMenu(ctx, sess, menu)
	}

	return []string{fallbackReply, mainMenu}
}

func (uc *implUseCase) continueFlow(ctx context.Context, sess *model.UserSession, t, text string) []string {
	switch sess.CurrentMenu {
	case model.MenuJobs, model.MenuTraining, model.MenuMentorship, model.MenuBusiness:
		return uc.handleSearch(ctx, sess, domainFor(sess.CurrentMenu), t, text)
	case model.MenuCV:
		return uc.handleQA(ctx, sess, cvScript, t, text)
	case model.MenuCoverLetter:
		return uc.handleQA(ctx, sess, coverLetterScript, t, text)
	case model.MenuFeedback:
		return uc.handleQA(ctx, sess, feedbackScript, t, text)
	case model.MenuInterview:
		return uc.handleInterview(sess, t, text)
	case model.MenuCVOptimizer, model.MenuSkillsGap:
		return uc.handleAI(ctx, sess, text)
	}

	// Unknown menu value means a corrupted session; recover to main.
	uc.l.Warnf(ctx, "dialogue.route unknown menu %q for %s, resetting", sess.CurrentMenu, sess.PhoneNumber)
	sess.ResetTransient()
	return []string{fallbackReply, mainMenu}
}

func (uc *implUseCase) enterMenu(ctx context.Context, sess *model.UserSession, menu model.Menu) []string {
	switch menu {
	case model.MenuJobs, model.MenuTraining, model.MenuMentorship, model.MenuBusiness:
		return uc.enterSearch(sess, domainFor(menu))
	case model.MenuCV:
		return uc.enterQA(ctx, sess, cvScript)
	case model.MenuCoverLetter:
		return uc.enterQA(ctx, sess, coverLetterScript)
	case model.MenuFeedback:
		return uc.enterQA(ctx, sess, feedbackScript)
	case model.MenuInterview:
		return uc.enterInterview(sess)
	case model.MenuCVOptimizer, model.MenuSkillsGap:
		return uc.enterAI(sess, menu)
	}
	return []string{fallbackReply, mainMenu}
}

// menuSelection maps main menu digits and a few word aliases to their flows.
func menuSelection(t string) (model.Menu, bool) {
	switch t {
	case "1", "jobs", "job", "kazi":
		return model.MenuJobs, true
	case "2", "training", "trainings", "mafunzo":
		return model.MenuTraining, true
	case "3", "mentor", "mentorship", "ushauri":
		return model.MenuMentorship, true
	case "4", "business", "biashara":
		return model.MenuBusiness, true
	case "5", "cv":
		return model.MenuCV, true
	case "6", "interview":
		return model.MenuInterview, true
	case "7", "cover letter":
		return model.MenuCoverLetter, true
	case "8", "optimize":
		return model.MenuCVOptimizer, true
	case "9", "skills gap":
		return model.MenuSkillsGap, true
	case "feedback":
		return model.MenuFeedback, true
	}
	return "", false
}

// menuKeywords route free text that mentions a feature to its flow, so
// "find me kazi" works as well as "1". Longer phrases are checked first so
// "skills gap" never lands on training.
var menuKeywords = []struct {
	keyword string
	menu    model.Menu
}{
	{"skills gap", model.MenuSkillsGap},
	{"cover letter", model.MenuCoverLetter},
	{"interview", model.MenuInterview},
	{"feedback", model.MenuFeedback},
	{"mentor", model.MenuMentorship},
	{"ushauri", model.MenuMentorship},
	{"business", model.MenuBusiness},
	{"biashara", model.MenuBusiness},
	{"training", model.MenuTraining},
	{"mafunzo", model.MenuTraining},
	{"skill", model.MenuTraining},
	{"job", model.MenuJobs},
	{"kazi", model.MenuJobs},
}

// menuKeyword scans free text at the main menu for a domain keyword.
func menuKeyword(t string) (model.Menu, bool) {
	for _, k := range menuKeywords {
		if strings.Contains(t, k.keyword) {
			return k.menu, true
		}
	}
	for _, word := range strings.Fields(t) {
		if word == "cv" {
			return model.MenuCV, true
		}
	}
	return "", false
}

func isShengGreeting(t string) bool {
	switch t {
	case "sasa", "niaje", "mambo", "vipi":
		return true
	}
	return false
}

func isAffirmative(t string) bool {
	switch t {
	case "yes", "y", "yeah", "yep", "ndio", "correct":
		return true
	}
	return false
}

func isNegative(t string) bool {
	switch t {
	case "no", "n", "nope", "hapana", "change":
		return true
	}
	return false
}
