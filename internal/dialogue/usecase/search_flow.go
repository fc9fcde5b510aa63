package usecase

import (
	"context"
	"fmt"
	"strings"

	"kazileo/internal/model"
	"kazileo/internal/provider"
)

const pageSize = 3

// searchDomain is one instance of the generic search flow: jobs, training,
// mentorship and business all run the same machine with different copy.
type searchDomain struct {
	menu       model.Menu
	label      string // plural noun for error copy
	prompt     string // first-entry question
	confirmFmt string // reuse saved interest? (with interest)
	newPrompt  string // after declining the saved interest
	savedFmt   string // new interest saved (with interest)
	reuseFmt   string // results header on reuse (with interest)
}

var searchDomains = map[model.Menu]searchDomain{
	model.MenuJobs: {
		menu:       model.MenuJobs,
		label:      "jobs",
		prompt:     "🔎 Which type of job are you interested in? (e.g., Software Developer, Accountant)",
		confirmFmt: "I remember you were interested in *%s* jobs. Shall I search for those again? (yes/no)",
		newPrompt:  "No problem. What new job role are you looking for?",
		savedFmt:   "Great! I've saved your interest as *%s*.\n\nHere are the first results:\n",
		reuseFmt:   "Here are the latest jobs for *%s*:\n\n",
	},
	model.MenuTraining: {
		menu:       model.MenuTraining,
		label:      "trainings",
		prompt:     "📚 Which training module are you interested in? (e.g., Digital Skills, Marketing)",
		confirmFmt: "I remember you were interested in *%s* training. Shall I search for those again? (yes/no)",
		newPrompt:  "No problem. What new training are you looking for?",
		savedFmt:   "Perfect ✅ I'll guide you through *%s*.\n\nHere are the first results:\n",
		reuseFmt:   "Here are the latest trainings for *%s*:\n\n",
	},
	model.MenuMentorship: {
		menu:       model.MenuMentorship,
		label:      "mentors",
		prompt:     "🤝 What type of mentorship are you looking for? (e.g., Tech, Business)",
		confirmFmt: "🤝 Last time you were interested in *%s* mentorship. Shall I bring those up again? (yes/no)",
		newPrompt:  "No problem. What new mentorship are you looking for?",
		savedFmt:   "Nice ✅ I'll connect you with *%s* resources.\n\nHere are the first results:\n",
		reuseFmt:   "Here 👇 are the latest mentors for *%s*:\n\n",
	},
	model.MenuBusiness: {
		menu:       model.MenuBusiness,
		label:      "resources",
		prompt:     "💡 Which area interests you? (Freelancing, Agribusiness, E-commerce, Crafts, Digital Services)",
		confirmFmt: "💡 Last time you were exploring *%s*. Are you still interested in it? (yes/no)",
		newPrompt:  "Okay, what new area are you interested in?",
		savedFmt:   "Awesome ✅ I'll show you resources for *%s*.\n\nHere are the first results:\n",
		reuseFmt:   "Here 👇 are the latest resources for *%s*:\n\n",
	},
}

func domainFor(menu model.Menu) searchDomain {
	return searchDomains[menu]
}

func (uc *implUseCase) providerFor(menu model.Menu) provider.Provider {
	switch menu {
	case model.MenuTraining:
		return uc.training
	case model.MenuMentorship:
		return uc.mentors
	case model.MenuBusiness:
		return uc.business
	default:
		return uc.jobs
	}
}

// interestOf returns the long-term interest slot for a search menu.
func interestOf(sess *model.UserSession, menu model.Menu) *string {
	switch menu {
	case model.MenuTraining:
		return &sess.TrainingInterest
	case model.MenuMentorship:
		return &sess.MentorshipInterest
	case model.MenuBusiness:
		return &sess.BusinessInterest
	default:
		return &sess.JobInterest
	}
}

func (uc *implUseCase) enterSearch(sess *model.UserSession, d searchDomain) []string {
	sess.CurrentMenu = d.menu
	sess.Data = model.SessionData{}

	if interest := *interestOf(sess, d.menu); interest != "" {
		sess.Data.Awaiting = model.AwaitingReuseConfirm
		return []string{fmt.Sprintf(d.confirmFmt, interest)}
	}
	sess.Data.Awaiting = model.AwaitingQuery
	return []string{d.prompt}
}

func (uc *implUseCase) handleSearch(ctx context.Context, sess *model.UserSession, d searchDomain, t, text string) []string {
	switch sess.Data.Awaiting {
	case model.AwaitingReuseConfirm:
		switch {
		case isAffirmative(t):
			interest := *interestOf(sess, d.menu)
			return uc.runSearch(ctx, sess, d, interest, fmt.Sprintf(d.reuseFmt, interest))
		case isNegative(t):
			sess.Data.Awaiting = model.AwaitingQuery
			return []string{d.newPrompt}
		default:
			return []string{yesNoReply}
		}

	case model.AwaitingQuery:
		if isNumeric(t) {
			return []string{"Numbers are for the main menu. Please describe what you're looking for in words, or type 'menu' to go back."}
		}
		return uc.runSearch(ctx, sess, d, text, "")

	case model.AwaitingMore:
		if t == "more" {
			reply := uc.nextPage(sess, "Here are more results:\n\n")
			return []string{reply}
		}
	}

	return []string{fallbackReply, mainMenu}
}

// runSearch queries the domain's provider and shows the first page. On
// success the interest is saved and the full result set is snapshotted so
// 'more' pages exactly once through what this search returned.
func (uc *implUseCase) runSearch(ctx context.Context, sess *model.UserSession, d searchDomain, query, header string) []string {
	results, err := uc.providerFor(d.menu).Search(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "dialogue.runSearch %s %q: %v", d.menu, query, err)
		sess.ResetTransient()
		return []string{fmt.Sprintf("Sorry, I'm having trouble reaching the %s catalogue right now. Please try again in a moment.", d.label), mainMenu}
	}
	if len(results) == 0 {
		sess.Data.Awaiting = model.AwaitingQuery
		return []string{fmt.Sprintf("Sorry, I couldn't find %s for '%s'. Please try another search.", d.label, query)}
	}

	*interestOf(sess, d.menu) = query
	sess.Data.Results = results
	sess.Data.NextOffset = 0
	if header == "" {
		header = fmt.Sprintf(d.savedFmt, query)
	}
	return []string{uc.nextPage(sess, header)}
}

// nextPage emits the next slice of the snapshotted results and advances the
// cursor, so repeated 'more' never reshows an item. Once the last page is out
// the flow is over and the session returns to the main menu.
func (uc *implUseCase) nextPage(sess *model.UserSession, header string) string {
	results := sess.Data.Results
	start := sess.Data.NextOffset
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}

	reply := header + strings.Join(results[start:end], "\n")
	if end < len(results) {
		sess.Data.NextOffset = end
		sess.Data.Awaiting = model.AwaitingMore
		reply += "\n\nType 'more' for the next set."
	} else {
		if start > 0 {
			reply += "\n\nThat's all for now!"
		}
		sess.ResetTransient()
	}
	reply += "\n\nType 'menu' to return to the main menu."
	return reply
}

func isNumeric(t string) bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
