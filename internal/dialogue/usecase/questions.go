package usecase

import "strings"

const interviewLength = 5

// generalInterviewQuestions are asked regardless of role.
var generalInterviewQuestions = []string{
	"Tell me about yourself.",
	"What are your biggest strengths?",
	"What is your biggest weakness?",
	"Where do you see yourself in 5 years?",
	"Why do you want to work for this company?",
}

// roleInterviewQuestions are added when the role mentions the category.
var roleInterviewQuestions = map[string][]string{
	"accountant": {
		"Can you describe your experience with financial reporting software like QuickBooks or SAP?",
		"How do you ensure accuracy and attention to detail in your work?",
		"Tell me about a time you identified a significant cost-saving opportunity.",
	},
	"sales": {
		"How do you handle rejection from a potential customer?",
		"Describe your process for qualifying a new lead.",
		"Tell me about your most successful sale and what made it a success.",
	},
	"software developer": {
		"Can you describe a challenging technical problem you solved on a recent project?",
		"How do you stay up-to-date with new technologies and programming languages?",
		"Explain a complex project you worked on in simple terms.",
	},
}

// questionsForRole builds the question set: the general pool plus the first
// category the role mentions, shuffled, capped at interviewLength.
func (uc *implUseCase) questionsForRole(role string) []string {
	roleKey := strings.ToLower(role)
	questions := append([]string{}, generalInterviewQuestions...)

	for key, pool := range roleInterviewQuestions {
		if strings.Contains(roleKey, key) {
			questions = append(questions, pool...)
			break
		}
	}

	uc.shuffle(questions)
	if len(questions) > interviewLength {
		questions = questions[:interviewLength]
	}
	return questions
}
