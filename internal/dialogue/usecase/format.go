package usecase

import (
	"fmt"
	"strings"

	"kazileo/internal/model"
)

func orNA(m map[string]string, key string) string {
	if m == nil || m[key] == "" {
		return "N/A"
	}
	return m[key]
}

// formatCV renders the collected answers as a plain-text, ATS-friendly CV.
func formatCV(cvData map[string]string) string {
	return strings.TrimSpace(fmt.Sprintf(`*--- YOUR ATS-FRIENDLY CV ---*

*Name:* %s
*Email:* %s
*Phone:* %s

*--- Professional Summary ---*
%s

*--- Work Experience ---*
%s

*--- Skills ---*
%s

*--- Education ---*
%s

*--------------------*
This CV is optimized for automated systems. You can now copy this text and use it in your applications!`,
		orNA(cvData, "full_name"), orNA(cvData, "email"), orNA(cvData, "phone"),
		orNA(cvData, "summary"), orNA(cvData, "experience"), orNA(cvData, "skills"), orNA(cvData, "education")))
}

// formatCoverLetter renders the letter draft, pulling the sender identity
// from the CV buffer. The closing line doubles as the similar-jobs offer.
func formatCoverLetter(clData, cvData map[string]string) string {
	fullName := orNA(cvData, "full_name")
	jobRole := orNA(clData, "job_role")
	companyName := orNA(clData, "company_name")

	return strings.TrimSpace(fmt.Sprintf(`*--- YOUR COVER LETTER DRAFT ---*

%s
%s
%s

Dear Hiring Manager,

I am writing to express my enthusiastic interest in the %s position at %s, which I discovered through [Platform where you saw the ad, e.g., BrighterMonday].

The job description highlights a need for proficiency in *%s*, a skill I have developed throughout my career. %s I am confident that my abilities align perfectly with the requirements of this role.

Furthermore, I have been following %s's work for some time. %s I am very eager to bring my dedication and skills to your team.

Thank you for considering my application. I have attached my CV for your review and look forward to discussing my qualifications further.

Sincerely,
%s

*--------------------*
You can now copy and paste this text! While you're applying, would you like me to show you other *%s* jobs? (yes/no)`,
		fullName, orNA(cvData, "phone"), orNA(cvData, "email"),
		jobRole, companyName,
		orNA(clData, "key_skill"), orNA(clData, "experience_match"),
		companyName, orNA(clData, "passion"),
		fullName, jobRole))
}

// formatInterviewSummary renders the practice transcript in asked order.
func formatInterviewSummary(iv model.InterviewProgress) string {
	var b strings.Builder
	b.WriteString("*--- Your Interview Practice Summary ---*\n\n")
	for i, question := range iv.Questions {
		if i >= len(iv.Answers) {
			break
		}
		fmt.Fprintf(&b, "*Question:* %s\n*Your Answer:* %s\n\n", question, iv.Answers[i])
	}
	b.WriteString("*--------------------*\n")
	b.WriteString("Well done! Reviewing your answers is a great way to prepare.")
	return b.String()
}

// formatFeedbackSummary renders a completed survey for the operator log.
func formatFeedbackSummary(feedback map[string]string) string {
	parts := []string{"--- New User Feedback ---"}
	if rating := feedback["rating"]; rating != "" {
		parts = append(parts, fmt.Sprintf("Rating: %s/5", rating))
	}
	if liked := feedback["what_liked"]; liked != "" {
		parts = append(parts, fmt.Sprintf("\nWhat they liked:\n- %s", liked))
	}
	if confusing := feedback["what_confusing"]; confusing != "" {
		parts = append(parts, fmt.Sprintf("\nWhat was confusing:\n- %s", confusing))
	}
	if requests := feedback["feature_requests"]; requests != "" {
		parts = append(parts, fmt.Sprintf("\nFeature requests:\n- %s", requests))
	}
	parts = append(parts, "\n-------------------------")
	return strings.Join(parts, "\n")
}
