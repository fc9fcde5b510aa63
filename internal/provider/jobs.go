package provider

import (
	"context"
	"strings"
)

// jobCategories is a curated stand-in for a live job board API. Each key is a
// searchable category; listings are ready-to-send strings.
var jobCategories = map[string][]string{
	"software developer": {
		"Backend Developer (Supabase & API) at TechCorp KE (Remote)",
		"Junior Python Developer at FinInnovate (Nairobi)",
		"React Native Developer at Crystal Recruit (Remote, Contract)",
		"Senior Full Stack Engineer at BlueCollar Ltd (Nairobi)",
	},
	"accountant": {
		"Reporting Accountant at CSS Ltd (Nairobi)",
		"Finance and Accounting Executive at Eldoret Farms (Eldoret)",
		"Accountant at Jocham Hospital (Mombasa)",
		"Junior Accountant at Brites Management (Nairobi)",
	},
	"sales": {
		"Sales Executive (Interior Design) at CSS Ltd (Nairobi)",
		"Regional Sales Lead at Trinova Technologies (Remote)",
		"Independent Sales Executive at Ledger 360 (Remote, Commission)",
	},
	"admin": {
		"Remote Executive Assistant at People Edge (Remote)",
		"Executive & Business Admin Assistant (Remote, US Hours)",
		"ICT Coordinator at Bestlinks Talents Hub (Nairobi)",
	},
}

type jobsProvider struct{}

// NewJobs creates the job listings provider.
func NewJobs() Provider {
	return &jobsProvider{}
}

// Search matches the query against category names in either direction, so
// "developer jobs" still lands on "software developer".
func (p *jobsProvider) Search(ctx context.Context, query string) ([]string, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, nil
	}
	for key, listings := range jobCategories {
		if strings.Contains(key, term) || strings.Contains(term, key) {
			return listings, nil
		}
	}
	return nil, nil
}
