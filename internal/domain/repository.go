// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// RepositorySummary holds the fields of a hosted repository that the projects panel displays.
// Values are taken verbatim from the hosting API and never modified afterwards.
// An empty Description or Language means the API returned null.
type RepositorySummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Topics      []string  `json:"topics"`
	IsFork      bool      `json:"is_fork"`
	UpdatedAt   time.Time `json:"updated_at"`
	HTMLURL     string    `json:"html_url"`
}

// ProfileSummary aggregates the public repositories of one owner.
type ProfileSummary struct {
	Owner         string         `json:"owner"`
	TotalRepos    int            `json:"total_repos"`
	OriginalRepos int            `json:"original_repos"`
	TotalStars    int            `json:"total_stars"`
	TotalForks    int            `json:"total_forks"`
	MeanStars     float64        `json:"mean_stars"`
	MedianStars   float64        `json:"median_stars"`
	LanguageUse   map[string]int `json:"language_use"`
}
