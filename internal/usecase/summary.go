package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
	"github.com/naka-gawa/portfolio-projects/internal/gateway"
)

// Summarizer is the use case for aggregating an owner's public repositories.
type Summarizer struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(fetcher gateway.Fetcher, logger *log.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Summarize fetches the owner's repositories and aggregates them.
func (s *Summarizer) Summarize(ctx context.Context, owner string) (*domain.ProfileSummary, error) {
	s.logger.Println("Usecase: Starting profile summary...")
	repos, err := s.fetcher.ListRepositories(ctx, owner)
	if err != nil {
		return nil, err
	}
	summary, err := Summarize(owner, repos)
	if err != nil {
		return nil, err
	}
	s.logger.Println("Usecase: Summary complete.")
	return summary, nil
}

// Summarize aggregates repos. Star statistics and language use only count original (non-fork) repositories.
func Summarize(owner string, repos []domain.RepositorySummary) (*domain.ProfileSummary, error) {
	summary := &domain.ProfileSummary{
		Owner:       owner,
		TotalRepos:  len(repos),
		LanguageUse: make(map[string]int),
	}

	var starCounts stats.Float64Data
	for _, repo := range repos {
		summary.TotalStars += repo.Stars
		summary.TotalForks += repo.Forks
		if repo.IsFork {
			continue
		}
		summary.OriginalRepos++
		starCounts = append(starCounts, float64(repo.Stars))
		if repo.Language != "" {
			summary.LanguageUse[repo.Language]++
		}
	}

	if len(starCounts) == 0 {
		return summary, nil
	}
	mean, err := stats.Mean(starCounts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean stars: %w", err)
	}
	median, err := stats.Median(starCounts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median stars: %w", err)
	}
	summary.MeanStars = mean
	summary.MedianStars = median
	return summary, nil
}
