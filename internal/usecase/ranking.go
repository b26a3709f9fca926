package usecase

import (
	"sort"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

// SelectTop drops forked repositories and returns at most n of the rest,
// ordered by star count and then by most recent update.
// Repositories equal on both keys keep their input order.
func SelectTop(repos []domain.RepositorySummary, n int) []domain.RepositorySummary {
	originals := make([]domain.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		if !repo.IsFork {
			originals = append(originals, repo)
		}
	}

	sort.SliceStable(originals, func(i, j int) bool {
		return ranksBefore(originals[i], originals[j])
	})

	if n < 0 {
		n = 0
	}
	if len(originals) > n {
		originals = originals[:n]
	}
	return originals
}

func ranksBefore(a, b domain.RepositorySummary) bool {
	if a.Stars != b.Stars {
		return a.Stars > b.Stars
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}
