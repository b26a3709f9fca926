// Package view turns panel states into presentation output.
package view

import "github.com/naka-gawa/portfolio-projects/internal/domain"

const (
	DefaultDescription = "No description available"
	DefaultLanguage    = "Code"
	DefaultMaxTopics   = 5
)

// DefaultImages are the placeholder images for the first, second and third card.
var DefaultImages = []string{
	"https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=800&h=600&fit=crop&crop=center",
	"https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=600&fit=crop&crop=center",
	"https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800&h=600&fit=crop&crop=center",
}

// Options controls how cards are built. Zero values fall back to the defaults above.
type Options struct {
	Images    []string
	MaxTopics int
}

func (o Options) images() []string {
	if len(o.Images) == 0 {
		return DefaultImages
	}
	return o.Images
}

func (o Options) maxTopics() int {
	if o.MaxTopics <= 0 {
		return DefaultMaxTopics
	}
	return o.MaxTopics
}

// Card is one rendered repository.
type Card struct {
	Image       string
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	Topics      []string
	URL         string
}

// BuildCards maps ranked repositories to cards, keeping their order.
func BuildCards(repos []domain.RepositorySummary, opts Options) []Card {
	images := opts.images()
	maxTopics := opts.maxTopics()

	cards := make([]Card, 0, len(repos))
	for i, repo := range repos {
		card := Card{
			Image:       images[0],
			Name:        repo.Name,
			Description: repo.Description,
			Language:    repo.Language,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			URL:         repo.HTMLURL,
		}
		if i < len(images) {
			card.Image = images[i]
		}
		if card.Description == "" {
			card.Description = DefaultDescription
		}
		if card.Language == "" {
			card.Language = DefaultLanguage
		}
		if len(repo.Topics) > maxTopics {
			card.Topics = repo.Topics[:maxTopics]
		} else {
			card.Topics = repo.Topics
		}
		cards = append(cards, card)
	}
	return cards
}
