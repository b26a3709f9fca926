package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

const cardWidth = 72

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(cardWidth)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	topicStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	messageStyle = lipgloss.NewStyle().Italic(true)
)

// TerminalRenderer renders panel states for a terminal. Card images are not shown.
type TerminalRenderer struct {
	opts Options
}

// NewTerminalRenderer creates a TerminalRenderer using opts for topic limits.
func NewTerminalRenderer(opts Options) *TerminalRenderer {
	return &TerminalRenderer{opts: opts}
}

// Render writes the loading, projects, empty or error view for state to w.
func (r *TerminalRenderer) Render(w io.Writer, state domain.PanelState) error {
	var out string
	switch state.Phase {
	case domain.PhaseLoaded:
		if len(state.Repositories) == 0 {
			out = messageStyle.Render("No projects found. Check back soon!")
			break
		}
		cards := BuildCards(state.Repositories, r.opts)
		blocks := make([]string, 0, len(cards))
		for _, card := range cards {
			blocks = append(blocks, renderCard(card))
		}
		out = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	case domain.PhaseError:
		out = messageStyle.Render("Unable to load projects. Please visit my GitHub profile directly: " + state.ProfileURL())
	default:
		out = messageStyle.Render("Loading projects...")
	}

	_, err := fmt.Fprintln(w, out)
	return err
}

func renderCard(card Card) string {
	lines := []string{
		titleStyle.Render(card.Name),
		card.Description,
		mutedStyle.Render(fmt.Sprintf("%s  ★ %d  ⑂ %d", card.Language, card.Stars, card.Forks)),
	}
	if len(card.Topics) > 0 {
		tags := make([]string, 0, len(card.Topics))
		for _, t := range card.Topics {
			tags = append(tags, "#"+t)
		}
		lines = append(lines, topicStyle.Render(strings.Join(tags, " ")))
	}
	lines = append(lines, "View Project → "+card.URL)
	return cardStyle.Render(strings.Join(lines, "\n"))
}
