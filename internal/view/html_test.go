package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

func renderHTML(t *testing.T, state domain.PanelState) string {
	t.Helper()
	renderer, err := NewHTMLRenderer(Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, state))
	return buf.String()
}

// imagePath drops the query, whose ampersands are escaped inside attributes.
func imagePath(u string) string {
	return strings.SplitN(u, "?", 2)[0]
}

func TestHTMLRenderer_Render(t *testing.T) {
	repos := []domain.RepositorySummary{
		{
			Name: "hello", Description: "greets people", Language: "Go", Stars: 12, Forks: 3,
			Topics:  []string{"cli", "go", "a", "b", "c", "sixth"},
			HTMLURL: "https://github.com/octocat/hello",
		},
		{Name: "bare", HTMLURL: "https://github.com/octocat/bare"},
	}

	t.Run("loaded renders one card per repository in order", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoaded, Owner: "octocat", Repositories: repos})

		assert.Equal(t, 2, strings.Count(out, `class="project-card"`))
		assert.Less(t, strings.Index(out, "hello"), strings.Index(out, "bare"))
		assert.Contains(t, out, `<span>12</span>`)
		assert.Contains(t, out, `<span>3</span>`)
		assert.Contains(t, out, `href="https://github.com/octocat/hello"`)
		assert.Contains(t, out, "View Project")
		assert.Contains(t, out, imagePath(DefaultImages[0]))
		assert.Contains(t, out, imagePath(DefaultImages[1]))
		assert.NotContains(t, out, "No projects found")
		assert.NotContains(t, out, "Unable to load projects")
	})

	t.Run("at most five topics", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoaded, Repositories: repos[:1]})

		assert.Equal(t, 5, strings.Count(out, `class="topic"`))
		assert.NotContains(t, out, "sixth")
	})

	t.Run("null fields use defaults and empty topics drop the section", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoaded, Repositories: repos[1:]})

		assert.Contains(t, out, DefaultDescription)
		assert.Contains(t, out, "<span>"+DefaultLanguage+"</span>")
		assert.NotContains(t, out, "null")
		assert.NotContains(t, out, "project-topics")
	})

	t.Run("empty list renders the placeholder instead of a grid", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoaded, Owner: "octocat"})

		assert.Contains(t, out, "No projects found. Check back soon!")
		assert.NotContains(t, out, "project-card")
	})

	t.Run("error renders the profile link and nothing else", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseError, Owner: "octocat"})

		assert.Contains(t, out, "Unable to load projects.")
		assert.Contains(t, out, `href="https://github.com/octocat"`)
		assert.NotContains(t, out, "project-card")
		assert.NotContains(t, out, "No projects found")
	})

	t.Run("loading placeholder", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoading})

		assert.Contains(t, out, "Loading projects...")
	})

	t.Run("repository text is escaped", func(t *testing.T) {
		out := renderHTML(t, domain.PanelState{Phase: domain.PhaseLoaded, Repositories: []domain.RepositorySummary{
			{Name: "x", Description: "<script>alert(1)</script>"},
		}})

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
	})
}

func TestBuildCards(t *testing.T) {
	repos := make([]domain.RepositorySummary, 5)
	for i := range repos {
		repos[i].Name = string(rune('a' + i))
	}

	t.Run("positional images with the first reused past the fixed set", func(t *testing.T) {
		cards := BuildCards(repos, Options{})

		require.Len(t, cards, 5)
		assert.Equal(t, DefaultImages[0], cards[0].Image)
		assert.Equal(t, DefaultImages[1], cards[1].Image)
		assert.Equal(t, DefaultImages[2], cards[2].Image)
		assert.Equal(t, DefaultImages[0], cards[3].Image)
		assert.Equal(t, DefaultImages[0], cards[4].Image)
	})

	t.Run("custom images and topic limit", func(t *testing.T) {
		in := []domain.RepositorySummary{{Name: "a", Topics: []string{"x", "y", "z"}}, {Name: "b"}}

		cards := BuildCards(in, Options{Images: []string{"one.png"}, MaxTopics: 2})

		assert.Equal(t, "one.png", cards[0].Image)
		assert.Equal(t, "one.png", cards[1].Image)
		assert.Equal(t, []string{"x", "y"}, cards[0].Topics)
	})
}

func TestHTMLRenderer_Page(t *testing.T) {
	renderer, err := NewHTMLRenderer(Options{})
	require.NoError(t, err)

	about, err := RenderMarkdown([]byte("I build **tools**."))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Templates().ExecuteTemplate(&buf, PageTemplate, PageData{Title: "Portfolio", About: about}))

	out := buf.String()
	assert.Contains(t, out, "<title>Portfolio</title>")
	assert.Contains(t, out, "<strong>tools</strong>")
	assert.Contains(t, out, `id="projectsGrid"`)
	assert.Contains(t, out, `hx-get="/projects"`)
	assert.Contains(t, out, "Loading projects...")
}

func TestRenderMarkdown_DropsRawHTML(t *testing.T) {
	out, err := RenderMarkdown([]byte("hi <script>alert(1)</script>"))
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>")
}
