package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

func TestTerminalRenderer_Render(t *testing.T) {
	testCases := []struct {
		name        string
		state       domain.PanelState
		contains    []string
		notContains []string
	}{
		{
			name: "loaded",
			state: domain.PanelState{Phase: domain.PhaseLoaded, Repositories: []domain.RepositorySummary{
				{Name: "hello", Stars: 5, Forks: 1, Topics: []string{"cli"}, HTMLURL: "https://github.com/o/hello"},
			}},
			contains:    []string{"hello", DefaultDescription, DefaultLanguage, "★ 5", "#cli", "https://github.com/o/hello"},
			notContains: []string{"No projects found"},
		},
		{
			name:     "empty",
			state:    domain.PanelState{Phase: domain.PhaseLoaded},
			contains: []string{"No projects found. Check back soon!"},
		},
		{
			name:     "error",
			state:    domain.PanelState{Phase: domain.PhaseError, Owner: "octocat"},
			contains: []string{"Unable to load projects", "https://github.com/octocat"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewTerminalRenderer(Options{}).Render(&buf, tc.state))

			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
