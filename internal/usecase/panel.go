// Package usecase contains the business logic of the application.
package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
	"github.com/naka-gawa/portfolio-projects/internal/gateway"
)

// DefaultLimit is how many repositories the panel shows.
const DefaultLimit = 3

// Renderer draws a panel state.
type Renderer interface {
	Render(w io.Writer, state domain.PanelState) error
}

// ProjectsPanel is the use case behind the projects section of the portfolio.
// It fetches the owner's repositories once, ranks them and hands the result to a renderer.
type ProjectsPanel struct {
	fetcher  gateway.Fetcher
	renderer Renderer
	logger   *log.Logger
	owner    string
	limit    int

	mu    sync.Mutex
	state domain.PanelState
}

// NewProjectsPanel creates a new ProjectsPanel instance in the idle phase.
func NewProjectsPanel(fetcher gateway.Fetcher, renderer Renderer, owner string, limit int, logger *log.Logger) *ProjectsPanel {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &ProjectsPanel{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger,
		owner:    owner,
		limit:    limit,
		state:    domain.PanelState{Phase: domain.PhaseIdle, Owner: owner},
	}
}

// State returns a snapshot of the current panel state.
func (p *ProjectsPanel) State() domain.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load moves the panel from idle through loading to loaded or error.
// Only the first call fetches; later calls return the terminal state unchanged.
func (p *ProjectsPanel) Load(ctx context.Context) domain.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Phase != domain.PhaseIdle {
		return p.state
	}
	p.state.Phase = domain.PhaseLoading
	p.logger.Printf("Usecase: Loading projects for %s...", p.owner)

	repos, err := p.fetcher.ListRepositories(ctx, p.owner)
	if err != nil {
		p.logger.Printf("Error fetching GitHub projects: %v", err)
		p.state = domain.PanelState{Phase: domain.PhaseError, Owner: p.owner, Err: err}
		return p.state
	}

	top := SelectTop(repos, p.limit)
	p.state = domain.PanelState{Phase: domain.PhaseLoaded, Owner: p.owner, Repositories: top}
	p.logger.Printf("Usecase: Selected %d of %d repositories.", len(top), len(repos))
	return p.state
}

// Mount loads the panel and renders it into the container w.
// A nil container means there is nothing to fill, so no request is made.
// The output is written in one piece, so w never receives a partial panel.
func (p *ProjectsPanel) Mount(ctx context.Context, w io.Writer) error {
	if w == nil {
		p.logger.Println("Usecase: No projects container, skipping.")
		return nil
	}

	state := p.Load(ctx)

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, state); err != nil {
		return fmt.Errorf("failed to render projects panel: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write projects panel: %w", err)
	}
	return nil
}
