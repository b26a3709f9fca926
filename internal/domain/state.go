package domain

import (
	"fmt"
	"net/http"
)

// Phase is the lifecycle position of a projects panel.
// A panel moves Idle -> Loading -> Loaded or Error and stays there.
type Phase int

const (
	// PhaseIdle is a panel that has not been mounted yet.
	PhaseIdle Phase = iota
	// PhaseLoading is a panel waiting on its single repository fetch.
	PhaseLoading
	// PhaseLoaded holds the top repositories, possibly none.
	PhaseLoaded
	// PhaseError holds the fetch failure that ended loading.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseLoaded || p == PhaseError
}

// PanelState is what a renderer needs to draw the panel.
// Repositories is only meaningful in PhaseLoaded and is already ranked.
type PanelState struct {
	Phase        Phase
	Owner        string
	Repositories []RepositorySummary
	Err          error
}

// ProfileURL returns the owner's public profile page.
func (s PanelState) ProfileURL() string {
	return ProfileURL(s.Owner)
}

// ProfileURL returns the public profile page of owner on github.com.
func ProfileURL(owner string) string {
	return "https://github.com/" + owner
}

// FailureKind classifies why fetching repositories failed.
type FailureKind int

const (
	FailureHTTP FailureKind = iota + 1
	FailureNetwork
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureHTTP:
		return "http"
	case FailureNetwork:
		return "network"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError is returned by fetchers when the repository list could not be obtained.
// All kinds end up in the same Error panel state.
type FetchError struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == FailureHTTP && e.StatusCode != 0:
		return fmt.Sprintf("failed to fetch repositories: HTTP %d %s: %v", e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	default:
		return fmt.Sprintf("failed to fetch repositories (%s): %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
