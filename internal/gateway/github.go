// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/portfolio-projects/internal/domain"
)

// Source selects which GitHub API the gateway talks to.
type Source string

const (
	SourceREST    Source = "rest"
	SourceGraphQL Source = "graphql"
)

// perPage matches the single page the projects panel asks for.
const perPage = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// ListRepositories returns the owner's public repositories, most recently updated first.
	ListRepositories(ctx context.Context, owner string) ([]domain.RepositorySummary, error)
}

// Options configures NewGitHubGateway. Zero values select the public REST API without credentials.
type Options struct {
	Token      string
	Source     Source
	APIBaseURL string
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	source        Source
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// userRepositoriesQuery mirrors the REST list endpoint: public repositories, most recently updated first.
type userRepositoriesQuery struct {
	User struct {
		Repositories struct {
			Nodes []struct {
				Name            string
				Description     *string
				PrimaryLanguage *struct {
					Name string
				}
				StargazerCount   int
				ForkCount        int
				IsFork           bool
				UpdatedAt        githubv4.DateTime
				URL              string
				RepositoryTopics struct {
					Nodes []struct {
						Topic struct {
							Name string
						}
					}
				} `graphql:"repositoryTopics(first: 20)"`
			}
		} `graphql:"repositories(first: 100, privacy: PUBLIC, ownerAffiliations: OWNER, orderBy: {field: UPDATED_AT, direction: DESC})"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token is optional for the REST source and required for the GraphQL source.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	source := opts.Source
	if source == "" {
		source = SourceREST
	}
	if source != SourceREST && source != SourceGraphQL {
		return nil, fmt.Errorf("unknown source %q", source)
	}
	if source == SourceGraphQL && opts.Token == "" {
		return nil, errors.New("the GraphQL source requires a GitHub token")
	}

	// A zero sleep limit hands a secondary rate limit reply straight back instead of waiting and resending.
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(0, func(*github_ratelimit.CallbackContext) {
		logger.Println("Secondary rate limit hit, not retrying.")
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}
	httpClient := &http.Client{Transport: transport}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if opts.APIBaseURL != "" {
		base := strings.TrimSuffix(opts.APIBaseURL, "/")
		baseURL, err := url.Parse(base + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", opts.APIBaseURL, err)
		}
		restClient.BaseURL = baseURL
		graphqlClient = githubv4.NewEnterpriseClient(base+"/graphql", httpClient)
	}

	return &GitHubGateway{
		source:        source,
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// ListRepositories fetches the owner's repositories from the configured source in a single request.
func (g *GitHubGateway) ListRepositories(ctx context.Context, owner string) ([]domain.RepositorySummary, error) {
	if g.source == SourceGraphQL {
		return g.listRepositoriesGraphQL(ctx, owner)
	}
	return g.listRepositoriesREST(ctx, owner)
}

// listRepositoriesREST issues GET /users/{owner}/repos?sort=updated&per_page=100.
// Only the first page is read.
func (g *GitHubGateway) listRepositoriesREST(ctx context.Context, owner string) ([]domain.RepositorySummary, error) {
	g.logger.Printf("Fetching repositories for %s using REST API...", owner)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, owner, opts)
	if err != nil {
		return nil, classifyRESTError(err)
	}

	summaries := make([]domain.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, domain.RepositorySummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Topics:      repo.Topics,
			IsFork:      repo.GetFork(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
			HTMLURL:     repo.GetHTMLURL(),
		})
	}
	g.logger.Printf("Completed fetching %d repositories.", len(summaries))
	return summaries, nil
}

func (g *GitHubGateway) listRepositoriesGraphQL(ctx context.Context, owner string) ([]domain.RepositorySummary, error) {
	g.logger.Printf("Fetching repositories for %s using GraphQL API...", owner)
	variables := map[string]interface{}{"login": githubv4.String(owner)}

	var q userRepositoriesQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, classifyGraphQLError(err)
	}

	nodes := q.User.Repositories.Nodes
	summaries := make([]domain.RepositorySummary, 0, len(nodes))
	for _, node := range nodes {
		summary := domain.RepositorySummary{
			Name:      node.Name,
			Stars:     node.StargazerCount,
			Forks:     node.ForkCount,
			IsFork:    node.IsFork,
			UpdatedAt: node.UpdatedAt.Time,
			HTMLURL:   node.URL,
		}
		if node.Description != nil {
			summary.Description = *node.Description
		}
		if node.PrimaryLanguage != nil {
			summary.Language = node.PrimaryLanguage.Name
		}
		for _, t := range node.RepositoryTopics.Nodes {
			summary.Topics = append(summary.Topics, t.Topic.Name)
		}
		summaries = append(summaries, summary)
	}
	g.logger.Printf("Completed fetching %d repositories.", len(summaries))
	return summaries, nil
}

// classifyRESTError maps go-github errors onto the FetchError taxonomy.
// Anything that is neither an HTTP status nor a decoding failure is treated as a transport failure.
func classifyRESTError(err error) error {
	if status, ok := statusCode(err); ok {
		return &domain.FetchError{Kind: domain.FailureHTTP, StatusCode: status, Err: err}
	}
	if isDecodeError(err) {
		return &domain.FetchError{Kind: domain.FailureParse, Err: err}
	}
	return &domain.FetchError{Kind: domain.FailureNetwork, Err: err}
}

// classifyGraphQLError maps githubv4 errors onto the FetchError taxonomy.
// githubv4 reports non-200 responses and GraphQL error payloads as plain errors,
// so everything that is not transport or decoding is counted as an HTTP failure.
func classifyGraphQLError(err error) error {
	if isDecodeError(err) {
		return &domain.FetchError{Kind: domain.FailureParse, Err: err}
	}
	if isTransportError(err) {
		return &domain.FetchError{Kind: domain.FailureNetwork, Err: err}
	}
	// StatusCode stays 0 when the status is unknown, e.g. for a GraphQL error payload.
	status := 0
	if msg, ok := strings.CutPrefix(err.Error(), "non-200 OK status code: "); ok {
		if n, scanErr := fmt.Sscanf(msg, "%d", &status); n != 1 || scanErr != nil {
			status = 0
		}
	}
	return &domain.FetchError{Kind: domain.FailureHTTP, StatusCode: status, Err: err}
}

func statusCode(err error) (int, bool) {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode, true
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode, true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode, true
	}
	var acceptedErr *github.AcceptedError
	if errors.As(err, &acceptedErr) {
		return http.StatusAccepted, true
	}
	return 0, false
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
