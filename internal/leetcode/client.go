// Package leetcode fetches problem metadata from the LeetCode GraphQL API.
package leetcode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"

	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

const (
	codeFetchFailed  = "PROBLEM_FETCH_FAILED"
	codeNotFound     = "PROBLEM_NOT_FOUND"
	codeURLInvalid   = "PROBLEM_URL_INVALID"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

const questionQuery = `
query getQuestionDetails($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionFrontendId
        title
        difficulty
        topicTags { name }
    }
}`

var slugPattern = regexp.MustCompile(`problems/([^/?#]+)`)

// Fetcher returns problem metadata for a slug.
type Fetcher interface {
	FetchProblem(ctx context.Context, slug string) (types.Problem, error)
}

// Client talks to the GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(cl *Client) { cl.logger = logging.OrNoOp(l) }
}

// NewClient creates a Client for endpoint; an empty endpoint uses the
// public LeetCode API.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = types.DefaultGraphQLURL
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		Question *struct {
			QuestionFrontendID string `json:"questionFrontendId"`
			Title              string `json:"title"`
			Difficulty         string `json:"difficulty"`
			TopicTags          []struct {
				Name string `json:"name"`
			} `json:"topicTags"`
		} `json:"question"`
	} `json:"data"`
}

// FetchProblem queries the catalog for slug. A non-200 status or a response
// without a question is an error; nothing is retried.
func (c *Client) FetchProblem(ctx context.Context, slug string) (types.Problem, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     questionQuery,
		Variables: map[string]any{"titleSlug": slug},
	})
	if err != nil {
		return types.Problem{}, fetchError(err, slug, "encode query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.Problem{}, fetchError(err, slug, "build request")
	}
	origin := originOf(c.endpoint)
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", origin)
	req.Header.Set("Referer", origin+"/")

	c.logger.Debug("fetching problem", "slug", slug, "endpoint", c.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return types.Problem{}, fetchError(err, slug, "post query")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return types.Problem{}, fetchError(fmt.Errorf("unexpected status %d", resp.StatusCode), slug, "post query")
	}

	var out graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.Problem{}, fetchError(err, slug, "decode response")
	}
	q := out.Data.Question
	if q == nil {
		return types.Problem{}, goerrors.New("problem not found: "+slug, goerrors.CategoryNotFound).
			WithTextCode(codeNotFound).
			WithMetadata(map[string]any{"slug": slug})
	}

	tags := make([]string, 0, len(q.TopicTags))
	for _, t := range q.TopicTags {
		tags = append(tags, t.Name)
	}
	p := types.Problem{
		ID:         q.QuestionFrontendID,
		Title:      q.Title,
		Slug:       slug,
		Difficulty: q.Difficulty,
		Tags:       tags,
	}
	c.logger.Info("problem fetched", "slug", slug, "id", p.ID, "title", p.Title)
	return p, nil
}

func fetchError(err error, slug, step string) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "fetch problem: "+step).
		WithTextCode(codeFetchFailed).
		WithMetadata(map[string]any{"slug": slug})
}

// originOf returns scheme://host of endpoint.
func originOf(endpoint string) string {
	scheme, rest, ok := strings.Cut(endpoint, "://")
	if !ok {
		return endpoint
	}
	host, _, _ := strings.Cut(rest, "/")
	return scheme + "://" + host
}

// SlugFromURL extracts the problem slug from a problem URL such as
// https://leetcode.com/problems/two-sum/description/.
func SlugFromURL(u string) (string, error) {
	m := slugPattern.FindStringSubmatch(u)
	if m == nil {
		return "", goerrors.New("not a problem url: "+u, goerrors.CategoryBadInput).
			WithTextCode(codeURLInvalid)
	}
	s := m[1]
	if !slug.IsValid(s) {
		normalized, err := slug.Normalize(s)
		if err != nil || normalized == "" {
			return "", goerrors.New("invalid problem slug: "+s, goerrors.CategoryBadInput).
				WithTextCode(codeURLInvalid)
		}
		s = normalized
	}
	return s, nil
}

// IsNotFound reports whether err means the catalog has no such problem.
func IsNotFound(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryNotFound)
}
