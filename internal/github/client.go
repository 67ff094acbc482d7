package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/ryo246912/gdvm/internal/logger"
	"github.com/ryo246912/gdvm/internal/models"
)

// Options configures a Client
type Options struct {
	Host      string
	Token     string
	UserAgent string
	Repo      RepositoryInfo
	PerPage   int

	// Transport replaces the underlying HTTP transport; nil uses the default.
	Transport http.RoundTripper
	// HTTPLog receives one line per request when set.
	HTTPLog io.Writer
}

// Client wraps the GitHub REST client
type Client struct {
	rest    *api.RESTClient
	repo    RepositoryInfo
	perPage int
}

func NewClient(opts Options) (*Client, error) {
	if opts.PerPage <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", opts.PerPage)
	}

	restClient, err := api.NewRESTClient(api.ClientOptions{
		Host:      opts.Host,
		AuthToken: opts.Token,
		Headers: map[string]string{
			"User-Agent": opts.UserAgent,
		},
		Transport:    opts.Transport,
		Log:          opts.HTTPLog,
		LogIgnoreEnv: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest:    restClient,
		repo:    opts.Repo,
		perPage: opts.PerPage,
	}, nil
}

// ListReleases fetches every page of the repository's releases in order.
// Paging stops at the first page holding fewer than perPage records, so a
// total that is an exact multiple of perPage costs one extra, empty request.
func (c *Client) ListReleases(ctx context.Context) ([]models.Release, error) {
	var releases []models.Release
	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		logger.Log.Debug("fetched releases page", "page", page, "count", len(batch))

		releases = append(releases, batch...)
		if len(batch) < c.perPage {
			return releases, nil
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]models.Release, error) {
	path := fmt.Sprintf("repos/%s/%s/releases?per_page=%d&page=%d",
		c.repo.GetOwner(), c.repo.GetName(), c.perPage, page)

	resp, err := c.rest.RequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, requestError(page, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Page: page, Err: err}
	}
	return decodePage(page, body)
}

// decodePage parses one listing page. A valid JSON document that is not an
// array holds no releases.
func decodePage(page int, body []byte) ([]models.Release, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &FormatError{Page: page, Err: err}
	}

	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 || doc[0] != '[' {
		logger.Log.Debug("releases page is not an array", "page", page)
		return nil, nil
	}

	var releases []models.Release
	if err := json.Unmarshal(doc, &releases); err != nil {
		return nil, &FormatError{Page: page, Err: err}
	}
	return releases, nil
}
