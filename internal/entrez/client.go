// Package entrez is a small NCBI E-utilities client (esearch/efetch) with
// request pacing and backoff on throttling or server errors.
package entrez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/net/ratecontrol"
)

const (
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"
	DefaultTool    = "biolab"
)

// NCBI allows 3 requests/second, or 10 with an API key.
const (
	requestsPerMinute        = 3 * 60
	requestsPerMinuteWithKey = 10 * 60
)

// ErrStatus reports a non-200 response that was not, or could no longer be,
// retried.
var ErrStatus = errors.New("entrez: unexpected HTTP status")

// Options configures a Client. Zero values select NCBI defaults.
type Options struct {
	BaseURL    string
	Email      string
	Tool       string
	APIKey     string
	HTTPClient *http.Client

	// RequestsPerMinute overrides the NCBI rate policy.
	RequestsPerMinute int
	BackoffStart      time.Duration
	BackoffSteps      int
}

// Client issues E-utilities requests. It is safe for concurrent use; all
// requests share one rate controller.
type Client struct {
	base   string
	email  string
	tool   string
	apiKey string
	http   *http.Client
	rc     *ratecontrol.Controller
}

// New returns a Client for o.
func New(o Options) *Client {
	base := o.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	tool := o.Tool
	if tool == "" {
		tool = DefaultTool
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	rpm := o.RequestsPerMinute
	if rpm <= 0 {
		rpm = requestsPerMinute
		if o.APIKey != "" {
			rpm = requestsPerMinuteWithKey
		}
	}
	start, steps := o.BackoffStart, o.BackoffSteps
	if start <= 0 {
		start = 500 * time.Millisecond
	}
	if steps <= 0 {
		steps = 4
	}
	return &Client{
		base:   base,
		email:  o.Email,
		tool:   tool,
		apiKey: o.APIKey,
		http:   hc,
		rc: ratecontrol.New(
			ratecontrol.WithRequestsPerTick(rpm),
			ratecontrol.WithExponentialBackoff(start, steps),
		),
	}
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// get performs one E-utilities call, waiting for the rate controller and
// backing off on 429/5xx responses.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	if c.email != "" {
		q.Set("email", c.email)
	}
	q.Set("tool", c.tool)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u := c.base + endpoint + "?" + q.Encode()
	logger := ctxlog.Logger(ctx)
	backoff := c.rc.Backoff()
	for {
		if err := c.rc.Wait(ctx); err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		logger.Debug("entrez request", "endpoint", endpoint, "retries", backoff.Retries())
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("entrez %s: %w", endpoint, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("entrez %s: %w", endpoint, err)
		}
		if resp.StatusCode == http.StatusOK {
			return body, nil
		}
		if !retryable(resp.StatusCode) {
			return nil, fmt.Errorf("%w: %s: %s: %s", ErrStatus, endpoint, resp.Status, snippet(body))
		}
		logger.Warn("entrez backing off", "endpoint", endpoint, "status", resp.StatusCode)
		done, err := backoff.Wait(ctx, resp)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, fmt.Errorf("%w: %s: %s after %d retries", ErrStatus, endpoint, resp.Status, backoff.Retries())
		}
	}
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

type esearchResponse struct {
	Result struct {
		IDList []string `json:"idlist"`
		Error  string   `json:"ERROR"`
	} `json:"esearchresult"`
}

// ESearch returns up to retmax IDs in db matching term.
func (c *Client) ESearch(ctx context.Context, db, term string, retmax int) ([]string, error) {
	q := url.Values{}
	q.Set("db", db)
	q.Set("term", term)
	q.Set("retmax", strconv.Itoa(retmax))
	q.Set("retmode", "json")
	body, err := c.get(ctx, "esearch.fcgi", q)
	if err != nil {
		return nil, err
	}
	var r esearchResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("entrez esearch: decoding response: %w", err)
	}
	if r.Result.Error != "" {
		return nil, fmt.Errorf("entrez esearch: %s", r.Result.Error)
	}
	return r.Result.IDList, nil
}

// FetchRequest selects records for EFetch. RetType and RetMode are passed
// through unchanged, e.g. fasta/text for sequences or xml for PubMed.
type FetchRequest struct {
	DB      string
	IDs     []string
	RetType string
	RetMode string
}

// EFetch downloads the records named by req.
func (c *Client) EFetch(ctx context.Context, req FetchRequest) ([]byte, error) {
	if len(req.IDs) == 0 {
		return nil, errors.New("entrez efetch: no IDs given")
	}
	q := url.Values{}
	q.Set("db", req.DB)
	q.Set("id", strings.Join(req.IDs, ","))
	if req.RetType != "" {
		q.Set("rettype", req.RetType)
	}
	if req.RetMode != "" {
		q.Set("retmode", req.RetMode)
	}
	return c.get(ctx, "efetch.fcgi", q)
}
