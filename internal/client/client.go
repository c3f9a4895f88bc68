// Package client is the HTTP client used by llmctl to talk to the gateway.
// Task calls never fail: transport and HTTP errors come back as the text to
// print, the same way the gateway reports backend failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"llmgateway/pkg/types"
)

// DefaultServerURL is used when neither --server nor LLM_SERVER_URL is set.
const DefaultServerURL = "http://127.0.0.1:5000"

// Request timeouts: generation can be slow, metadata calls should not be.
const (
	PostTimeout = 120 * time.Second
	GetTimeout  = 10 * time.Second
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	postTimeout time.Duration
	getTimeout  time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpClient = h } }

// WithTimeouts overrides the POST and GET timeouts.
func WithTimeouts(post, get time.Duration) Option {
	return func(c *Client) {
		c.postTimeout = post
		c.getTimeout = get
	}
}

func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultServerURL
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		postTimeout: PostTimeout,
		getTimeout:  GetTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the gateway address without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// errorBody renders err as the {"error": ...} object callers print.
func errorBody(err error) []byte {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return b
}

func (c *Client) do(ctx context.Context, method, path string, body any, timeout time.Duration) []byte {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errorBody(err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return errorBody(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorBody(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorBody(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), req.URL)
		if e := gjson.GetBytes(b, "error"); e.Exists() {
			msg += ": " + e.String()
		}
		return errorBody(fmt.Errorf("%s", msg))
	}
	if !gjson.ValidBytes(b) {
		return errorBody(fmt.Errorf("invalid JSON from %s", req.URL))
	}
	return b
}

func (c *Client) post(ctx context.Context, path string, body any) []byte {
	return c.do(ctx, http.MethodPost, path, body, c.postTimeout)
}

func (c *Client) get(ctx context.Context, path string) []byte {
	return c.do(ctx, http.MethodGet, path, nil, c.getTimeout)
}

// pick returns field from a JSON object, falling back to its error field.
func pick(body []byte, field string) string {
	if v := gjson.GetBytes(body, field); v.Exists() {
		return v.String()
	}
	return gjson.GetBytes(body, "error").String()
}

// Health returns the raw /health document (or an error object).
func (c *Client) Health(ctx context.Context) []byte { return c.get(ctx, "/health") }

// Models returns the raw /models document (or an error object).
func (c *Client) Models(ctx context.Context) []byte { return c.get(ctx, "/models") }

// Preload asks the gateway to load keys; an empty list loads every in-process model.
func (c *Client) Preload(ctx context.Context, keys []string) []byte {
	return c.post(ctx, "/preload", types.PreloadRequest{Models: keys})
}

func (c *Client) Complete(ctx context.Context, req types.CompleteRequest) string {
	return pick(c.post(ctx, "/complete", req), "completion")
}

func (c *Client) Explain(ctx context.Context, req types.ExplainRequest) string {
	return pick(c.post(ctx, "/explain", req), "explanation")
}

func (c *Client) Refactor(ctx context.Context, req types.RefactorRequest) string {
	return pick(c.post(ctx, "/refactor", req), "refactored")
}

func (c *Client) Reason(ctx context.Context, req types.ReasonRequest) string {
	return pick(c.post(ctx, "/reason", req), "response")
}

func (c *Client) Generate(ctx context.Context, req types.GenerateRequest) string {
	return pick(c.post(ctx, "/generate", req), "code")
}

// Chat sends history followed by message as a user turn.
func (c *Client) Chat(ctx context.Context, message, model string, history []types.ChatMessage) string {
	msgs := append(append([]types.ChatMessage(nil), history...), types.ChatMessage{Role: "user", Content: message})
	return pick(c.post(ctx, "/chat", types.ChatRequest{Messages: msgs, Model: types.Optional(model)}), "response")
}

// Indent pretty-prints a JSON document with two-space indentation.
func Indent(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}
	return out.String()
}
