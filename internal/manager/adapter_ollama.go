package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ollamaClient implements DaemonClient against an Ollama-compatible daemon.
type ollamaClient struct {
	baseURL    string
	reqTimeout time.Duration
	httpClient *http.Client
}

// NewOllamaClient constructs a daemon client. reqTimeout bounds each
// generation; probes carry their own deadline from the caller.
func NewOllamaClient(baseURL string, reqTimeout time.Duration) DaemonClient {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// Timeout=0: every request carries a context deadline instead.
	cli := &http.Client{Transport: tr, Timeout: 0}
	return &ollamaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		reqTimeout: reqTimeout,
		httpClient: cli,
	}
}

// generateRequest is the payload for POST /api/generate.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

func (c *ollamaClient) Generate(ctx context.Context, model, prompt string, params InferParams) (string, error) {
	if c.reqTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.reqTimeout)
		defer cancel()
	}
	body, _ := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: params.Temperature,
			NumPredict:  params.MaxTokens,
		},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(b) > 4096 {
			b = b[:4096]
		}
		return "", &daemonStatusError{status: resp.StatusCode, body: strings.TrimSpace(string(b))}
	}
	if !gjson.ValidBytes(b) {
		return "", &badResponseError{msg: "daemon returned invalid JSON"}
	}
	r := gjson.GetBytes(b, "response")
	if !r.Exists() {
		if e := gjson.GetBytes(b, "error"); e.Exists() {
			return "", &badResponseError{msg: "daemon error: " + e.String()}
		}
		return "", &badResponseError{msg: "daemon response has no 'response' field"}
	}
	return r.String(), nil
}

func (c *ollamaClient) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode != http.StatusOK {
		return &daemonStatusError{status: resp.StatusCode}
	}
	return nil
}
