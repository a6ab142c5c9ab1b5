package ledger

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
	"github.com/sirupsen/logrus"
)

// ResponseKind selects how a response body is handled. It is chosen by the
// caller's intent, never by inspecting the payload.
type ResponseKind int

const (
	KindData ResponseKind = iota
	KindBinary
)

// TokenSource yields the bearer credential attached to every request.
// An empty token means no Authorization header is sent.
type TokenSource interface {
	AccessToken() (string, error)
}

type Request struct {
	Method string
	Body   any
	Kind   ResponseKind
}

// Response carries either a decoded structured payload or a binary artifact.
type Response struct {
	Status   int
	Data     any
	Artifact *Artifact
}

// Artifact is an open handle on a binary response body. Callers must Close it.
type Artifact struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

func (a *Artifact) Close() error {
	if a == nil || a.Body == nil {
		return nil
	}
	return a.Body.Close()
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues a credentialed request against path. Network failures and
// undecodable structured bodies come back as *TransportError; ledger
// rejections are left in Response.Data for the typed wrappers to interpret.
func (c *Client) Do(ctx context.Context, path string, r Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Op: method, Path: path, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	entry := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Debug("ledger request failed")
		return nil, &TransportError{Op: method, Path: path, Err: err}
	}

	entry.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("ledger request completed")

	if r.Kind == KindBinary {
		return c.binaryResponse(resp, method, path)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method, Path: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	data, err := decodeJSON(raw)
	if err != nil {
		return nil, &TransportError{Op: method, Path: path, Err: err}
	}

	return &Response{Status: resp.StatusCode, Data: data}, nil
}

func (c *Client) binaryResponse(resp *http.Response, method, path string) (*Response, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() {
			_ = resp.Body.Close()
		}()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		data, _ := decodeJSON(raw)
		return &Response{Status: resp.StatusCode, Data: data}, nil
	}

	return &Response{
		Status: resp.StatusCode,
		Artifact: &Artifact{
			ContentType: resp.Header.Get("Content-Type"),
			Size:        resp.ContentLength,
			Body:        resp.Body,
		},
	}, nil
}

func (c *Client) accessToken() string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.AccessToken()
	if err != nil {
		c.log.WithError(err).Debug("no access token available")
		return ""
	}
	return token
}

func decodeJSON(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}
