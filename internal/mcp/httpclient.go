package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/program"
)

// HTTPClient implements RoutineSource by calling the liftplan REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// generation happens on the shared server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies RoutineSource.
var _ RoutineSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey may
// be empty when the server does not require one.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func routinePath(id string, suffix string) string {
	return "/api/v1/routines/" + url.PathEscape(id) + suffix
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("httpclient: %s: %w", path, program.ErrUnknownProgram)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

func (c *HTTPClient) Programs(ctx context.Context) ([]models.RoutineSummary, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/routines", nil)
	if err != nil {
		return nil, err
	}

	var summaries []models.RoutineSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode routines: %w", err)
	}
	return summaries, nil
}

func (c *HTTPClient) Parameters(ctx context.Context, id string) (models.ParameterSchema, error) {
	body, err := c.do(ctx, http.MethodGet, routinePath(id, "/parameters"), nil)
	if err != nil {
		return models.ParameterSchema{}, err
	}

	var schema models.ParameterSchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return models.ParameterSchema{}, fmt.Errorf("httpclient: decode parameters: %w", err)
	}
	return schema, nil
}

func (c *HTTPClient) Defaults(ctx context.Context, id string) (models.RoutineParameters, error) {
	body, err := c.do(ctx, http.MethodGet, routinePath(id, "/defaults"), nil)
	if err != nil {
		return models.RoutineParameters{}, err
	}

	var params models.RoutineParameters
	if err := json.Unmarshal(body, &params); err != nil {
		return models.RoutineParameters{}, fmt.Errorf("httpclient: decode defaults: %w", err)
	}
	return params, nil
}

func (c *HTTPClient) Generate(ctx context.Context, id string, params models.RoutineParameters) (*models.Routine, error) {
	body, err := c.do(ctx, http.MethodPost, routinePath(id, "/generate"), params)
	if err != nil {
		return nil, err
	}

	var routine models.Routine
	if err := json.Unmarshal(body, &routine); err != nil {
		return nil, fmt.Errorf("httpclient: decode routine: %w", err)
	}
	return &routine, nil
}
