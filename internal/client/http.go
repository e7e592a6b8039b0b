package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// apiPrefix is the version segment every service route starts with.
const apiPrefix = "/2017-08-29"

// HTTPClient implements JobsClient using the ledger's HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ JobsClient = (*HTTPClient)(nil)

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Jobs ---

func (c *HTTPClient) CreateJob(ctx context.Context, req types.CreateJobRequest) (types.CreateJobResult, error) {
	var res types.CreateJobResult
	err := c.doDocument(ctx, http.MethodPost, apiPrefix+"/jobs", req, func(doc map[string]any) (err error) {
		res, err = types.DecodeCreateJobResult(doc)
		return err
	})
	return res, err
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (types.GetJobResult, error) {
	var res types.GetJobResult
	err := c.doDocument(ctx, http.MethodGet, apiPrefix+"/jobs/"+url.PathEscape(id), nil, func(doc map[string]any) (err error) {
		res, err = types.DecodeGetJobResult(doc)
		return err
	})
	return res, err
}

func (c *HTTPClient) ListJobs(ctx context.Context, req types.ListJobsRequest) (types.ListJobsResult, error) {
	q := url.Values{}
	if v, ok := req.MaxResults().Get(); ok {
		q.Set("maxResults", strconv.Itoa(int(v)))
	}
	if v, ok := req.NextToken().Get(); ok {
		q.Set("nextToken", v)
	}
	if v, ok := req.Order().Get(); ok {
		q.Set("order", string(v))
	}
	if v, ok := req.Queue().Get(); ok {
		q.Set("queue", v)
	}
	if v, ok := req.Status().Get(); ok {
		q.Set("status", string(v))
	}

	path := apiPrefix + "/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res types.ListJobsResult
	err := c.doDocument(ctx, http.MethodGet, path, nil, func(doc map[string]any) (err error) {
		res, err = types.DecodeListJobsResult(doc)
		return err
	})
	return res, err
}

func (c *HTTPClient) CancelJob(ctx context.Context, id string) (types.CancelJobResult, error) {
	err := c.doDocument(ctx, http.MethodDelete, apiPrefix+"/jobs/"+url.PathEscape(id), nil, nil)
	return types.NewCancelJobResultBuilder().Build(), err
}

// --- Tags ---

func (c *HTTPClient) TagResource(ctx context.Context, req types.TagResourceRequest) (types.TagResourceResult, error) {
	err := c.doDocument(ctx, http.MethodPost, apiPrefix+"/tags", req, nil)
	return types.NewTagResourceResultBuilder().Build(), err
}

func (c *HTTPClient) UntagResource(ctx context.Context, req types.UntagResourceRequest) (types.UntagResourceResult, error) {
	body := map[string]any{"tagKeys": req.TagKeys().Or([]string{})}
	err := c.doDocument(ctx, http.MethodPut, apiPrefix+"/tags/"+url.PathEscape(req.Arn().Or("")), body, nil)
	return types.NewUntagResourceResultBuilder().Build(), err
}

func (c *HTTPClient) ListTagsForResource(ctx context.Context, arn string) (types.ListTagsForResourceResult, error) {
	var res types.ListTagsForResourceResult
	err := c.doDocument(ctx, http.MethodGet, apiPrefix+"/tags/"+url.PathEscape(arn), nil, func(doc map[string]any) (err error) {
		res, err = types.DecodeListTagsForResourceResult(doc)
		return err
	})
	return res, err
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var status string
	err := c.doDocument(ctx, http.MethodGet, "/ping", nil, func(doc map[string]any) error {
		status, _ = doc["status"].(string)
		return nil
	})
	return status, err
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Problems   []types.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doDocument performs an HTTP request with optional JSON body and passes the
// decoded response document to decode. If decode is nil, the response body
// is discarded.
func (c *HTTPClient) doDocument(ctx context.Context, method, path string, body any, decode func(map[string]any) error) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error    string             `json:"error"`
			Problems []types.FieldError `json:"problems"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Problems: errResp.Problems}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if decode == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := decode(doc); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
