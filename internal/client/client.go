package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"resumelens/resume-optimizer/internal/models"
)

var (
	// ErrConnectionFailed means the service could not be reached at all,
	// as opposed to the service answering with an error payload.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnparseableAnalysis means the response arrived but its analysis
	// field could not be interpreted in either supported form.
	ErrUnparseableAnalysis = errors.New("could not parse analysis")
)

// ServerError is an error payload the service returned deliberately.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the analysis service. One instance is safe for reuse.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Probe pings the service root. The result is advisory only and never gates
// submission.
func (c *Client) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

type uploadEnvelope struct {
	Message  string          `json:"message"`
	Filename string          `json:"filename"`
	Analysis json.RawMessage `json:"analysis"`
	Error    string          `json:"error"`
}

// Submit uploads one resume plus an optional job description and returns the
// structured analysis. The request is synchronous: it blocks until the
// service answers or the client timeout fires.
func (c *Client) Submit(ctx context.Context, file PendingFile, jobDescription string) (*models.AnalysisResult, error) {
	if err := ValidateFile(file.Name, file.Size); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	if jd := strings.TrimSpace(jobDescription); jd != "" {
		if err := writer.WriteField("job_description", jd); err != nil {
			return nil, fmt.Errorf("failed to build request body: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	var envelope uploadEnvelope
	if resp.StatusCode != http.StatusOK {
		// An intermediary may answer with a non-JSON body; the status code
		// alone is enough to classify this as a server-side rejection.
		_ = json.Unmarshal(payload, &envelope)
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: invalid response body", ErrUnparseableAnalysis)
	}

	return NormalizeAnalysis(envelope.Analysis)
}

// NormalizeAnalysis adapts both historical wire shapes of the analysis field
// into the canonical structured form: servers have returned it both as a JSON
// object and as a JSON-encoded string.
func NormalizeAnalysis(raw json.RawMessage) (*models.AnalysisResult, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrUnparseableAnalysis
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err == nil {
		return &result, nil
	}

	// Older revisions return the analysis as a string of JSON.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, ErrUnparseableAnalysis
	}
	if err := json.Unmarshal([]byte(encoded), &result); err != nil {
		return nil, ErrUnparseableAnalysis
	}

	return &result, nil
}
