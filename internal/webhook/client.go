package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

var (
	ErrEmptyResponse = errors.New("empty response from generation service")
	ErrInvalidJSON   = errors.New("invalid JSON response from generation service")
	ErrEmptyResult   = errors.New("generation service returned an empty result object")
)

// StatusError is a non-2xx HTTP response from a webhook. Never retried.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Status)
}

// NetworkError is returned once every retry attempt has failed at the
// transport level. It names the target URL so the failure is actionable.
type NetworkError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error after %d attempts: unable to reach generation service at %s", e.Attempts, e.URL)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MissingKeysError reports required top-level keys absent from a result
type MissingKeysError struct {
	Tool string
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("incomplete %s result, missing: %s", e.Tool, strings.Join(e.Keys, ", "))
}

// Result is a normalized webhook response
type Result struct {
	Tool      string
	RequestID string
	Data      map[string]any
	Duration  time.Duration
}

// Client posts generation requests to external webhooks with per-tool
// timeout and retry behavior, and normalizes whatever JSON comes back.
type Client struct {
	httpClient *http.Client
	backoff    func(*Tool) retry.Backoff
}

func NewClient() *Client {
	// Per-request deadlines come from tool timeouts, not the client
	return &Client{
		httpClient: &http.Client{},
		backoff:    backoffFor,
	}
}

// Generate posts the payload to the tool's webhook and returns the
// normalized result. Only transport-level failures are retried; an HTTP
// error status is terminal.
func (c *Client) Generate(ctx context.Context, tool *Tool, payload map[string]any) (*Result, error) {
	requestID := uuid.NewString()

	encoded, err := encodeRequest(tool, payload, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if tool.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tool.Timeout)
		defer cancel()
	}

	start := time.Now()
	attempts := 0
	var raw []byte

	err = retry.Do(ctx, c.backoff(tool), func(ctx context.Context) error {
		attempts++

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, tool.URL, bytes.NewReader(encoded))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return &StatusError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				Body:       string(body),
			}
		}

		raw = body
		return nil
	})
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, statusErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s generation timed out after %s: %w", tool.Name, tool.Timeout, context.DeadlineExceeded)
		}
		return nil, &NetworkError{URL: tool.URL, Attempts: attempts, Err: err}
	}

	data, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	if err := checkRequiredKeys(tool, data); err != nil {
		return nil, err
	}

	return &Result{
		Tool:      tool.Name,
		RequestID: requestID,
		Data:      data,
		Duration:  time.Since(start),
	}, nil
}

// encodeRequest builds the outbound body: the form payload plus a generated
// timestamp and request id, or a one-element array for tools whose contract
// expects that shape.
func encodeRequest(tool *Tool, payload map[string]any, requestID string) ([]byte, error) {
	if tool.ArrayWrappedRequest {
		return json.Marshal([]map[string]any{payload})
	}

	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	body["requestId"] = requestID

	return json.Marshal(body)
}

func backoffFor(tool *Tool) retry.Backoff {
	var b retry.Backoff
	switch tool.Backoff {
	case BackoffExponential:
		b = retry.WithCappedDuration(10*time.Second, retry.NewExponential(2*time.Second))
	default:
		b = retry.NewConstant(2 * time.Second)
	}

	maxRetries := 0
	if tool.MaxAttempts > 1 {
		maxRetries = tool.MaxAttempts - 1
	}
	return retry.WithMaxRetries(uint64(maxRetries), b)
}

// normalize decodes the webhook body into a single result object. Webhooks
// answer in three shapes: a bare object, an array wrapping the object, or
// either of those with the object nested under an "output" field. The
// unwrapping happens here once so no consumer re-implements it.
func normalize(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyResponse
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, ErrInvalidJSON
	}

	if arr, ok := decoded.([]any); ok {
		if len(arr) == 0 {
			return nil, ErrEmptyResponse
		}
		decoded = arr[0]
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, ErrInvalidJSON
	}

	if output, ok := obj["output"].(map[string]any); ok {
		obj = output
	}

	return obj, nil
}

// checkRequiredKeys enforces the uniform minimum-validation policy: tools
// with declared keys must have all of them present and non-nil; tools
// without declared keys must at least return a non-empty object.
func checkRequiredKeys(tool *Tool, data map[string]any) error {
	if len(tool.RequiredKeys) == 0 {
		if len(data) == 0 {
			return ErrEmptyResult
		}
		return nil
	}

	var missing []string
	for _, key := range tool.RequiredKeys {
		if value, ok := data[key]; !ok || value == nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Tool: tool.Name, Keys: missing}
	}

	return nil
}
