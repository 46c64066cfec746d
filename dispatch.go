package underboss

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Dispatch runs the full lifecycle of one logical API call: resolve the
// endpoint, precheck auth, validate the payload, substitute path parameters,
// perform the HTTP call, run the declared session side effect, and return the
// raw response body.
//
// Every failure is surfaced as exactly one *NormalizedError; no other error
// type escapes. Validation and auth failures never reach the network.
func (c *Client) Dispatch(ctx context.Context, name string, payload any) (json.RawMessage, error) {
	desc, err := c.registry.Resolve(name)
	if err != nil {
		return nil, &NormalizedError{
			Category: CategoryUnknown,
			Endpoint: name,
			Message:  err.Error(),
			cause:    err,
		}
	}
	if desc.RequiresAuth && !c.session.IsAuthenticated() {
		return nil, &NormalizedError{
			Category: CategoryAuthentication,
			Endpoint: name,
			Message:  CategoryMessage(CategoryAuthentication),
		}
	}
	fields, err := payloadFields(payload)
	if err != nil {
		return nil, &NormalizedError{
			Category: CategoryValidation,
			Endpoint: name,
			Message:  err.Error(),
			cause:    err,
		}
	}
	if desc.Validate != nil {
		if verr := desc.Validate(fields); verr != nil {
			return nil, &NormalizedError{
				Category: CategoryValidation,
				Endpoint: name,
				Message:  verr.Message,
				cause:    verr,
			}
		}
	}
	path, remaining, err := expandPath(desc.PathTemplate, fields)
	if err != nil {
		return nil, &NormalizedError{
			Category: CategoryValidation,
			Endpoint: name,
			Message:  err.Error(),
			cause:    err,
		}
	}
	req, err := c.newEndpointRequest(ctx, desc.Method, path, remaining)
	if err != nil {
		return nil, &NormalizedError{
			Category: CategoryUnknown,
			Endpoint: name,
			Message:  err.Error(),
			cause:    err,
		}
	}
	resp, nerr := c.do(req, name)
	if nerr != nil {
		return nil, nerr
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NormalizedError{
			Category: CategoryNetworkError,
			Endpoint: name,
			Message:  "response body could not be read",
			cause:    err,
		}
	}
	if desc.AfterSuccess != nil {
		desc.AfterSuccess(c.session, body)
	}
	return body, nil
}

// dispatchInto dispatches and decodes the response body into out.
func (c *Client) dispatchInto(ctx context.Context, name string, payload, out any) error {
	raw, err := c.Dispatch(ctx, name, payload)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &NormalizedError{
			Category:   CategoryUnknown,
			StatusCode: http.StatusOK,
			Endpoint:   name,
			Message:    "response body could not be decoded",
			cause:      err,
		}
	}
	return nil
}

// do sends a prepared request, applying telemetry hooks and the configured
// retry policy (single attempt unless the caller opted in). On HTTP error
// statuses and transport failures it returns a NormalizedError.
func (c *Client) do(req *http.Request, endpoint string) (*http.Response, *NormalizedError) {
	c.prepare(req)
	var last *NormalizedError
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if delay := c.retry.backoffDelay(attempt); delay > 0 {
			select {
			case <-req.Context().Done():
				return nil, &NormalizedError{
					Category: CategoryNetworkError,
					Endpoint: endpoint,
					Message:  "request cancelled while waiting to retry",
					cause:    req.Context().Err(),
				}
			case <-time.After(delay):
			}
		}
		attemptReq := req
		if attempt > 1 {
			attemptReq = req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, last
				}
				attemptReq.Body = body
			}
		}
		if c.telemetry.OnHTTPRequest != nil {
			c.telemetry.OnHTTPRequest(attemptReq.Context(), attemptReq)
		}
		c.telemetry.log(attemptReq.Context(), LogLevelInfo, "http_request", map[string]any{
			"endpoint": endpoint,
			"method":   attemptReq.Method,
			"url":      attemptReq.URL.String(),
		})
		start := time.Now()
		resp, err := c.httpClient.Do(attemptReq)
		latency := time.Since(start)
		if c.telemetry.OnHTTPResponse != nil {
			c.telemetry.OnHTTPResponse(attemptReq.Context(), attemptReq, resp, err, latency)
		}
		c.telemetry.metric(attemptReq.Context(), "underboss_http_request_latency_ms", float64(latency.Milliseconds()), map[string]string{
			"endpoint": endpoint,
		})
		if err != nil {
			last = &NormalizedError{
				Category: CategoryNetworkError,
				Endpoint: endpoint,
				Message:  CategoryMessage(CategoryNetworkError),
				cause:    err,
			}
			if c.retry.retriable(req.Method) {
				continue
			}
			return nil, last
		}
		if resp.StatusCode >= 400 {
			nerr := decodeAPIError(resp, endpoint)
			_ = resp.Body.Close()
			last = nerr
			if resp.StatusCode >= 500 && c.retry.retriable(req.Method) {
				continue
			}
			return nil, nerr
		}
		return resp, nil
	}
	return nil, last
}
