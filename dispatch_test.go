package underboss

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/underboss/underboss-go/testutil"
)

// newOfflineClient returns a client whose transport counts requests; the
// base URL points nowhere so any attempted call would fail loudly.
func newOfflineClient(t *testing.T) (*Client, *testutil.CountingTransport) {
	t.Helper()
	counter := testutil.NewCountingTransport(nil)
	client, err := NewClient(Config{
		BaseURL:    "http://underboss.invalid",
		HTTPClient: &http.Client{Transport: counter},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, counter
}

func TestDispatchUnknownEndpoint(t *testing.T) {
	client, counter := newOfflineClient(t)
	_, err := client.Dispatch(context.Background(), "paps.frobnicate", nil)
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Category != CategoryUnknown {
		t.Fatalf("expected unknown category, got %s", nerr.Category)
	}
	var unknown *UnknownEndpointError
	if !errors.As(err, &unknown) {
		t.Fatalf("cause should be UnknownEndpointError, got %v", err)
	}
	if counter.Calls() != 0 {
		t.Fatalf("expected no network calls, got %d", counter.Calls())
	}
}

func TestDispatchAuthPrecheckSkipsNetwork(t *testing.T) {
	client, counter := newOfflineClient(t)
	_, err := client.Dispatch(context.Background(), "paps.create", validPapsCreate())
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Category != CategoryAuthentication {
		t.Fatalf("expected authentication category, got %s", nerr.Category)
	}
	if nerr.StatusCode != 0 {
		t.Fatalf("expected status 0 before network, got %d", nerr.StatusCode)
	}
	if counter.Calls() != 0 {
		t.Fatalf("expected no network calls, got %d", counter.Calls())
	}
}

func TestDispatchValidationSkipsNetwork(t *testing.T) {
	client, counter := newOfflineClient(t)
	client.Session().setIdentity(testValidID)
	req := validPapsCreate()
	req.Title = "Hi"
	_, err := client.Dispatch(context.Background(), "paps.create", req)
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Category != CategoryValidation {
		t.Fatalf("expected validation category, got %s", nerr.Category)
	}
	if nerr.Message != "Title must be at least 5 characters" {
		t.Fatalf("unexpected message %q", nerr.Message)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("cause should be ValidationError, got %v", err)
	}
	if counter.Calls() != 0 {
		t.Fatalf("expected no network calls, got %d", counter.Calls())
	}
}

func TestDispatchMissingPathParameterSkipsNetwork(t *testing.T) {
	client, counter := newOfflineClient(t)
	_, err := client.Dispatch(context.Background(), "paps.get", nil)
	var missing *MissingPathParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingPathParameterError cause, got %v", err)
	}
	if missing.Parameter != "paps_id" {
		t.Fatalf("unexpected parameter %q", missing.Parameter)
	}
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Category != CategoryValidation {
		t.Fatalf("expected validation category, got %s", nerr.Category)
	}
	if counter.Calls() != 0 {
		t.Fatalf("expected no network calls, got %d", counter.Calls())
	}
}

func TestDispatchStatusCategoryMapping(t *testing.T) {
	cases := []struct {
		status   int
		category Category
	}{
		{400, CategoryValidation},
		{401, CategoryAuthentication},
		{403, CategoryAuthorization},
		{404, CategoryNotFound},
		{409, CategoryConflict},
		{413, CategoryFileError},
		{415, CategoryFileError},
		{418, CategoryUnknown},
		{500, CategoryServerError},
		{503, CategoryServerError},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			client := newTestClient(t, srv)
			_, err := client.Dispatch(context.Background(), "paps.get", Fields{"paps_id": testPapsID.String()})
			var nerr *NormalizedError
			if !errors.As(err, &nerr) {
				t.Fatalf("expected NormalizedError, got %v", err)
			}
			if nerr.Category != tc.category {
				t.Fatalf("status %d: expected %s, got %s", tc.status, tc.category, nerr.Category)
			}
			if nerr.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, nerr.StatusCode)
			}
			if nerr.Endpoint != "paps.get" {
				t.Fatalf("expected endpoint paps.get, got %q", nerr.Endpoint)
			}
		})
	}
}

func TestDispatchPrefersServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"message":"Username already taken"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Dispatch(context.Background(), "register", RegisterRequest{
		Username: "mario", Email: "mario@example.com", Password: "supersecret",
	})
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Message != "Username already taken" {
		t.Fatalf("expected server message, got %q", nerr.Message)
	}
	if nerr.Category != CategoryConflict {
		t.Fatalf("expected conflict, got %s", nerr.Category)
	}
}

func TestDispatchFallbackMessageOnEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Dispatch(context.Background(), "paps.list", nil)
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Message != CategoryMessage(CategoryServerError) {
		t.Fatalf("expected category fallback message, got %q", nerr.Message)
	}
}

func TestDispatchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, srv)
	srv.Close() // connection refused from here on

	_, err := client.Dispatch(context.Background(), "paps.list", nil)
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", err)
	}
	if nerr.Category != CategoryNetworkError {
		t.Fatalf("expected network_error, got %s", nerr.Category)
	}
	if nerr.StatusCode != 0 {
		t.Fatalf("expected status 0, got %d", nerr.StatusCode)
	}
}

func TestDispatchRoutesQueryAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path != "/paps" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("status") != "open" || r.URL.Query().Get("search") != "lawn" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"paps":[],"total_count":0}`))
		case http.MethodPost:
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			if _, ok := body["paps_id"]; ok {
				t.Error("path parameter leaked into request body")
			}
			if body["body"] != "nice work" {
				t.Errorf("unexpected body %v", body)
			}
			_, _ = w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	if _, err := client.Dispatch(context.Background(), "paps.list", PapsListFilter{Status: PapsStatusOpen, Search: "lawn"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := client.Dispatch(context.Background(), "comments.create", CommentCreateRequest{PapsID: testPapsID, Body: "nice work"}); err != nil {
		t.Fatalf("comment: %v", err)
	}
}

func TestDispatchAttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("unexpected authorization header %q", got)
		}
		_, _ = w.Write([]byte(`{"paps":[],"total_count":0}`))
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	if _, err := client.Dispatch(context.Background(), "paps.list", nil); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}

func TestDispatchOptionalAuthWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("unexpected authorization header on logged-out request")
		}
		_, _ = w.Write([]byte(`{"paps":[],"total_count":0}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	if _, err := client.Dispatch(context.Background(), "paps.list", nil); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}
