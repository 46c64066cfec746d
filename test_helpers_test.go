package underboss

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Test fixtures shared across the suite.
var (
	testUserID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testPapsID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testSpapID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	testAsapID  = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	testThread  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	testStamp   = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testToken   = "header.payload.signature"
	testValidID = Identity{Token: "header.payload.signature", UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Username: "mario"}
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Session:    NewSession(),
	})
	if err != nil {
		t.Fatalf("new test client: %v", err)
	}
	return client
}

func newAuthedClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client := newTestClient(t, srv)
	client.Session().setIdentity(testValidID)
	return client
}

func validPapsCreate() PapsCreateRequest {
	return PapsCreateRequest{
		Title:         "Mow the lawn",
		Description:   "Front and back yard, mower provided",
		PaymentAmount: 25,
		Currency:      CurrencyEUR,
	}
}
