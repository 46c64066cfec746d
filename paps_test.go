package underboss

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPapsListFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("status") != "open" || q.Get("max_distance") != "5" || q.Get("min_price") != "10.5" || q.Get("search") != "garden" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(PapsPage{
			Paps:       []Paps{{ID: testPapsID, Title: "Mow the lawn", Status: PapsStatusOpen}},
			TotalCount: 1,
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	page, err := client.Paps.List(context.Background(), PapsListFilter{
		Status:      PapsStatusOpen,
		MaxDistance: Float64Ptr(5),
		MinPrice:    Float64Ptr(10.5),
		Search:      "garden",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 1 || len(page.Paps) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Paps[0].ID != testPapsID {
		t.Fatalf("unexpected paps id %s", page.Paps[0].ID)
	}
}

func TestPapsCreateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/paps" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req PapsCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Title != "Mow the lawn" || req.Currency != CurrencyEUR {
			t.Fatalf("unexpected request %+v", req)
		}
		_ = json.NewEncoder(w).Encode(PapsCreateResult{PapsID: testPapsID})
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	result, err := client.Paps.Create(context.Background(), validPapsCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.PapsID != testPapsID {
		t.Fatalf("unexpected id %s", result.PapsID)
	}
}

func TestPapsCreateShortTitle(t *testing.T) {
	client, counter := newOfflineClient(t)
	client.Session().setIdentity(testValidID)
	req := validPapsCreate()
	req.Title = "Hi"
	_, err := client.Paps.Create(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Title must be at least 5 characters") {
		t.Fatalf("unexpected error %v", err)
	}
	if counter.Calls() != 0 {
		t.Fatalf("expected no network calls, got %d", counter.Calls())
	}
}

func TestPapsCreateNegativePayment(t *testing.T) {
	client, _ := newOfflineClient(t)
	client.Session().setIdentity(testValidID)
	req := validPapsCreate()
	req.PaymentAmount = -5
	_, err := client.Paps.Create(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Payment amount must be greater than 0") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestPapsGetAndDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/paps/" + testPapsID.String()
		if r.URL.Path != want {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(Paps{ID: testPapsID, Title: "Mow the lawn"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	paps, err := client.Paps.Get(context.Background(), testPapsID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if paps.Title != "Mow the lawn" {
		t.Fatalf("unexpected paps %+v", paps)
	}
	if err := client.Paps.Delete(context.Background(), testPapsID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

// A failed media upload after a successful create reports the partial
// failure without rolling back the posting.
func TestCreateWithMediaPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/paps":
			_ = json.NewEncoder(w).Encode(PapsCreateResult{PapsID: testPapsID})
		case "/paps/" + testPapsID.String() + "/media":
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	files := []MediaFile{{Name: "lawn.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpegbytes")}}
	result, err := client.Paps.CreateWithMedia(context.Background(), validPapsCreate(), files)
	if err != nil {
		t.Fatalf("primary create must succeed: %v", err)
	}
	if result.PapsID != testPapsID {
		t.Fatalf("unexpected id %s", result.PapsID)
	}
	if result.MediaErr == nil {
		t.Fatal("expected media error to be reported")
	}
	var nerr *NormalizedError
	if !errors.As(result.MediaErr, &nerr) {
		t.Fatalf("expected NormalizedError, got %v", result.MediaErr)
	}
	if nerr.Category != CategoryFileError {
		t.Fatalf("expected file_error, got %s", nerr.Category)
	}
}

func TestCreateWithMediaAllGood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/paps":
			_ = json.NewEncoder(w).Encode(PapsCreateResult{PapsID: testPapsID})
		case "/paps/" + testPapsID.String() + "/media":
			_ = json.NewEncoder(w).Encode(MediaUploadResult{Uploaded: []Media{{PapsID: testPapsID}}, Count: 1})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := newAuthedClient(t, srv)
	files := []MediaFile{{Name: "lawn.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpegbytes")}}
	result, err := client.Paps.CreateWithMedia(context.Background(), validPapsCreate(), files)
	if err != nil {
		t.Fatalf("create with media: %v", err)
	}
	if result.MediaErr != nil {
		t.Fatalf("unexpected media error %v", result.MediaErr)
	}
	if result.Media == nil || result.Media.Count != 1 {
		t.Fatalf("unexpected media result %+v", result.Media)
	}
}
