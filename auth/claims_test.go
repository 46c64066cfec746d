package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestIsJWTLike(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"opaque-token", false},
		{"a.b", false},
		{"a.b.c", true},
		{"  a.b.c  ", true},
	}
	for _, tc := range cases {
		if got := IsJWTLike(tc.token); got != tc.want {
			t.Fatalf("IsJWTLike(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestDecodeClaims(t *testing.T) {
	token := makeToken(t, map[string]any{
		"uid": "d2f1b7a0-0000-4000-8000-000000000001",
		"unm": "marco",
		"sub": "d2f1b7a0-0000-4000-8000-000000000001",
	})
	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != "d2f1b7a0-0000-4000-8000-000000000001" {
		t.Fatalf("unexpected uid %q", claims.UserID)
	}
	if claims.Username != "marco" {
		t.Fatalf("unexpected unm %q", claims.Username)
	}
}

func TestDecodeClaimsNotAJWT(t *testing.T) {
	if _, err := DecodeClaims("opaque-token"); !errors.Is(err, ErrNotAJWT) {
		t.Fatalf("expected ErrNotAJWT, got %v", err)
	}
}

func TestDecodeClaimsGarbagePayload(t *testing.T) {
	if _, err := DecodeClaims("not.base64!.payload"); err == nil {
		t.Fatal("expected decode error")
	}
}
