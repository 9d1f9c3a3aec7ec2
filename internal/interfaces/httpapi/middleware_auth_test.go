package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAuth_AttachesPrincipal(t *testing.T) {
	t.Parallel()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := requirePrincipal(r.Context())
		if err != nil {
			t.Errorf("principal missing: %v", err)
		}
		gotUserID = p.UserID
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "valid bearer", header: "Bearer user-42", wantStatus: http.StatusNoContent, wantUser: "42"},
		{name: "case insensitive scheme", header: "bearer user-7", wantStatus: http.StatusNoContent, wantUser: "7"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/v1/entries/1/picks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			RequireAuth(tokenVerifier{}, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tt.wantStatus)
			}
			if gotUserID != tt.wantUser {
				t.Fatalf("unexpected user: got=%q want=%q", gotUserID, tt.wantUser)
			}
		})
	}
}

func TestRequireInternalJobToken_NotConfigured(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/analytics", nil)
	req.Header.Set("X-Internal-Job-Token", "anything")
	rec := httptest.NewRecorder()
	RequireInternalJobToken("  ", next).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestNormalizeIP(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"203.0.113.7, 10.0.0.1": "203.0.113.7",
		"198.51.100.2:5123":     "198.51.100.2",
		"[2001:db8::1]:443":     "2001:db8::1",
		"not-an-ip":             "",
		"":                      "",
	}
	for in, want := range tests {
		if got := normalizeIP(in); got != want {
			t.Fatalf("normalizeIP(%q): got=%q want=%q", in, got, want)
		}
	}
}
