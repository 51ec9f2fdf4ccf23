package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

func peerStub(t *testing.T, wantMethod, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != wantMethod || r.URL.Path != wantPath {
			t.Errorf("got %s %s, want %s %s", r.Method, r.URL.Path, wantMethod, wantPath)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEnsureUserExists(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind domain.ErrorKind
		wantOK   bool
	}{
		{
			name:   "user exists",
			status: http.StatusOK,
			body:   `{"id":42,"full_name":"John Smith"}`,
			wantOK: true,
		},
		{
			name:     "user missing",
			status:   http.StatusNotFound,
			body:     `{"detail":"invalid user ID 42"}`,
			wantKind: domain.KindInvalidReference,
		},
		{
			name:     "user id rejected",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail":"invalid user ID 42"}`,
			wantKind: domain.KindInvalidReference,
		},
		{
			name:     "peer broken",
			status:   http.StatusInternalServerError,
			body:     `{"detail":"an unknown error occurred"}`,
			wantKind: domain.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := peerStub(t, http.MethodGet, "/api/users/42", tt.status, tt.body)
			c := NewUserClient(srv.URL)

			err := c.EnsureUserExists(context.Background(), 42)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			e := domain.From(err)
			if e.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Status != tt.status {
				t.Errorf("status = %d, want the peer's %d", e.Status, tt.status)
			}
		})
	}
}

func TestEnsureUserExists_PeerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewUserClient(srv.URL)
	err := c.EnsureUserExists(context.Background(), 42)
	e := domain.From(err)
	if e.Kind != domain.KindUpstream {
		t.Fatalf("kind = %v, want upstream", e.Kind)
	}
	if e.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for a transport failure", e.Status)
	}
}
