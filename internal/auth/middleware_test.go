package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (dom.User, error)
	calls       int
}

func (m *mockUserRepo) Create(context.Context, string, string, string) (dom.User, error) {
	return dom.User{}, nil
}

func (m *mockUserRepo) GetByEmail(context.Context, string) (dom.User, error) {
	return dom.User{}, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return dom.User{}, pgx.ErrNoRows
}

type gateFixture struct {
	codec  *token.Codec
	users  *mockUserRepo
	router *gin.Engine
	hits   int
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &gateFixture{
		codec: token.NewCodec("test-secret", time.Hour),
		users: &mockUserRepo{},
	}
	f.users.GetByIDFunc = func(_ context.Context, id int64) (dom.User, error) {
		if id == 42 {
			return dom.User{ID: 42, Username: "alice", Email: "a@x.com", PasswordHash: "hash"}, nil
		}
		return dom.User{}, pgx.ErrNoRows
	}
	f.router = gin.New()
	f.router.GET("/protected", RequireAuth(f.codec, f.users), func(c *gin.Context) {
		f.hits++
		u, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity attached"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username, "hash": u.PasswordHash})
	})
	return f
}

func (f *gateFixture) request(t *testing.T, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGateRejectsMissingToken(t *testing.T) {
	f := newGateFixture(t)
	w := f.request(t, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if f.hits != 0 {
		t.Error("downstream handler ran without a token")
	}
	if f.users.calls != 0 {
		t.Error("user store queried for a missing token")
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	f := newGateFixture(t)
	expired, err := token.NewCodec("test-secret", -time.Minute).Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := f.request(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: expired})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if f.hits != 0 {
		t.Error("downstream handler ran with an expired token")
	}
	if f.users.calls != 0 {
		t.Error("user store queried for an expired token")
	}
}

func TestGateRejectsGarbageToken(t *testing.T) {
	f := newGateFixture(t)
	w := f.request(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if f.hits != 0 {
		t.Error("downstream handler ran with a garbage token")
	}
}

func TestGateRejectsVanishedSubject(t *testing.T) {
	f := newGateFixture(t)
	signed, err := f.codec.Issue(7) // no such user
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := f.request(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 (same class as a bad token)", w.Code)
	}
	if f.hits != 0 {
		t.Error("downstream handler ran for a vanished subject")
	}
}

func TestGateAcceptsCookieToken(t *testing.T) {
	f := newGateFixture(t)
	signed, err := f.codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := f.request(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if f.hits != 1 {
		t.Errorf("downstream hits = %d, want 1", f.hits)
	}
}

func TestGateAcceptsBearerFallback(t *testing.T) {
	f := newGateFixture(t)
	signed, err := f.codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := f.request(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestGateStripsPasswordHash(t *testing.T) {
	f := newGateFixture(t)
	signed, err := f.codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := f.request(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// The echo handler prints the attached identity's hash field; the gate
	// must have blanked it before attaching.
	var body struct {
		Hash string `json:"hash"`
	}
	if err := decodeBody(w, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Hash != "" {
		t.Error("password hash leaked into the request identity")
	}
}
