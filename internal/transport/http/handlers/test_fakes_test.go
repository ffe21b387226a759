package http_handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mangodesk/summary-service/internal/application/auth"
	"github.com/mangodesk/summary-service/internal/application/summary"
	"github.com/mangodesk/summary-service/internal/infrastructure/memory"
	"github.com/mangodesk/summary-service/internal/infrastructure/security"
	"github.com/mangodesk/summary-service/internal/transport/http/middleware"
	"github.com/mangodesk/summary-service/internal/transport/http/response"
	"github.com/mangodesk/summary-service/internal/transport/http/router"
)

// fakeMail stands in for SMTP on both its surfaces and records what
// flowed through.
type fakeMail struct {
	mu sync.Mutex

	verifyErr  error
	summaryErr error

	lastVerifyTo   string
	lastVerifyLink string

	lastRecipients []string
	lastSummary    string
}

func (f *fakeMail) SendVerification(ctx context.Context, to, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.lastVerifyTo = to
	f.lastVerifyLink = link
	return nil
}

func (f *fakeMail) SendSummary(ctx context.Context, recipients []string, summaryText string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.summaryErr != nil {
		return f.summaryErr
	}
	f.lastRecipients = append([]string(nil), recipients...)
	f.lastSummary = summaryText
	return nil
}

type fakeGenerator struct {
	out string
	err error

	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

// testEnv is a fully wired HTTP surface over in-memory adapters and a
// real JWT signer. Only the outbound collaborators are faked.
type testEnv struct {
	srv    *httptest.Server
	mail   *fakeMail
	gen    *fakeGenerator
	tokens *security.JWTTokens
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mail := &fakeMail{}
	gen := &fakeGenerator{out: "generated summary"}
	tokens := security.NewJWTTokens("test-secret", "summary-service")

	authSvc := auth.NewService(
		memory.NewAccountRepo(),
		security.NewBcryptHasher(bcrypt.MinCost),
		tokens,
		mail,
		auth.Config{TokenTTL: time.Hour, PublicBaseURL: "http://localhost:8080"},
	)
	summarySvc := summary.NewService(gen, mail)

	h, err := router.New(router.Deps{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(authSvc),
		Summary:      NewSummaryHandler(summarySvc),
		AuthMW:       middleware.Auth(tokens, response.WriteUnauthorized),
		MaxBodyBytes: 2 << 20,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, mail: mail, gen: gen, tokens: tokens}
}

func (e *testEnv) postJSON(t *testing.T, path, body, bearer string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := e.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := e.srv.Client().Get(e.srv.URL + path)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// requireErrResp asserts status and error code of a JSON error body.
func requireErrResp(t *testing.T, resp *http.Response, status int, code string) response.ErrorBody {
	t.Helper()

	if resp.StatusCode != status {
		t.Fatalf("status = %d, want %d", resp.StatusCode, status)
	}
	body := decodeJSON[response.ErrorBody](t, resp)
	if body.Code != code {
		t.Fatalf("error code = %q, want %q", body.Code, code)
	}
	return body
}

// register creates and optionally verifies an account through the real
// endpoints, returning the emailed verification token.
func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()

	resp := e.postJSON(t, "/register", `{"email":"`+email+`","password":"`+password+`"}`, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	e.mail.mu.Lock()
	link := e.mail.lastVerifyLink
	e.mail.mu.Unlock()

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse verification link %q: %v", link, err)
	}
	token := u.Query().Get("token")
	if token == "" {
		t.Fatalf("verification link %q has no token", link)
	}
	return token
}
