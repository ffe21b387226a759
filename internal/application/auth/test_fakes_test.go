package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mangodesk/summary-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeAccounts struct {
	mu sync.Mutex

	byEmail map[string]domain.Account

	// injected errors (if set, method returns error)
	getErr         error
	createErr      error
	setVerifiedErr error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]domain.Account{}}
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Account{}, f.getErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccounts) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Account{}, f.createErr
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return domain.Account{}, domain.ErrEmailAlreadyRegistered()
	}
	f.byEmail[a.Email] = a
	return a, nil
}

func (f *fakeAccounts) SetVerified(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setVerifiedErr != nil {
		return f.setVerifiedErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return domain.ErrAccountNotFound()
	}
	a.Verified = true
	a.VerificationToken = ""
	f.byEmail[email] = a
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// fakeTokens issues "tok|<purpose>|<email>" so tests can read tokens
// back without real signing.
type fakeTokens struct {
	issueErr  error
	verifyErr error

	issued []struct {
		Email   string
		Purpose TokenPurpose
		TTL     time.Duration
	}
}

func (f *fakeTokens) Issue(email string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.issued = append(f.issued, struct {
		Email   string
		Purpose TokenPurpose
		TTL     time.Duration
	}{email, purpose, ttl})
	return fmt.Sprintf("tok|%s|%s", purpose, email), nil
}

func (f *fakeTokens) Verify(token string, purpose TokenPurpose) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	parts := strings.SplitN(token, "|", 3)
	if len(parts) != 3 || parts[0] != "tok" || parts[1] != string(purpose) {
		return "", domain.ErrTokenInvalid()
	}
	return parts[2], nil
}

type fakeMail struct {
	sendErr error

	sent []struct {
		To   string
		Link string
	}
}

func (f *fakeMail) SendVerification(ctx context.Context, to, link string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, struct {
		To   string
		Link string
	}{to, link})
	return nil
}

/*
Wiring helpers
*/

func newSvcForTest(t *testing.T) (*Service, *fakeAccounts, *fakeHasher, *fakeTokens, *fakeMail) {
	t.Helper()

	accounts := newFakeAccounts()
	hasher := &fakeHasher{}
	tokens := &fakeTokens{}
	mailer := &fakeMail{}

	svc := NewService(accounts, hasher, tokens, mailer, Config{
		TokenTTL:      24 * time.Hour,
		PublicBaseURL: "https://summaries.example.com",
	})
	return svc, accounts, hasher, tokens, mailer
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}
