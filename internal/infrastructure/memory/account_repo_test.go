package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/mangodesk/summary-service/internal/domain"
)

func TestCreate_ThenGet_RoundTrips(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()
	a := domain.Account{Email: "a@x.com", PasswordHash: "hash", VerificationToken: "tok"}

	if _, err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("create err: %v", err)
	}

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
}

func TestGetByEmail_Unknown_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	if !domain.Is(err, "account_not_found") {
		t.Fatalf("expected account_not_found, got %v", err)
	}
}

func TestCreate_Duplicate_Conflicts(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()
	if _, err := repo.Create(context.Background(), domain.Account{Email: "a@x.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := repo.Create(context.Background(), domain.Account{Email: "a@x.com"})
	if !domain.Is(err, "email_already_registered") {
		t.Fatalf("expected email_already_registered, got %v", err)
	}
}

func TestSetVerified_SetsFlagAndClearsToken(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()
	if _, err := repo.Create(context.Background(), domain.Account{Email: "a@x.com", VerificationToken: "tok"}); err != nil {
		t.Fatalf("create err: %v", err)
	}

	if err := repo.SetVerified(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("set verified err: %v", err)
	}

	got, _ := repo.GetByEmail(context.Background(), "a@x.com")
	if !got.Verified || got.VerificationToken != "" {
		t.Fatalf("expected verified with cleared token, got %+v", got)
	}
}

func TestSetVerified_Unknown_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()

	err := repo.SetVerified(context.Background(), "ghost@x.com")
	if !domain.Is(err, "account_not_found") {
		t.Fatalf("expected account_not_found, got %v", err)
	}
}

func TestConcurrentCreates_AllDistinctSucceed(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepo()
	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}

	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			if _, err := repo.Create(context.Background(), domain.Account{Email: email}); err != nil {
				t.Errorf("create %s: %v", email, err)
			}
		}(email)
	}
	wg.Wait()

	for _, email := range emails {
		if _, err := repo.GetByEmail(context.Background(), email); err != nil {
			t.Fatalf("get %s: %v", email, err)
		}
	}
}
