package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/easyevent/api/internal/application"
	"github.com/easyevent/api/internal/domain/entity"
	"github.com/easyevent/api/pkg/helpers"
)

func newTestUserService(t *testing.T) (*application.UserService, *memStore) {
	t.Helper()
	store := newMemStore()
	// Use cost 4 for fast tests.
	svc := application.NewUserService(memUserRepo{store}, helpers.NewHasher(4), nil)
	return svc, store
}

func TestUserService_CreateUser_Success(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, application.CreateUserParams{Email: "a@b.com", Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "a@b.com" {
		t.Fatalf("expected email a@b.com, got %s", user.Email)
	}
	if user.Password != "" {
		t.Fatal("expected password to be cleared in the returned user")
	}

	stored, err := memUserRepo{store}.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Password == "secret" {
		t.Fatal("stored password must not equal the plaintext")
	}
	if !helpers.CompareHashAndPassword(stored.Password, "secret") {
		t.Fatal("stored hash does not verify against the plaintext")
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, application.CreateUserParams{Email: "dup@b.com", Password: "one"}); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	_, err := svc.CreateUser(ctx, application.CreateUserParams{Email: "dup@b.com", Password: "two"})
	if !errors.Is(err, entity.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected 1 stored user after duplicate rejection, got %d", len(store.users))
	}
}

func TestUserService_CreateUser_InvalidInput(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		params application.CreateUserParams
	}{
		{"missing email", application.CreateUserParams{Password: "secret"}},
		{"malformed email", application.CreateUserParams{Email: "not-an-email", Password: "secret"}},
		{"missing password", application.CreateUserParams{Email: "a@b.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateUser(ctx, tc.params); !errors.Is(err, entity.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserService_CreateUser_HashesDiffer(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()

	u1, err := svc.CreateUser(ctx, application.CreateUserParams{Email: "one@b.com", Password: "same"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	u2, err := svc.CreateUser(ctx, application.CreateUserParams{Email: "two@b.com", Password: "same"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	s1, _ := memUserRepo{store}.FindByID(ctx, u1.ID)
	s2, _ := memUserRepo{store}.FindByID(ctx, u2.ID)
	if s1.Password == s2.Password {
		t.Fatal("identical plaintexts must produce different salted hashes")
	}
}
