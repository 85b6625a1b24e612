package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitweek/internal/pkg/jwtutil"
)

const testSecret = "test-secret"

func newTestAuthService() (*AuthService, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	return NewAuthService(users, sessions, testSecret, time.Hour), users, sessions
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.Token == "" {
		t.Error("register returned no token")
	}
	if reg.Next != NextProfileSetup {
		t.Errorf("fresh account should land on profile setup, got %q", reg.Next)
	}

	login, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login resolved user %d, want %d", login.User.ID, reg.User.ID)
	}

	claims, err := jwtutil.ParseToken(testSecret, login.Token)
	if err != nil {
		t.Fatalf("login token does not parse: %v", err)
	}
	if claims.UserID != reg.User.ID || claims.SessionID == "" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "supersecret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("want ErrInvalidCredential, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "supersecret"})
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("want ErrInvalidCredential, got %v", err)
	}
}

func TestUsernameIsCaseSensitive(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "Alice", Password: "supersecret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "supersecret"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("lowercase login against uppercase account: want ErrInvalidCredential, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "supersecret"}); err != nil {
		t.Errorf("distinct-case username should register: %v", err)
	}
}

func TestRegisterDuplicateLeavesRecordUntouched(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "firstsecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	originalHash := first.User.PasswordHash

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Password: "othersecret"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("want ErrUsernameExists, got %v", err)
	}

	stored, _ := users.GetByUsername("alice")
	if stored.PasswordHash != originalHash {
		t.Error("duplicate register altered the existing record")
	}
	if len(users.byID) != 1 {
		t.Errorf("duplicate register created a record, have %d users", len(users.byID))
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	tests := []RegisterInput{
		{Username: "", Password: "supersecret"},
		{Username: "alice", Password: ""},
		{Username: "alice", Password: "short"},
		{Username: "   ", Password: "supersecret"},
	}
	for _, input := range tests {
		if _, err := svc.Register(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Register(%+v): want ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := jwtutil.ParseToken(testSecret, reg.Token)
	if err != nil {
		t.Fatalf("token parse failed: %v", err)
	}

	alive, _ := sessions.Exists(ctx, claims.SessionID)
	if !alive {
		t.Fatal("session missing right after register")
	}

	if err := svc.Logout(ctx, claims.SessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	alive, _ = sessions.Exists(ctx, claims.SessionID)
	if alive {
		t.Error("session still alive after logout")
	}

	// Logout is idempotent.
	if err := svc.Logout(ctx, claims.SessionID); err != nil {
		t.Errorf("second logout failed: %v", err)
	}
}

func TestLoginNextDependsOnOnboarding(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, _ := users.GetByID(reg.User.ID)
	stored.Onboarded = true
	if err := users.Save(stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	login, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.Next != NextDashboard {
		t.Errorf("onboarded user should land on the dashboard, got %q", login.Next)
	}
}
