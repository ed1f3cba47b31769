package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

type stubAdminRepo struct {
	admins  map[string]*domain.Admin
	nextErr error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if r.nextErr != nil {
		return nil, r.nextErr
	}
	if _, exists := r.admins[admin.Email]; exists {
		return nil, domain.ErrAdminExists
	}
	copy := cloneAdmin(admin)
	copy.ID = "id-" + admin.Email
	r.admins[copy.Email] = cloneAdmin(copy)
	return cloneAdmin(copy), nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(a), nil
}

type stubSessionStore struct {
	sessions  map[string]*domain.Session
	createErr error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

func newAuthService(repo ports.AdminRepository, sessions ports.SessionStore) *AuthService {
	return NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAdminRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	admin, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:          "Alice",
		StoreLocation: "Downtown",
		PhoneNo:       "5550001",
		PinCode:       "110001",
		Email:         "alice@example.com",
		Password:      "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if admin == nil {
		t.Fatalf("expected admin, got nil")
	}
	if admin.StoreID == "" {
		t.Fatalf("expected generated store id")
	}
	if admin.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Password: "p"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing email, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@y.com"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing password, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubSessionStore())

	in := ports.RegisterInput{Email: "bob@example.com", Password: "pass"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); err != domain.ErrAdminExists {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAdminRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, admin, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if admin == nil || admin.Email != "carol@example.com" {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	session, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if session.Email != "carol@example.com" {
		t.Fatalf("unexpected session identity: %+v", session)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubSessionStore())

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "dave@example.com", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_AdminNotFound(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubSessionStore())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrAdminNotFound {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	repo := newStubAdminRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	_, token, err := svc.Register(context.Background(), ports.RegisterInput{Email: "eve@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.Logout(context.Background(), token)

	if _, err := svc.Resolve(context.Background(), token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestAuthService_Logout_SwallowsErrors(t *testing.T) {
	repo := newStubAdminRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	_, token, err := svc.Register(context.Background(), ports.RegisterInput{Email: "frank@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Destroy failures are logged, never returned. The session stays live,
	// but the caller was still told logout succeeded elsewhere.
	sessions.deleteErr = errors.New("redis down")
	svc.Logout(context.Background(), token)

	// A garbage token must not panic either.
	svc.Logout(context.Background(), "not-a-token")
}

func TestAuthService_Resolve_BadToken(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubSessionStore())

	if _, err := svc.Resolve(context.Background(), "garbage"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_Resolve_WrongSecret(t *testing.T) {
	sessions := newStubSessionStore()
	repo := newStubAdminRepo()
	svc := newAuthService(repo, sessions)

	_, token, err := svc.Register(context.Background(), ports.RegisterInput{Email: "gina@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	other := NewAuthService(repo, sessions, "different-secret", time.Hour, zerolog.Nop())
	if _, err := other.Resolve(context.Background(), token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for foreign signature, got %v", err)
	}
}
