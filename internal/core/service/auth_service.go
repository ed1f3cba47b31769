package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hritik-Singh067/crm-backend/internal/core/domain"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// AuthService implements registration, login, logout, and session
// resolution. Session state lives server-side in the SessionStore; the
// token handed to callers is a signed wrapper around the session id, so a
// destroyed session invalidates the token before its expiry.
type AuthService struct {
	admins        ports.AdminRepository
	sessions      ports.SessionStore
	sessionSecret string
	sessionTTL    time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

func NewAuthService(admins ports.AdminRepository, sessions ports.SessionStore, sessionSecret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		admins:        admins,
		sessions:      sessions,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Register creates a new admin identity and establishes a session for it.
// The store identifier is generated here; the caller never supplies it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Admin, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	admin := &domain.Admin{
		Name:          input.Name,
		StoreLocation: input.StoreLocation,
		StoreID:       uuid.NewString(),
		PhoneNo:       input.PhoneNo,
		PinCode:       input.PinCode,
		Email:         input.Email,
		PasswordHash:  string(hash),
		CreatedAt:     s.now().UTC(),
	}

	created, err := s.admins.Create(ctx, admin)
	if err != nil {
		return nil, "", err
	}

	token, err := s.establishSession(ctx, created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", created.Email).Str("store_id", created.StoreID).Msg("admin registered")
	return created, token, nil
}

// Login verifies credentials and establishes a session on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.establishSession(ctx, admin)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// Logout destroys the session behind token. Failures are logged only: the
// caller is told logout succeeded no matter what happened here.
func (s *AuthService) Logout(ctx context.Context, token string) {
	sid, err := s.sessionID(token)
	if err != nil {
		s.logger.Error().Err(err).Msg("logout: bad session token")
		return
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.logger.Error().Err(err).Msg("logout: session destroy failed")
	}
}

// Resolve maps a session token back to its live session record.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sid, err := s.sessionID(token)
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx, sid)
}

func (s *AuthService) establishSession(ctx context.Context, admin *domain.Admin) (string, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		Email:     admin.Email,
		StoreID:   admin.StoreID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": session.ID,
		"exp": s.now().Add(s.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.sessionSecret))
}

// sessionID verifies the token signature and extracts the session id.
func (s *AuthService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
