package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims represents session token claims. The registered ID (jti) is the session id.
type AuthClaims struct {
	EmployeeID string `json:"employee_id" example:"7f6c1c9e-8b0e-4bb8-9d4b-1b2f7d1a2c3d"`
	Email      string `json:"email" example:"ivanov@example.com"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ivanov@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents a successful sign-in
type LoginResponse struct {
	AccessToken      string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string      `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64       `json:"expiresInSeconds" example:"43200"`
	Profile          UserProfile `json:"profile"`
}

// UserProfile identifies the signed-in employee
type UserProfile struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthService signs employees in and out and resolves session tokens
type AuthService struct {
	config    *AuthConfig
	employees repository.EmployeeRepositoryInterface
	sessions  SessionStore
	now       func() time.Time

	hooksMu   sync.RWMutex
	onSignOut []func(sessionID string)
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, employees repository.EmployeeRepositoryInterface, sessions SessionStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if sessions == nil {
		sessions = NewMemoryStore()
	}
	return &AuthService{
		config:    config,
		employees: employees,
		sessions:  sessions,
		now:       time.Now,
	}, nil
}

// OnSignOut registers fn to run with the session id whenever a session signs out
func (s *AuthService) OnSignOut(fn func(sessionID string)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onSignOut = append(s.onSignOut, fn)
}

// Login verifies credentials, signs a new session in and issues its token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.WithContext(ctx).WithField("email", email).Warn("Login with unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if employee.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		logger.WithContext(ctx).WithField("employee", employee.ID.String()).Warn("Login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	session := newSession(uuid.NewString(), s.now)
	session.SignIn(employee.ID, s.now().Add(s.config.TokenTTL))
	if err := s.sessions.Save(ctx, session.record()); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.GenerateJWT(session, employee.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employee": employee.ID.String(),
		"session":  session.ID(),
	}).Info("Employee signed in")

	return &LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL / time.Second),
		Profile: UserProfile{
			EmployeeID: employee.ID.String(),
			Email:      employee.Email,
			FullName:   employee.FullName,
		},
	}, nil
}

// Logout signs the session out, forgets it and notifies sign-out hooks
func (s *AuthService) Logout(ctx context.Context, session *Session) error {
	session.SignOut()
	if err := s.sessions.Delete(ctx, session.ID()); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	s.hooksMu.RLock()
	hooks := append([]func(string){}, s.onSignOut...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(session.ID())
	}

	logger.WithContext(ctx).WithField("session", session.ID()).Info("Employee signed out")
	return nil
}

// Authenticate validates a token and returns its signed-in session
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*Session, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}

	rec, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if rec.EmployeeID.String() != claims.EmployeeID {
		return nil, apperrors.ErrSessionExpired
	}

	session := newSession(rec.ID, s.now)
	session.SignIn(rec.EmployeeID, rec.ExpiresAt)
	return session, nil
}

// GenerateJWT creates a token for a signed-in session
func (s *AuthService) GenerateJWT(session *Session, email string) (string, error) {
	employeeID, ok := session.EmployeeID()
	if !ok {
		return "", apperrors.ErrNoSession
	}

	now := s.now()
	claims := &AuthClaims{
		EmployeeID: employeeID.String(),
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID(),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt()),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   employeeID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	return claims, nil
}
