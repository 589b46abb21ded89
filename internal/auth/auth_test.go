package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

func testConfig() *AuthConfig {
	return &AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Hour}
}

func testEmployee(t *testing.T) *models.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Employee{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FullName:     "Иванов Иван",
		Email:        "ivanov@example.com",
		PasswordHash: string(hash),
	}
}

func newTestService(t *testing.T) (*AuthService, *mocks.MockEmployeeRepositoryInterface, *MemoryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	employees := mocks.NewMockEmployeeRepositoryInterface(ctrl)
	store := NewMemoryStore()
	service, err := NewAuthService(testConfig(), employees, store)
	require.NoError(t, err)
	return service, employees, store
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := (&AuthConfig{TokenTTL: time.Hour}).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		err := (&AuthConfig{JWTSecret: "x"}).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL")
	})

	t.Run("service refuses invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{}, nil, nil)
		assert.Error(t, err)
	})
}

func TestSessionLifecycle(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	session := newSession("s-1", func() time.Time { return now })

	_, ok := session.EmployeeID()
	assert.False(t, ok, "new session is signed out")

	id := uuid.New()
	session.SignIn(id, now.Add(time.Hour))
	got, ok := session.EmployeeID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	now = now.Add(2 * time.Hour)
	_, ok = session.EmployeeID()
	assert.False(t, ok, "expired session has no identifier")

	now = now.Add(-2 * time.Hour)
	session.SignOut()
	got, ok = session.EmployeeID()
	assert.False(t, ok, "signed-out session has no identifier")
	assert.Equal(t, uuid.Nil, got)
	assert.NotEmpty(t, NewSession().ID())
}

func TestLoginAndAuthenticate(t *testing.T) {
	service, employees, _ := newTestService(t)
	employee := testEmployee(t)
	ctx := context.Background()
	employees.EXPECT().GetByEmail(ctx, "ivanov@example.com").Return(employee, nil)

	resp, err := service.Login(ctx, "  Ivanov@Example.com ", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresInSeconds)
	assert.Equal(t, employee.ID.String(), resp.Profile.EmployeeID)
	assert.Equal(t, "Иванов Иван", resp.Profile.FullName)

	claims, err := service.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, employee.ID.String(), claims.EmployeeID)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	session, err := service.Authenticate(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, session.ID())
	id, ok := session.EmployeeID()
	assert.True(t, ok)
	assert.Equal(t, employee.ID, id)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, employees, _ := newTestService(t)
	employee := testEmployee(t)
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		employees.EXPECT().GetByEmail(ctx, employee.Email).Return(employee, nil)
		_, err := service.Login(ctx, employee.Email, "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		employees.EXPECT().GetByEmail(ctx, "nobody@example.com").
			Return(nil, apperrors.NewQueryError("employees", apperrors.ErrRecordNotFound))
		_, err := service.Login(ctx, "nobody@example.com", testPassword)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("employee without password", func(t *testing.T) {
		noPassword := testEmployee(t)
		noPassword.PasswordHash = ""
		employees.EXPECT().GetByEmail(ctx, noPassword.Email).Return(noPassword, nil)
		_, err := service.Login(ctx, noPassword.Email, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		employees.EXPECT().GetByEmail(ctx, employee.Email).Return(nil, errors.New("db failed"))
		_, err := service.Login(ctx, employee.Email, testPassword)
		assert.Error(t, err)
		assert.False(t, apperrors.IsAuthentication(err))
	})
}

func TestLogout(t *testing.T) {
	service, employees, store := newTestService(t)
	employee := testEmployee(t)
	ctx := context.Background()
	employees.EXPECT().GetByEmail(ctx, employee.Email).Return(employee, nil)

	var dropped []string
	service.OnSignOut(func(sessionID string) { dropped = append(dropped, sessionID) })

	resp, err := service.Login(ctx, employee.Email, testPassword)
	require.NoError(t, err)
	session, err := service.Authenticate(ctx, resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, session))

	_, ok := session.EmployeeID()
	assert.False(t, ok)
	assert.Equal(t, []string{session.ID()}, dropped)

	_, err = store.Get(ctx, session.ID())
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	_, err = service.Authenticate(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestValidateJWT(t *testing.T) {
	service, _, _ := newTestService(t)
	session := NewSession()
	session.SignIn(uuid.New(), time.Now().Add(time.Hour))

	token, err := service.GenerateJWT(session, "ivanov@example.com")
	require.NoError(t, err)

	t.Run("foreign signing key", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", TokenTTL: time.Hour}, nil, nil)
		require.NoError(t, err)
		_, err = other.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { service.now = time.Now }()
		_, err := service.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("signed-out session cannot get a token", func(t *testing.T) {
		session.SignOut()
		_, err := service.GenerateJWT(session, "ivanov@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNoSession)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	rec := SessionRecord{ID: "s-1", EmployeeID: uuid.New(), ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestMemoryStoreForgetsExpiredSessionsOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		require.NoError(t, store.Save(ctx, SessionRecord{
			ID:         fmt.Sprintf("short-%d", i),
			EmployeeID: uuid.New(),
			ExpiresAt:  now.Add(time.Millisecond),
		}))
	}
	require.NoError(t, store.Save(ctx, SessionRecord{ID: "long", EmployeeID: uuid.New(), ExpiresAt: now.Add(time.Hour)}))
	assert.Len(t, store.sessions, 1001)

	now = now.Add(time.Second)
	require.NoError(t, store.Save(ctx, SessionRecord{ID: "fresh", EmployeeID: uuid.New(), ExpiresAt: now.Add(time.Hour)}))

	assert.Len(t, store.sessions, 2)
	_, err := store.Get(ctx, "long")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, employees, _ := newTestService(t)
	employee := testEmployee(t)
	employees.EXPECT().GetByEmail(gomock.Any(), employee.Email).Return(employee, nil)
	resp, err := service.Login(context.Background(), employee.Email, testPassword)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		id, ok := GetEmployeeID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"employeeId": id.String()})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + resp.AccessToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + resp.AccessToken, http.StatusUnauthorized},
		{"invalid token", "Bearer invalid", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, employee.ID.String(), body["employeeId"])
			}
		})
	}
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, employees, _ := newTestService(t)
	employee := testEmployee(t)
	employees.EXPECT().GetByEmail(gomock.Any(), employee.Email).Return(employee, nil).AnyTimes()

	handler := NewAuthHandler(service)
	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	router.POST("/api/auth/logout", NewAuthMiddleware(service).RequireAuth(), handler.Logout)

	post := func(path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := post("/api/auth/login", `{"email":"ivanov@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post("/api/auth/login", `{"email":"ivanov@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post("/api/auth/login", `{"email":"ivanov@example.com","password":"`+testPassword+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)

	w = post("/api/auth/logout", "", login.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")

	w = post("/api/auth/logout", "", login.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
