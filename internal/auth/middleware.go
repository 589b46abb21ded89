package auth

import (
	"net/http"
	"strings"

	"employee-portal-backend/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "auth_session"

// AuthMiddleware provides session authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth resolves the bearer token to a signed-in session
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		session, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

// SetSession attaches a signed-in session to the request
func SetSession(c *gin.Context, session *Session) {
	employeeID, _ := session.EmployeeID()
	c.Set(sessionContextKey, session)
	c.Set("employee_id", employeeID.String())
	c.Request = c.Request.WithContext(requestctx.WithEmployeeID(c.Request.Context(), employeeID.String()))
}

// GetSession is a helper function to extract the session from context
func GetSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}

	session, ok := value.(*Session)
	return session, ok
}

// GetEmployeeID is a helper function to extract the signed-in employee from context
func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	session, ok := GetSession(c)
	if !ok {
		return uuid.Nil, false
	}
	return session.EmployeeID()
}
