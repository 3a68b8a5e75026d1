package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrequests/internal/models"
)

var testSecret = []byte("test-secret")

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return r
}

func signToken(t *testing.T, claims *Claims, secret []byte, method jwt.SigningMethod) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims(expiresIn time.Duration) *Claims {
	return &Claims{
		UserID: 7,
		Email:  "ana@example.com",
		Name:   "Ana García",
		Role:   models.RoleApprover,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	r := testRouter()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer without token", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_InvalidTokens(t *testing.T) {
	r := testRouter()

	wrongKey := signToken(t, validClaims(time.Hour), []byte("other-secret"), jwt.SigningMethodHS256)
	expired := signToken(t, validClaims(-10*time.Minute), testSecret, jwt.SigningMethodHS256)

	for name, token := range map[string]string{
		"wrong key": wrongKey,
		"expired":   expired,
		"garbage":   "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := testRouter()
	token := signToken(t, validClaims(time.Hour), testSecret, jwt.SigningMethodHS256)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"Approver"`)
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		})
		r.GET("/approver-only", RequireRoles(models.RoleApprover), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	cases := []struct {
		name string
		role string
		want int
	}{
		{"approver allowed", "Approver", http.StatusOK},
		{"requester forbidden", "Requester", http.StatusForbidden},
		{"unknown role forbidden", "Auditor", http.StatusForbidden},
		{"no role unauthorized", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/approver-only", nil)
			w := httptest.NewRecorder()
			newRouter(tc.role).ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
