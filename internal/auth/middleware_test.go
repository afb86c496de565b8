package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

// echoUserIDHandler writes the userID the middleware put into the context.
var echoUserIDHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Write([]byte(userID))
})

func newProtectedServer() (http.Handler, *mockUserService) {
	authService, mockUsers := newTestAuthService()
	return authService.JWTAccessTokenMiddleware()(echoUserIDHandler), mockUsers
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	protected, mockUsers := newProtectedServer()
	mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	token, err := newTestJWTManager().GenerateAccessJWT("john", "uid-1", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "uid-1", recorder.Body.String(), "downstream handlers see the resolved user id")
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	protected, _ := newProtectedServer()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authorization header is required")
}

func TestJWTMiddleware_WrongScheme(t *testing.T) {
	protected, _ := newProtectedServer()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Token abc123")
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token format")
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	protected, _ := newProtectedServer()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	protected, mockUsers := newProtectedServer()
	mockUsers.addUser("uid-1", "john", "john@example.com", "secret123")

	expired := signTestToken(t, testSecret, &AccessTokenClaims{
		UserID: "uid-1",
		StandardClaims: jwt.StandardClaims{
			Subject:   "john",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestJWTMiddleware_TokenForDeletedUser(t *testing.T) {
	protected, _ := newProtectedServer()

	// Token is perfectly valid but no such user exists anymore.
	token, err := newTestJWTManager().GenerateAccessJWT("ghost", "uid-ghost", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}
