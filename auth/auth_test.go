package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGuestTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("secret")

	token, expires, err := issuer.IssueGuestToken("s-1", "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(GuestTokenTTL), expires, time.Minute)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims["session_id"])
	assert.Equal(t, RoleGuest, claims["role"])
	assert.NotContains(t, claims, "sub")

	token, _, err = issuer.IssueGuestToken("s-2", "u-1")
	require.NoError(t, err)
	claims, err = issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims["sub"])
	assert.Equal(t, RoleUser, claims["role"])
}

func TestParseRejects(t *testing.T) {
	issuer := NewIssuer("secret")
	token, err := issuer.IssueAccessToken(models.User{ID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = NewIssuer("other").Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "wrong secret")

	expired := NewIssuer("secret")
	expired.now = func() time.Time { return time.Now().Add(2 * AccessTokenTTL) }
	_, err = expired.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "expired")

	_, err = issuer.Parse("not-a-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func newAccountRouter(t *testing.T) (*gin.Engine, *jsondb.DB) {
	db, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	issuer := NewIssuer("secret")

	r := gin.New()
	r.POST("/register", Register(db, issuer, zap.NewNop()))
	r.POST("/login", Login(db, issuer, zap.NewNop()))
	return r, db
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r, db := newAccountRouter(t)

	w := postJSON(r, "/register", RegisterInput{Email: " Ada@Example.com ", Password: "hunter2", Name: "Ada"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, "ada@example.com", reg.User.Email)
	assert.Empty(t, reg.User.Password)
	assert.NotEmpty(t, reg.User.MemberSince)

	users, err := jsondb.Read[models.User](db, UsersCollection)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "hunter2", users[0].Password, "passwords are hashed")

	w = postJSON(r, "/login", LoginInput{Email: "ADA@example.com", Password: "hunter2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, reg.User.ID, login.User.ID)

	claims, err := NewIssuer("secret").Parse(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims["sub"])
}

func TestRegisterErrors(t *testing.T) {
	r, _ := newAccountRouter(t)

	w := postJSON(r, "/register", RegisterInput{Email: "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email and password are required")

	require.Equal(t, http.StatusCreated, postJSON(r, "/register", RegisterInput{Email: "ada@example.com", Password: "x"}).Code)
	w = postJSON(r, "/register", RegisterInput{Email: "ADA@example.com", Password: "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newAccountRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/register", RegisterInput{Email: "ada@example.com", Password: "right"}).Code)

	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/login", LoginInput{Email: "ada@example.com", Password: "wrong"}).Code)
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/login", LoginInput{Email: "bob@example.com", Password: "right"}).Code)
}
