package backendclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBackend(t *testing.T) *backendclient.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	require.NoError(t, jsondb.Update(db, "paints", func(items []map[string]any) ([]map[string]any, error) {
		return append(items, map[string]any{"id": "p1", "name": "Eggshell White"}), nil
	}))

	r := gin.New()
	routes.SetupBackendRoutes(r, db, auth.NewIssuer("secret"), zap.NewNop())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return backendclient.New(srv.URL+"/", nil)
}

func backendStatus(err error) int {
	var be *backendclient.Error
	if errors.As(err, &be) {
		return be.Status
	}
	return 0
}

func TestAccountFlow(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	reg, err := c.Register(ctx, backendclient.RegisterRequest{Email: "ada@example.com", Password: "pw", Name: "Ada"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AccessToken)

	_, err = c.Register(ctx, backendclient.RegisterRequest{Email: "ada@example.com", Password: "pw"})
	assert.Equal(t, http.StatusBadRequest, backendStatus(err))
	assert.Contains(t, err.Error(), "Email already registered")

	login, err := c.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = c.Login(ctx, "ada@example.com", "nope")
	assert.Equal(t, http.StatusUnauthorized, backendStatus(err))
}

func TestAddressCRUD(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	home := models.Address{Name: "Ada", Address1: "1 Main St", City: "Portland", State: "OR", Zip: "97201", Country: "US"}

	created, err := c.CreateAddress(ctx, "u1", home)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)

	_, err = c.CreateAddress(ctx, "u2", home)
	require.NoError(t, err)

	list, err := c.ListAddresses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	found, err := c.FindAddress(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portland", found.City)

	_, err = c.FindAddress(ctx, "u2", created.ID)
	assert.Equal(t, http.StatusNotFound, backendStatus(err), "other users' addresses are not visible")

	home.City = "Salem"
	updated, err := c.UpdateAddress(ctx, "u1", created.ID, home)
	require.NoError(t, err)
	assert.Equal(t, "Salem", updated.City)
	assert.Equal(t, created.ID, updated.ID)

	_, err = c.UpdateAddress(ctx, "u1", "missing", home)
	assert.Equal(t, http.StatusNotFound, backendStatus(err))

	require.NoError(t, c.DeleteAddress(ctx, created.ID))
	assert.Equal(t, http.StatusNotFound, backendStatus(c.DeleteAddress(ctx, created.ID)))

	list, err = c.ListAddresses(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResource(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	_, err := c.Register(ctx, backendclient.RegisterRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	raw, err := c.Resource(ctx, "paints")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1","name":"Eggshell White"}]`, string(raw))

	raw, err = c.Resource(ctx, "users")
	require.NoError(t, err)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")

	_, err = c.Resource(ctx, "nothing")
	assert.Equal(t, http.StatusNotFound, backendStatus(err))
}
