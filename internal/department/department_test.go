package department_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"deptdash/internal/apiclient"
	"deptdash/internal/apiserver"
	"deptdash/internal/department"
	"deptdash/internal/session"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := apiserver.New(apiserver.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
		UserEmail:     "user@example.com",
		UserPassword:  "user123",
		BcryptCost:    bcrypt.MinCost,
	}, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(adaptor.FiberApp(s.App()))
	t.Cleanup(srv.Close)
	return srv
}

func signedInClient(t *testing.T, baseURL, email, password string) (*department.HTTPClient, *session.UserInfo) {
	t.Helper()
	api := apiclient.New(baseURL, apiclient.WithTimeout(5*time.Second))
	info, err := session.NewClient(api).Login(context.Background(), email, password)
	require.NoError(t, err)
	return department.NewHTTPClient(api), info
}

func TestHTTPClient_CRUD(t *testing.T) {
	srv := newBackend(t)
	c, info := signedInClient(t, srv.URL, "admin@example.com", "admin123")
	require.True(t, info.IsAdmin)
	ctx := context.Background()

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := c.Create(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", created.Name)

	updated, err := c.Update(ctx, created.ID, "Platform")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Platform", updated.Name)

	list, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Platform", list[0].Name)

	require.NoError(t, c.Delete(ctx, created.ID))
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHTTPClient_SurfacesServerMessage(t *testing.T) {
	srv := newBackend(t)
	c, _ := signedInClient(t, srv.URL, "user@example.com", "user123")
	ctx := context.Background()

	d, err := c.Create(ctx, "Legal")
	require.NoError(t, err)
	_, err = c.Create(ctx, "Legal")
	assert.Equal(t, "Department already exists", apiclient.ErrorMessage(err))

	err = c.Delete(ctx, d.ID)
	assert.Equal(t, "Not authorized as an admin", apiclient.ErrorMessage(err))

	_, err = c.Update(ctx, "missing", "X")
	assert.Equal(t, "Department not found", apiclient.ErrorMessage(err))
}

func TestHTTPClient_Unauthenticated(t *testing.T) {
	srv := newBackend(t)
	c := department.NewHTTPClient(apiclient.New(srv.URL))
	_, err := c.List(context.Background())
	assert.Equal(t, "Not authorized, no token", apiclient.ErrorMessage(err))
}

func TestDepartment_CreatedLabel(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	d := department.Department{CreatedAt: ts}
	assert.Equal(t, "2024-03-09 14:05:07", d.CreatedLabel())
}
