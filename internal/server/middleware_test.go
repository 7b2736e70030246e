package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clktech/storefront/internal/auth"
)

func TestRequireAdmin_NoToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/orders", nil, nil)
	requireStatus(t, w, http.StatusUnauthorized)
	require.Equal(t, "No token provided", decodeBody(t, w)["message"])
}

func TestRequireAdmin_WrongSecret(t *testing.T) {
	env := newTestEnv(t)

	other := auth.NewTokenIssuer("some-other-secret", time.Hour)
	token, err := other.Issue(1, "admin@clktech.com")
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/admin/orders", nil, bearer(token))
	requireStatus(t, w, http.StatusUnauthorized)
	require.Equal(t, "Invalid or expired token", decodeBody(t, w)["message"])
}

func TestRequireAdmin_Expired(t *testing.T) {
	env := newTestEnv(t)

	expired := auth.NewTokenIssuer(testSecret, -time.Minute)
	token, err := expired.Issue(1, "admin@clktech.com")
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/admin/orders", nil, bearer(token))
	requireStatus(t, w, http.StatusUnauthorized)
}

// Unauthorized requests must be rejected before any storage accessor runs.
func TestRequireAdmin_RejectsBeforeStore(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/admin/orders/1", nil, nil)
	requireStatus(t, w, http.StatusUnauthorized)
	require.Zero(t, env.orders.Mutations)

	w = env.do(t, http.MethodDelete, "/api/admin/products/1", nil, nil)
	requireStatus(t, w, http.StatusUnauthorized)
	require.Zero(t, env.products.Mutations)
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/orders", nil, bearer(env.adminToken(t)))
	requireStatus(t, w, http.StatusOK)
}
