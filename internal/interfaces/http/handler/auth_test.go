package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	identityapp "github.com/shoppy/backend/internal/application/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRig(t *testing.T, authMiddleware ...gin.HandlerFunc) *testRig {
	t.Helper()
	rig := newTestRig(t, authMiddleware...)
	NewAuthHandler(rig.authService).RegisterRoutes(rig.api)
	return rig
}

func registerRequest() identityapp.RegisterRequest {
	return identityapp.RegisterRequest{
		Username:   "john.doe",
		Password:   "s3cret-password",
		Email:      "john@example.com",
		GivenName:  "John",
		FamilyName: "Doe",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account and issues tokens", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decodeData[identityapp.AuthResponse](t, w)
		assert.Equal(t, "john.doe", resp.User.Username)
		assert.Contains(t, resp.User.Roles, "user")
		require.NotNil(t, resp.Tokens)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		require.Equal(t, http.StatusCreated, w.Code)

		w = rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		requireErrorMessage(t, w, http.StatusConflict, "Username already taken")
	})

	t.Run("rejects short password", func(t *testing.T) {
		rig := newAuthRig(t)

		req := registerRequest()
		req.Password = "short"
		w := rig.do(http.MethodPost, "/api/v1/auth/register", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		require.Equal(t, http.StatusCreated, w.Code)

		w = rig.do(http.MethodPost, "/api/v1/auth/login", identityapp.LoginRequest{
			Username: "john.doe",
			Password: "s3cret-password",
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeData[identityapp.AuthResponse](t, w)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		require.Equal(t, http.StatusCreated, w.Code)

		w = rig.do(http.MethodPost, "/api/v1/auth/login", identityapp.LoginRequest{
			Username: "john.doe",
			Password: "wrong-password",
		})
		requireErrorMessage(t, w, http.StatusUnauthorized, "Incorrect username or password")
	})

	t.Run("unknown username", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/login", identityapp.LoginRequest{
			Username: "nobody",
			Password: "whatever-password",
		})
		requireErrorMessage(t, w, http.StatusUnauthorized, "Incorrect username or password")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/register", registerRequest())
		require.Equal(t, http.StatusCreated, w.Code)
		registered := decodeData[identityapp.AuthResponse](t, w)

		w = rig.do(http.MethodPost, "/api/v1/auth/refresh", identityapp.RefreshRequest{
			RefreshToken: registered.Tokens.RefreshToken,
		})
		require.Equal(t, http.StatusOK, w.Code)
		refreshed := decodeData[identityapp.AuthResponse](t, w)
		assert.NotEmpty(t, refreshed.Tokens.AccessToken)

		// The presented refresh token is revoked and cannot be replayed
		w = rig.do(http.MethodPost, "/api/v1/auth/refresh", identityapp.RefreshRequest{
			RefreshToken: registered.Tokens.RefreshToken,
		})
		requireErrorMessage(t, w, http.StatusBadRequest, "Refresh token is not valid, try to log-in again")
	})

	t.Run("garbage token", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/refresh", identityapp.RefreshRequest{
			RefreshToken: "not-a-token",
		})
		requireErrorMessage(t, w, http.StatusBadRequest, "Refresh token is not valid, try to log-in again")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		rig := newAuthRig(t)

		w := rig.do(http.MethodPost, "/api/v1/auth/logout", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revokes tokens", func(t *testing.T) {
		rig := newAuthRig(t, asUser("john.doe", "user"))

		w := rig.do(http.MethodPost, "/api/v1/auth/logout", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
