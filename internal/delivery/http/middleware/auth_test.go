package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant-directory/internal/delivery/http/middleware"
	"github.com/restaurant-directory/internal/pkg/token"
)

func newGatedApp(t *testing.T, tokens *token.Manager, reached *bool) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/gated", middleware.Auth(tokens, zap.NewNop()), func(c *fiber.Ctx) error {
		*reached = true
		claims, ok := middleware.CurrentUser(c)
		require.True(t, ok)
		return c.SendString(claims.UserID)
	})
	return app
}

func TestAuth(t *testing.T) {
	tokens, err := token.NewManager("test-secret")
	require.NoError(t, err)

	valid, err := tokens.Generate("user-7", "dave@example.com")
	require.NoError(t, err)

	expired, err := tokens.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Generate("user-7", "dave@example.com")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantReached   bool
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", authorization: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "token without scheme", authorization: valid, wantStatus: http.StatusUnauthorized},
		{name: "expired", authorization: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "garbage", authorization: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "valid", authorization: "Bearer " + valid, wantStatus: http.StatusOK, wantReached: true},
		{name: "lowercase scheme", authorization: "bearer " + valid, wantStatus: http.StatusOK, wantReached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			app := newGatedApp(t, tokens, &reached)

			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			if tt.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authorization)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantReached, reached)
		})
	}
}
