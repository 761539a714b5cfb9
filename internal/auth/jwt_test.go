package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", Middleware(testSecret), func(c *fiber.Ctx) error {
		uid, err := UserID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.SendString(uid)
	})
	return app
}

func TestMiddlewareAcceptsIssuedToken(t *testing.T) {
	const uid = "11111111-1111-1111-1111-111111111111"
	token, err := GenerateToken(testSecret, uid)
	require.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uid, string(body))
}

func TestMiddlewareRejects(t *testing.T) {
	app := newProtectedApp()

	cases := map[string]func(r *http.Request){
		"missing header": func(r *http.Request) {},
		"not bearer": func(r *http.Request) {
			r.Header.Set("Authorization", "Basic abc")
		},
		"garbage token": func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not.a.token")
		},
		"wrong secret": func(r *http.Request) {
			token, _ := GenerateToken([]byte("other-secret"), "11111111-1111-1111-1111-111111111111")
			r.Header.Set("Authorization", "Bearer "+token)
		},
		"non-uuid subject": func(r *http.Request) {
			token, _ := GenerateToken(testSecret, "bob")
			r.Header.Set("Authorization", "Bearer "+token)
		},
		"expired": func(r *http.Request) {
			claims := jwt.MapClaims{
				"user_id": "11111111-1111-1111-1111-111111111111",
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}
			token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
			r.Header.Set("Authorization", "Bearer "+token)
		},
	}

	for name, prepare := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			prepare(req)

			resp, err := app.Test(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := UserID(c)
		assert.Error(t, err)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
