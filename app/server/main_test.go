package main

import (
	"bytes"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"society-cms/app/server/config"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	for name, run := range map[string]func(cmd *bytes.Buffer) []string{
		"Argument": func(*bytes.Buffer) []string { return []string{"s3cret-pass"} },
		"Stdin": func(in *bytes.Buffer) []string {
			in.WriteString("s3cret-pass\n")
			return nil
		},
	} {
		t.Run(name, func(t *testing.T) {
			var in, out bytes.Buffer
			args := run(&in)

			hashPasswordCmd.SetIn(&in)
			hashPasswordCmd.SetOut(&out)
			require.NoError(t, hashPasswordCmd.RunE(hashPasswordCmd, args))

			match, err := argon2id.ComparePasswordAndHash("s3cret-pass", strings.TrimSpace(out.String()))
			require.NoError(t, err)
			assert.True(t, match)
		})
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	hashPasswordCmd.SetIn(strings.NewReader("\n"))
	assert.Error(t, hashPasswordCmd.RunE(hashPasswordCmd, nil))
}

func testEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.System.BodyLimit = "1K"
	cfg.System.FrontendURL = "https://society.example.org"
	e := newEcho(cfg, zap.NewNop())
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func TestEchoErrorsAreJSON(t *testing.T) {
	e := testEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048)))
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestEchoCORS(t *testing.T) {
	e := testEcho()

	for origin, allowed := range map[string]bool{
		"https://society.example.org": true,
		"http://localhost:5173":       true,
		"http://127.0.0.1:5177":       true,
		"https://preview.vercel.app":  true,
		"http://localhost:3000":       false,
		"https://evil.example.com":    false,
	} {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
			req.Header.Set(echo.HeaderOrigin, origin)
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if allowed {
				assert.Equal(t, origin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
				assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
			} else {
				assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			}
		})
	}
}
