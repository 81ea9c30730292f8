//go:build e2e

// Package e2e はCROSS APIの疑似サーバーを相手にしたE2Eテストを提供します
package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	e2eUsername = "testuser"
	e2ePassword = "testpass"

	accessTokenLifetime  = 30 * time.Minute
	refreshTokenLifetime = time.Hour
)

// signingKey はE2Eテスト用の固定署名鍵
var signingKey = []byte("e2e-test-signing-key")

// knownContracts は疑似サーバーが受け付ける提出コントラクトの一覧
var knownContracts = map[string]struct{}{
	"submission_cross2025": {},
	"submission_cross2026": {},
}

// startFakeCROSSServer は認証とアップロードを備えたCROSS APIの疑似サーバーを起動します
// アクセストークンはHS256署名のJWTとして発行され、アップロード時に検証されます
func startFakeCROSSServer(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.POST("/login/access_token", handleLogin)
	e.POST("/result/upload/:contract", handleUpload)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func mintToken(subject string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(lifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

func handleLogin(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username != e2eUsername || password != e2ePassword {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	accessToken, err := mintToken(username, accessTokenLifetime)
	if err != nil {
		return c.NoContent(http.StatusInternalServerError)
	}
	refreshToken, err := mintToken(username, refreshTokenLifetime)
	if err != nil {
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token":       accessToken,
		"refresh_token":      refreshToken,
		"token_type":         "Bearer",
		"expires_in":         int(accessTokenLifetime.Seconds()),
		"refresh_expires_in": int(refreshTokenLifetime.Seconds()),
	})
}

func handleUpload(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "unexpected signing method")
		}
		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return c.NoContent(http.StatusUnauthorized)
	}

	contract := c.Param("contract")
	if _, ok := knownContracts[contract]; !ok {
		return c.String(http.StatusBadRequest, "Bad Request")
	}

	if _, err := c.FormFile("file"); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}
	var description struct {
		Description string `json:"description"`
		UploadedBy  string `json:"uploaded_by"`
	}
	if err := json.Unmarshal([]byte(c.FormValue("file_description")), &description); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}
	if description.Description == "" || description.UploadedBy == "" {
		return c.String(http.StatusBadRequest, "Bad Request")
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "created", "contract": contract})
}
