package crossclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweetcross/crossclient"
	"github.com/sweetcross/crossclient/internal/domain"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "正常系: 認証情報が揃っていればクライアントを作成できる",
			username: "testuser",
			password: "testpass",
			wantErr:  nil,
		},
		{
			name:     "異常系: ユーザー名が空の場合はエラーが返る",
			username: "",
			password: "testpass",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "異常系: パスワードが空の場合はエラーが返る",
			username: "testuser",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := crossclient.New(tt.username, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if client.Username() != tt.username {
				t.Errorf("Username() = %q, want %q", client.Username(), tt.username)
			}
		})
	}
}

// newFakeAPIServer は認証とアップロードを備えた最小のAPIサーバーを起動します
func newFakeAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login/access_token", func(w http.ResponseWriter, r *http.Request) {
		if r.PostFormValue("username") != "testuser" || r.PostFormValue("password") != "testpass" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":       "mock_access_token",
			"refresh_token":      "mock_refresh_token",
			"token_type":         "Bearer",
			"expires_in":         1800,
			"refresh_expires_in": 3600,
		})
	})
	mux.HandleFunc("POST /result/upload/{contract}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer mock_access_token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Bad Request"))
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_SubmitResults(t *testing.T) {
	server := newFakeAPIServer(t)

	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,3\n"), 0600); err != nil {
		t.Fatalf("テスト用ファイルの作成に失敗しました: %v", err)
	}

	client, err := crossclient.New("testuser", "testpass",
		crossclient.WithBaseURL(server.URL),
		crossclient.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx := context.Background()
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	receipt, err := client.SubmitResults(ctx, crossclient.SubmitRequest{Path: path})
	if err != nil {
		t.Fatalf("SubmitResults() failed: %v", err)
	}

	if receipt.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want %d", receipt.StatusCode, http.StatusCreated)
	}
}

func TestClient_Connect_InvalidCredentials(t *testing.T) {
	server := newFakeAPIServer(t)

	client, err := crossclient.New("testuser", "wrongpass",
		crossclient.WithBaseURL(server.URL),
		crossclient.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = client.Connect(context.Background())

	var authErr *crossclient.AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("want *AuthenticationError, but got %v", err)
	}
	if authErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", authErr.StatusCode, http.StatusUnauthorized)
	}
}
