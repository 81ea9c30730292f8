package crossapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sweetcross/crossclient/internal/domain"
)

const (
	maxResponseSize = 1 << 20

	authEndpointPath    = "/login/access_token"
	refreshEndpointPath = "/login/refresh_token"

	defaultHTTPTimeout = 10 * time.Second
)

// TokenClient はCROSS APIの認証とトークンの有効期限管理を担当します
// 通常は直接使わず、CrossClientが内部で利用します
//
// 排他制御は行いません。期限切れ時に複数ゴルーチンから同時に呼ばれると
// 再ログインが重複することがありますが、各呼び出しが独立に有効なトークンを
// 得るため許容しています
type TokenClient struct {
	creds      *domain.Credentials
	baseURL    string
	httpClient *http.Client
	token      *domain.Token
}

// NewTokenClient はTokenClientを作成します。ネットワークI/Oは行いません
// 最初のログインはConnectか、最初のCurrentToken呼び出しで発生します
// httpClientがnilの場合はタイムアウト付きのデフォルトクライアントを使用します
func NewTokenClient(creds *domain.Credentials, baseURL string, httpClient *http.Client) *TokenClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &TokenClient{
		creds:      creds,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// AuthURL は認証エンドポイントのURLを返します
func (c *TokenClient) AuthURL() string {
	return c.baseURL + authEndpointPath
}

// RefreshURL はトークン更新エンドポイントのURLを返します
// リフレッシュトークンによる更新は未実装で、更新は常に再ログインで行われます
func (c *TokenClient) RefreshURL() string {
	return c.baseURL + refreshEndpointPath
}

// Connect は最初のログインを実行します
// 失敗した場合トークンは保持されず、クライアントは未接続のままになります
func (c *TokenClient) Connect(ctx context.Context) error {
	token, err := c.login(ctx)
	if err != nil {
		return err
	}
	c.token = token
	return nil
}

// CurrentToken は有効なトークンを返します
// キャッシュ済みトークンが呼び出し時点で期限切れの場合は再ログインして置き換えます
func (c *TokenClient) CurrentToken(ctx context.Context) (*domain.Token, error) {
	if c.token != nil && !c.token.IsExpired(ctx) {
		return c.token, nil
	}
	// TODO リフレッシュトークンでの更新に切り替える（現状は常に再ログイン）
	token, err := c.login(ctx)
	if err != nil {
		return nil, err
	}
	c.token = token
	return c.token, nil
}

// tokenResponse は認証エンドポイントのレスポンスボディを表します
type tokenResponse struct {
	AccessToken      string     `json:"access_token"`
	RefreshToken     string     `json:"refresh_token"`
	TokenType        string     `json:"token_type"`
	CreatedAt        *time.Time `json:"created_at"`
	ExpiresIn        int64      `json:"expires_in"`
	RefreshExpiresIn int64      `json:"refresh_expires_in"`
}

func (c *TokenClient) login(ctx context.Context) (*domain.Token, error) {
	form := url.Values{}
	form.Set("username", c.creds.Username())
	form.Set("password", c.creds.Password())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("認証リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("認証リクエストに失敗しました: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readLimitedBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("認証レスポンスの読み取りに失敗しました: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &AuthenticationError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	return c.buildToken(ctx, tokenResp)
}

func (c *TokenClient) buildToken(ctx context.Context, resp tokenResponse) (*domain.Token, error) {
	expiresIn := time.Duration(resp.ExpiresIn) * time.Second
	refreshExpiresIn := time.Duration(resp.RefreshExpiresIn) * time.Second

	var token *domain.Token
	var err error
	if resp.CreatedAt != nil {
		token, err = domain.ReconstructToken(resp.AccessToken, resp.RefreshToken, resp.TokenType, *resp.CreatedAt, expiresIn, refreshExpiresIn)
	} else {
		// created_atを省略するサーバーに対しては発行時刻を現在時刻とする
		token, err = domain.NewToken(ctx, resp.AccessToken, resp.RefreshToken, resp.TokenType, expiresIn, refreshExpiresIn)
	}
	if err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return token, nil
}

func readLimitedBody(r io.Reader) ([]byte, error) {
	limitedReader := io.LimitReader(r, maxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, err
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("レスポンスが大きすぎます: %d bytes (最大: %d bytes)", len(body), maxResponseSize)
	}
	return body, nil
}
