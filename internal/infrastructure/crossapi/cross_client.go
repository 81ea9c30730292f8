package crossapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/sweetcross/crossclient/internal/domain"
)

// DefaultBaseURL はSweetCross APIのデフォルトのベースURLです
const DefaultBaseURL = "https://sweetcross.link/api/v1"

// CrossClient はCROSS APIへの認証付きリクエストを担当します
// 各リクエストの前にTokenSourceから有効なトークンを取得してAuthorizationヘッダーを
// 付与します。トークンが期限切れの場合、取得は同期的な再ログインを伴うため、
// 呼び出しはその分の待ち時間と認証エラーの可能性を持ちます
type CrossClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

// Option はCrossClientの構築時の設定です
type Option func(*CrossClient)

// WithBaseURL はベースURLを上書きします
func WithBaseURL(baseURL string) Option {
	return func(c *CrossClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient はHTTPクライアントを差し替えます
// タイムアウトなどトランスポート層の設定はここで注入します
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *CrossClient) {
		c.httpClient = httpClient
	}
}

// WithTokenSource はトークンの取得元を差し替えます
func WithTokenSource(source TokenSource) Option {
	return func(c *CrossClient) {
		c.tokenSource = source
	}
}

// NewCrossClient はCrossClientを作成します。ネットワークI/Oは行いません
// TokenSourceを差し替えない場合、認証情報から内部にTokenClientを構築します
func NewCrossClient(creds *domain.Credentials, opts ...Option) *CrossClient {
	c := &CrossClient{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.tokenSource == nil {
		c.tokenSource = NewTokenClient(creds, c.baseURL, c.httpClient)
	}
	return c
}

// Connect は最初のログインを実行し、認証情報が有効であることを確認します
func (c *CrossClient) Connect(ctx context.Context) error {
	_, err := c.tokenSource.CurrentToken(ctx)
	return err
}

// Get は認証付きGETリクエストを送信します
// レスポンスはステータスコードに関わらずそのまま返します
func (c *CrossClient) Get(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.request(ctx, http.MethodGet, endpoint, opts)
}

// Post は認証付きPOSTリクエストを送信します
// 添付ファイルのReaderがCloserを実装している場合、リクエストの成否に関わらず
// このメソッドから戻る前に必ずクローズします
func (c *CrossClient) Post(ctx context.Context, endpoint string, opts *RequestOptions) (_ *Response, err error) {
	if opts != nil {
		for _, attachment := range opts.Files {
			if closer, ok := attachment.Reader.(io.Closer); ok {
				defer func(closer io.Closer) {
					if closeErr := closer.Close(); closeErr != nil && err == nil {
						err = fmt.Errorf("添付ファイルのクローズに失敗しました: %w", closeErr)
					}
				}(closer)
			}
		}
	}
	return c.request(ctx, http.MethodPost, endpoint, opts)
}

func (c *CrossClient) request(ctx context.Context, method, endpoint string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	token, err := c.tokenSource.CurrentToken(ctx)
	if err != nil {
		return nil, err
	}

	body, contentType, err := buildBody(opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", token.AuthorizationValue())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := readLimitedBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み取りに失敗しました: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// buildBody はRequestOptionsからリクエストボディとContent-Typeを組み立てます
func buildBody(opts *RequestOptions) (io.Reader, string, error) {
	switch {
	case len(opts.Files) > 0:
		return buildMultipartBody(opts)
	case opts.JSON != nil:
		data, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("JSONボディの作成に失敗しました: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	case len(opts.Form) > 0:
		return strings.NewReader(opts.Form.Encode()), "application/x-www-form-urlencoded", nil
	default:
		return nil, "", nil
	}
}

func buildMultipartBody(opts *RequestOptions) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, attachment := range opts.Files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, attachment.FieldName, attachment.FileName))
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("マルチパートの作成に失敗しました: %w", err)
		}
		if _, err := io.Copy(part, attachment.Reader); err != nil {
			return nil, "", fmt.Errorf("添付ファイルの読み取りに失敗しました: %w", err)
		}
	}

	for key, values := range opts.Form {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("フォームフィールドの書き込みに失敗しました: %w", err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("マルチパートの終端に失敗しました: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
