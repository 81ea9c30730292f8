// Package crossclient は結果ファイルをCROSSプラットフォームに提出するための
// クライアントライブラリです。認証トークンの取得と更新は内部で自動的に行われます
package crossclient

import (
	"context"
	"net/http"

	"github.com/sweetcross/crossclient/internal/domain"
	"github.com/sweetcross/crossclient/internal/infrastructure/crossapi"
	"github.com/sweetcross/crossclient/internal/usecase"
)

// DefaultBaseURL はSweetCross APIのデフォルトのベースURLです
const DefaultBaseURL = crossapi.DefaultBaseURL

type (
	// Table はメモリ上の結果データです
	Table = domain.Table
	// RequestOptions はGet/Postの追加指定です
	RequestOptions = crossapi.RequestOptions
	// Attachment はマルチパートリクエストの添付ファイルです
	Attachment = crossapi.Attachment
	// Response はAPIからの生のレスポンスです
	Response = crossapi.Response
	// SubmitRequest は結果提出の入力です
	SubmitRequest = usecase.SubmitResultsInput
	// SubmitReceipt は提出成功時の結果です
	SubmitReceipt = usecase.SubmitResultsOutput
	// AuthenticationError は認証エンドポイントが200以外を返した場合のエラーです
	AuthenticationError = crossapi.AuthenticationError
	// MalformedResponseError は認証レスポンスの検証に失敗した場合のエラーです
	MalformedResponseError = crossapi.MalformedResponseError
)

// Client はCROSS APIのクライアントです
// 認証付きの汎用リクエスト（Get/Post）と結果ファイルの提出を提供します
type Client struct {
	api       *crossapi.CrossClient
	submitter usecase.SubmitResultsUseCase
	username  string
}

type options struct {
	baseURL    string
	httpClient *http.Client
}

// Option はClient構築時の設定です
type Option func(*options)

// WithBaseURL はベースURLを上書きします
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient はHTTPクライアントを差し替えます
// タイムアウトやプロキシなどトランスポート層の設定はここで注入します
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// New はClientを作成します。ネットワークI/Oは行いません
// 認証はConnectか、最初のリクエストの送信時に実行されます
func New(username, password string, opts ...Option) (*Client, error) {
	creds, err := domain.NewCredentials(username, password)
	if err != nil {
		return nil, err
	}

	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	apiOpts := []crossapi.Option{crossapi.WithBaseURL(o.baseURL)}
	if o.httpClient != nil {
		apiOpts = append(apiOpts, crossapi.WithHTTPClient(o.httpClient))
	}
	api := crossapi.NewCrossClient(creds, apiOpts...)

	return &Client{
		api:       api,
		submitter: usecase.NewSubmitResultsUseCase(api, username),
		username:  username,
	}, nil
}

// Connect は最初のログインを実行し、認証情報が有効であることを確認します
func (c *Client) Connect(ctx context.Context) error {
	return c.api.Connect(ctx)
}

// Get は認証付きGETリクエストを送信します
func (c *Client) Get(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.api.Get(ctx, endpoint, opts)
}

// Post は認証付きPOSTリクエストを送信します
func (c *Client) Post(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.api.Post(ctx, endpoint, opts)
}

// SubmitResults は結果ファイルをCROSSプラットフォームに提出します
func (c *Client) SubmitResults(ctx context.Context, req SubmitRequest) (*SubmitReceipt, error) {
	return c.submitter.SubmitResults(ctx, req)
}

// Username は認証に使用しているユーザー名を返します
func (c *Client) Username() string {
	return c.username
}
