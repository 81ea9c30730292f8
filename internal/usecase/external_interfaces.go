//go:generate mockgen -source=$GOFILE -destination=mock_request_client_test.go -package=usecase
package usecase

import (
	"context"

	"github.com/sweetcross/crossclient/internal/infrastructure/crossapi"
)

// RequestClient はCROSS APIへの認証付きリクエスト送信を抽象化するインターフェースです
// 実装は各リクエストの前に有効なトークンを確保する責務を持ちます
type RequestClient interface {
	Get(ctx context.Context, endpoint string, opts *crossapi.RequestOptions) (*crossapi.Response, error)
	Post(ctx context.Context, endpoint string, opts *crossapi.RequestOptions) (*crossapi.Response, error)
}
