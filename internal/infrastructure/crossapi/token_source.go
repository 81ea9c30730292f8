//go:generate mockgen -source=$GOFILE -destination=mock_token_source_test.go -package=crossapi
package crossapi

import (
	"context"

	"github.com/sweetcross/crossclient/internal/domain"
)

// TokenSource は有効なトークンを要求に応じて提供するインターフェースです
// 期限切れの場合の再認証は実装側が隠蔽します
type TokenSource interface {
	CurrentToken(ctx context.Context) (*domain.Token, error)
}
