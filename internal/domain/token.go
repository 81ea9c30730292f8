package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// Token はCROSS APIの認証エンドポイントが発行するトークンを表す値オブジェクトです
// 認証レスポンスからのみ生成され、更新時はフィールド単位ではなく丸ごと置き換えられます
type Token struct {
	accessToken      string
	refreshToken     string
	tokenType        string
	createdAt        time.Time
	expiresIn        time.Duration
	refreshExpiresIn time.Duration
}

// NewToken は発行時刻をctxtime.Now(ctx)として新しいTokenを作成します
func NewToken(ctx context.Context, accessToken, refreshToken, tokenType string, expiresIn, refreshExpiresIn time.Duration) (*Token, error) {
	return ReconstructToken(accessToken, refreshToken, tokenType, ctxtime.Now(ctx), expiresIn, refreshExpiresIn)
}

// ReconstructToken は発行時刻を明示してTokenを再構築します
// サーバーがcreated_atを返す場合やテストでの期限切れ再現に使用します
func ReconstructToken(accessToken, refreshToken, tokenType string, createdAt time.Time, expiresIn, refreshExpiresIn time.Duration) (*Token, error) {
	if accessToken == "" {
		return nil, ErrEmptyAccessToken
	}
	if refreshToken == "" {
		return nil, ErrEmptyRefreshToken
	}
	if tokenType == "" {
		return nil, ErrEmptyTokenType
	}
	if expiresIn <= 0 {
		return nil, ErrInvalidExpiresIn
	}
	if refreshExpiresIn <= 0 {
		return nil, ErrInvalidRefreshExpiresIn
	}
	return &Token{
		accessToken:      accessToken,
		refreshToken:     refreshToken,
		tokenType:        tokenType,
		createdAt:        createdAt,
		expiresIn:        expiresIn,
		refreshExpiresIn: refreshExpiresIn,
	}, nil
}

// IsExpired はアクセストークンが期限切れかどうかを呼び出し時点の時刻で判定します
func (t *Token) IsExpired(ctx context.Context) bool {
	expirationTime := t.createdAt.Add(t.expiresIn)
	return !ctxtime.Now(ctx).Before(expirationTime)
}

// IsRefreshExpired はリフレッシュトークンが期限切れかどうかを判定します
func (t *Token) IsRefreshExpired(ctx context.Context) bool {
	refreshExpirationTime := t.createdAt.Add(t.refreshExpiresIn)
	return !ctxtime.Now(ctx).Before(refreshExpirationTime)
}

// AuthorizationValue はAuthorizationヘッダーに設定する値を返します
func (t *Token) AuthorizationValue() string {
	return t.tokenType + " " + t.accessToken
}

func (t *Token) AccessToken() string {
	return t.accessToken
}

func (t *Token) RefreshToken() string {
	return t.refreshToken
}

func (t *Token) TokenType() string {
	return t.tokenType
}

func (t *Token) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Token) ExpiresIn() time.Duration {
	return t.expiresIn
}

func (t *Token) RefreshExpiresIn() time.Duration {
	return t.refreshExpiresIn
}
