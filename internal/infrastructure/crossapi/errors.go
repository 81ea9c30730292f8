package crossapi

import "fmt"

// AuthenticationError は認証エンドポイントが200以外を返した場合のエラーです
// ステータスコードとレスポンスボディをそのまま保持します
type AuthenticationError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("認証に失敗しました: status=%d body=%s", e.StatusCode, e.Body)
}

// MalformedResponseError は認証エンドポイントが200を返したものの
// ボディが必須フィールドを満たさない場合のエラーです
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("認証レスポンスの形式が不正です: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
