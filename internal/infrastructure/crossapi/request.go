package crossapi

import (
	"io"
	"net/http"
	"net/url"
)

// Attachment はマルチパートリクエストに添付するファイルを表します
// ReaderがCloserを実装している場合、Postがリクエスト完了後に必ずクローズします
type Attachment struct {
	FieldName   string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// RequestOptions はリクエストの追加指定を保持します
// Filesが指定された場合はマルチパートとなり、Formはマルチパートのフィールドとして
// 送信されます。JSONとFilesの併用はできません
type RequestOptions struct {
	Headers map[string]string
	Form    url.Values
	JSON    any
	Files   []Attachment
}

// Response はAPIからのレスポンスをそのまま保持します
// ステータスコードの解釈は呼び出し側の責務です
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// BodyText はレスポンスボディを文字列として返します
func (r *Response) BodyText() string {
	return string(r.Body)
}
