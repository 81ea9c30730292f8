package logging

import (
	"log/slog"
	"strings"
)

// sensitiveKeys はログに平文で出してはならない属性キーの一覧
var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"access_token":  {},
	"refresh_token": {},
	"authorization": {},
	"password":      {},
	"secret":        {},
	"credential":    {},
	"api_key":       {},
	"apikey":        {},
}

// MaskSensitiveAttrs はslog.HandlerOptions.ReplaceAttrに設定するマスク関数です
// 認証情報やトークンに該当するキーの値を[REDACTED]に置き換えます
func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		masked := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			masked = append(masked, MaskSensitiveAttrs(nil, attr))
		}
		return slog.Group(a.Key, masked...)
	}

	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}
