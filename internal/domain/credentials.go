package domain

import "fmt"

// Credentials は認証に使用するユーザー名とパスワードを保持する値オブジェクトです
// セッション中は不変で、トークン更新時の再ログインにもそのまま使われます
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (*Credentials, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return &Credentials{
		username: username,
		password: password,
	}, nil
}

func (c *Credentials) Username() string {
	return c.username
}

func (c *Credentials) Password() string {
	return c.password
}

// String はパスワードを伏せた表現を返します
func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %s, Password: ***}", c.username)
}
