package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sweetcross/crossclient/internal/infrastructure/crossapi"
)

var (
	// ErrMissingUsername はユーザー名が設定されていない場合のエラー
	ErrMissingUsername = errors.New("username is required")

	// ErrMissingPassword はパスワードが設定されていない場合のエラー
	ErrMissingPassword = errors.New("password is required")
)

// Config はCLIとライブラリ利用時の接続設定を保持します
type Config struct {
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Contract string        `mapstructure:"contract"`
}

// Load は設定を読み込みます
// pathが空の場合はカレントディレクトリのcrossclient.yamlを探し、
// 見つからなければ環境変数（CROSSCLIENT_プレフィックス）のみで構成します
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", crossapi.DefaultBaseURL)
	v.SetDefault("timeout", "30s")
	v.SetDefault("contract", "")

	v.SetEnvPrefix("CROSSCLIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"username", "password", "base_url", "timeout", "contract"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("環境変数のバインドに失敗しました: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	} else {
		v.SetConfigName("crossclient")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
			}
			// 設定ファイルなしでも環境変数のみで構成できる
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の解析に失敗しました: %w", err)
	}

	if cfg.Username == "" {
		return nil, ErrMissingUsername
	}
	if cfg.Password == "" {
		return nil, ErrMissingPassword
	}
	return &cfg, nil
}

// String はパスワードを伏せた表現を返します
func (c *Config) String() string {
	return fmt.Sprintf("Config{Username: %s, Password: ***, BaseURL: %s, Timeout: %s, Contract: %s}",
		c.Username, c.BaseURL, c.Timeout, c.Contract)
}
