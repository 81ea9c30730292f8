package domain

import "errors"

var (
	// ErrEmptyUsername はユーザー名が空の場合のエラー
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword はパスワードが空の場合のエラー
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyAccessToken はアクセストークンが空の場合のエラー
	ErrEmptyAccessToken = errors.New("access_token cannot be empty")

	// ErrEmptyRefreshToken はリフレッシュトークンが空の場合のエラー
	ErrEmptyRefreshToken = errors.New("refresh_token cannot be empty")

	// ErrEmptyTokenType はトークン種別が空の場合のエラー
	ErrEmptyTokenType = errors.New("token_type cannot be empty")

	// ErrInvalidExpiresIn は有効期間が正の値でない場合のエラー
	ErrInvalidExpiresIn = errors.New("expires_in must be positive")

	// ErrInvalidRefreshExpiresIn はリフレッシュ有効期間が正の値でない場合のエラー
	ErrInvalidRefreshExpiresIn = errors.New("refresh_expires_in must be positive")

	// ErrEmptyContract は提出コントラクトが空の場合のエラー
	ErrEmptyContract = errors.New("submission contract cannot be empty")

	// ErrUnsupportedFileFormat は結果ファイルの拡張子が許可されていない場合のエラー
	ErrUnsupportedFileFormat = errors.New("unsupported file format: file name must end with .csv, .xlsx or .xls")

	// ErrTableRequiresCSV はテーブルデータの提出時にファイル名が.csvでない場合のエラー
	ErrTableRequiresCSV = errors.New("results provided as a table require a .csv file name")

	// ErrEmptyTableColumns はテーブルに列定義がない場合のエラー
	ErrEmptyTableColumns = errors.New("table must have at least one column")

	// ErrTableRowWidthMismatch はテーブルの行幅が列数と一致しない場合のエラー
	ErrTableRowWidthMismatch = errors.New("table row width does not match column count")

	// ErrEmptyUploadedBy はアップロード者が空の場合のエラー
	ErrEmptyUploadedBy = errors.New("uploaded_by cannot be empty")
)
