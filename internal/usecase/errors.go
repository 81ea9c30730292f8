package usecase

import "errors"

var (
	// ErrResultsFileNotFound は指定された結果ファイルが存在しない場合のエラー
	ErrResultsFileNotFound = errors.New("the specified results file does not exist")

	// ErrSubmissionFailed はアップロードエンドポイントが201以外を返した場合のエラー
	ErrSubmissionFailed = errors.New("submission failed")
)
