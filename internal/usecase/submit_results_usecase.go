package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sweetcross/crossclient/internal/domain"
	"github.com/sweetcross/crossclient/internal/infrastructure/crossapi"
)

const octetStreamMIMEType = "application/octet-stream"

// SubmitResultsInput は結果ファイル提出の入力です
type SubmitResultsInput struct {
	// Path はローカルの結果ファイルのパス。Tableがnilの場合に読み込まれます
	Path string
	// FileName はアップロード時のファイル名。空の場合はPathのベース名が使われます
	FileName string
	// Table はメモリ上の結果データ。指定時はCSVに変換してアップロードされます
	Table *domain.Table
	// Contract は提出先コントラクト。空の場合はデフォルトのコントラクトが使われます
	Contract string
}

// SubmitResultsOutput は提出成功時の結果です
type SubmitResultsOutput struct {
	SubmissionID uuid.UUID
	Contract     string
	StatusCode   int
}

type SubmitResultsUseCase interface {
	SubmitResults(ctx context.Context, input SubmitResultsInput) (*SubmitResultsOutput, error)
}

type submitResultsUseCaseImpl struct {
	client     RequestClient
	uploadedBy string
}

func NewSubmitResultsUseCase(client RequestClient, uploadedBy string) SubmitResultsUseCase {
	return &submitResultsUseCaseImpl{
		client:     client,
		uploadedBy: uploadedBy,
	}
}

// SubmitResults は結果ファイルをアップロードエンドポイントに提出します
// 提出前の検証（拡張子・ファイルの存在）に失敗した場合、リクエストは送信されません
// アップロードエンドポイントが201以外を返した場合はErrSubmissionFailedを返します
func (uc *submitResultsUseCaseImpl) SubmitResults(ctx context.Context, input SubmitResultsInput) (*SubmitResultsOutput, error) {
	contract, err := resolveContract(input.Contract)
	if err != nil {
		return nil, err
	}

	fileName := input.FileName
	if fileName == "" {
		fileName = filepath.Base(input.Path)
	}

	resultsFile, reader, err := uc.prepare(fileName, input)
	if err != nil {
		return nil, err
	}

	description, err := domain.NewFileDescription(ctx, resultsFile.Name(), uc.uploadedBy)
	if err != nil {
		closeIfCloser(reader)
		return nil, err
	}
	descriptionJSON, err := description.EncodeJSON()
	if err != nil {
		closeIfCloser(reader)
		return nil, err
	}

	// 添付ファイルのクローズはPostが全ての経路で保証する
	res, err := uc.client.Post(ctx, "/result/upload/"+contract.String(), &crossapi.RequestOptions{
		Files: []crossapi.Attachment{
			{
				FieldName:   "file",
				FileName:    resultsFile.Name(),
				ContentType: octetStreamMIMEType,
				Reader:      reader,
			},
		},
		Form: url.Values{
			"file_description": {descriptionJSON},
		},
	})
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrSubmissionFailed, res.StatusCode, res.BodyText())
	}

	return &SubmitResultsOutput{
		SubmissionID: description.SubmissionID(),
		Contract:     contract.String(),
		StatusCode:   res.StatusCode,
	}, nil
}

// prepare は入力を検証してアップロード対象のResultsFileと読み取り元を組み立てます
func (uc *submitResultsUseCaseImpl) prepare(fileName string, input SubmitResultsInput) (*domain.ResultsFile, io.Reader, error) {
	if input.Table != nil {
		resultsFile, err := domain.NewTableResultsFile(fileName, input.Table)
		if err != nil {
			return nil, nil, err
		}
		data, err := resultsFile.Table().EncodeCSV()
		if err != nil {
			return nil, nil, err
		}
		return resultsFile, bytes.NewReader(data), nil
	}

	resultsFile, err := domain.NewResultsFile(fileName)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrResultsFileNotFound, input.Path)
		}
		return nil, nil, fmt.Errorf("結果ファイルのオープンに失敗しました: %w", err)
	}
	return resultsFile, f, nil
}

func resolveContract(value string) (domain.SubmissionContract, error) {
	if value == "" {
		return domain.DefaultSubmissionContract(), nil
	}
	return domain.NewSubmissionContract(value)
}

func closeIfCloser(r io.Reader) {
	if closer, ok := r.(io.Closer); ok {
		_ = closer.Close()
	}
}
