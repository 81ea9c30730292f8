package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

// FileDescription はアップロードに添付するfile_descriptionフィールドの内容です
type FileDescription struct {
	description  string
	uploadedBy   string
	submissionID uuid.UUID
}

// NewFileDescription は提出IDと提出時刻を含むFileDescriptionを作成します
func NewFileDescription(ctx context.Context, fileName, uploadedBy string) (*FileDescription, error) {
	if uploadedBy == "" {
		return nil, ErrEmptyUploadedBy
	}
	submissionID := uuid.New()
	description := fmt.Sprintf(
		"Submission %s of results file %s at %s through crossclient.",
		submissionID, fileName, ctxtime.Now(ctx).UTC().Format(time.RFC3339),
	)
	return &FileDescription{
		description:  description,
		uploadedBy:   uploadedBy,
		submissionID: submissionID,
	}, nil
}

func (d *FileDescription) Description() string {
	return d.description
}

func (d *FileDescription) UploadedBy() string {
	return d.uploadedBy
}

func (d *FileDescription) SubmissionID() uuid.UUID {
	return d.submissionID
}

// EncodeJSON はアップロードAPIが期待するJSON文字列を返します
func (d *FileDescription) EncodeJSON() (string, error) {
	payload := struct {
		Description string `json:"description"`
		UploadedBy  string `json:"uploaded_by"`
	}{
		Description: d.description,
		UploadedBy:  d.uploadedBy,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode file description: %w", err)
	}
	return string(data), nil
}
