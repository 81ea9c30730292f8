package domain_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"

	"github.com/sweetcross/crossclient/internal/domain"
)

func TestNewFileDescription(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		uploadedBy string
		wantErr    error
	}{
		{
			name:       "正常系: ファイル名と提出時刻を含む説明文が生成される",
			fileName:   "results.csv",
			uploadedBy: "testuser",
			wantErr:    nil,
		},
		{
			name:       "異常系: uploaded_byが空の場合、エラーが返る",
			fileName:   "results.csv",
			uploadedBy: "",
			wantErr:    domain.ErrEmptyUploadedBy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			tid := uuid.NewString()
			ctx := testid.WithValue(context.Background(), tid)
			ctxtimetest.SetFixedNow(t, ctx, fixedTime)

			description, err := domain.NewFileDescription(ctx, tt.fileName, tt.uploadedBy)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewFileDescription() failed: %v", err)
			}
			if !strings.Contains(description.Description(), tt.fileName) {
				t.Errorf("Description()にファイル名が含まれていません: %s", description.Description())
			}
			if !strings.Contains(description.Description(), "2025-06-01T12:00:00Z") {
				t.Errorf("Description()に提出時刻が含まれていません: %s", description.Description())
			}
			if description.UploadedBy() != tt.uploadedBy {
				t.Errorf("UploadedBy() = %q, want %q", description.UploadedBy(), tt.uploadedBy)
			}
		})
	}
}

func TestFileDescription_EncodeJSON(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tid := uuid.NewString()
	ctx := testid.WithValue(context.Background(), tid)
	ctxtimetest.SetFixedNow(t, ctx, fixedTime)

	description, err := domain.NewFileDescription(ctx, "results.csv", "testuser")
	if err != nil {
		t.Fatalf("NewFileDescription() failed: %v", err)
	}

	encoded, err := description.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() failed: %v", err)
	}

	var decoded struct {
		Description string `json:"description"`
		UploadedBy  string `json:"uploaded_by"`
	}
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("生成されたJSONの解析に失敗しました: %v", err)
	}
	if decoded.UploadedBy != "testuser" {
		t.Errorf("uploaded_by = %q, want %q", decoded.UploadedBy, "testuser")
	}
	if decoded.Description != description.Description() {
		t.Errorf("description = %q, want %q", decoded.Description, description.Description())
	}
}
