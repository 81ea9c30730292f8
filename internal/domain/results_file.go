package domain

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
)

// allowedExtensions は提出可能な結果ファイルの拡張子一覧
var allowedExtensions = map[string]struct{}{
	".csv":  {},
	".xlsx": {},
	".xls":  {},
}

// ResultsFile は提出対象の結果ファイルを表す値オブジェクトです
// ローカルファイルか、メモリ上のテーブルデータのどちらかを元にします
type ResultsFile struct {
	name  string
	table *Table
}

// NewResultsFile はローカルファイルを提出するためのResultsFileを作成します
// nameはアップロード時のファイル名で、拡張子が許可リストにない場合はエラーになります
func NewResultsFile(name string) (*ResultsFile, error) {
	if err := validateExtension(name); err != nil {
		return nil, err
	}
	return &ResultsFile{name: name}, nil
}

// NewTableResultsFile はメモリ上のテーブルをCSVとして提出するためのResultsFileを作成します
// テーブル提出時のファイル名は.csvで終わる必要があります
func NewTableResultsFile(name string, table *Table) (*ResultsFile, error) {
	if err := validateExtension(name); err != nil {
		return nil, err
	}
	if strings.ToLower(filepath.Ext(name)) != ".csv" {
		return nil, ErrTableRequiresCSV
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &ResultsFile{name: name, table: table}, nil
}

func validateExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileFormat, name)
	}
	return nil
}

func (f *ResultsFile) Name() string {
	return f.name
}

// HasTable はテーブルデータを元にしたResultsFileかどうかを返します
func (f *ResultsFile) HasTable() bool {
	return f.table != nil
}

func (f *ResultsFile) Table() *Table {
	return f.table
}

// Table は結果データのメモリ上の表現です
// 列名と行データのみを保持し、インデックス列は存在しません
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) validate() error {
	if t == nil || len(t.Columns) == 0 {
		return ErrEmptyTableColumns
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrTableRowWidthMismatch, i, len(row), len(t.Columns))
		}
	}
	return nil
}

// EncodeCSV はテーブルをヘッダー行付きのUTF-8 CSVに変換します
func (t *Table) EncodeCSV() ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
