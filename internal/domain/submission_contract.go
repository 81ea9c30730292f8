package domain

// defaultSubmissionContract はコントラクト未指定時に使用される識別子
const defaultSubmissionContract = "submission_cross2025"

// SubmissionContract は結果ファイルの提出先プロジェクトを識別する値オブジェクトです
type SubmissionContract struct {
	value string
}

func NewSubmissionContract(value string) (SubmissionContract, error) {
	if value == "" {
		return SubmissionContract{}, ErrEmptyContract
	}
	return SubmissionContract{value: value}, nil
}

// DefaultSubmissionContract はデフォルトのコントラクトを返します
func DefaultSubmissionContract() SubmissionContract {
	return SubmissionContract{value: defaultSubmissionContract}
}

func (c SubmissionContract) String() string {
	return c.value
}
