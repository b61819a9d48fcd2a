package common

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ProviderError はAWS APIから返された失敗を表す共通エラー型
// 元のSDKエラーをそのままラップし、エラーコードとメッセージを保持する
type ProviderError struct {
	Op       string // 失敗した操作名（例: "CreateRole"）
	Resource string // 対象リソース名
	Region   string
	Code     string // プロバイダのエラーコード（例: "NoSuchEntity"）
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s (%s): %s: %s", e.Op, e.Resource, e.Region, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Resource, e.Region, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// WrapProviderError はSDKエラーをProviderErrorに包む
// smithy.APIErrorからエラーコードとメッセージを取り出す
func WrapProviderError(op, resource, region string, err error) error {
	if err == nil {
		return nil
	}

	pe := &ProviderError{
		Op:       op,
		Resource: resource,
		Region:   region,
		Err:      err,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		pe.Code = apiErr.ErrorCode()
		pe.Message = apiErr.ErrorMessage()
	}

	return pe
}

// ErrorCode はラップ済みエラーからプロバイダのエラーコードを取り出す
// コードが取れない場合は空文字を返す
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// エラーメッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
)
