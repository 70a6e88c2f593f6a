package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
// 三类错误对同一份文档都是终态：重试相同字节不会改变结果
var (
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	ErrExtractionFailed  = errors.New("提取文档文本失败")
	ErrEmptyContent      = errors.New("文档文本为空或过短")
)

// ResumeParseError 包含详细错误信息的自定义错误
type ResumeParseError struct {
	Source  string // 文件路径或URI
	Op      string
	BaseErr error
	Detail  string
}

func (e *ResumeParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Source, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Source)
}

func (e *ResumeParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数

func NewUnsupportedFormatError(source, detail string) error {
	return &ResumeParseError{
		Source:  source,
		Op:      "dispatch",
		BaseErr: ErrUnsupportedFormat,
		Detail:  detail,
	}
}

func NewExtractionError(source, detail string) error {
	return &ResumeParseError{
		Source:  source,
		Op:      "extract",
		BaseErr: ErrExtractionFailed,
		Detail:  detail,
	}
}

func NewEmptyContentError(source, detail string) error {
	return &ResumeParseError{
		Source:  source,
		Op:      "validate",
		BaseErr: ErrEmptyContent,
		Detail:  detail,
	}
}
