package processor

import (
	"context"
)

// DocumentTextExtractor 文档文本提取器接口
// 实现方负责把某一种文档格式解码为保留换行的原始文本
type DocumentTextExtractor interface {
	// ExtractFromFile 从文件路径提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractFromBytes 从字节数组提取文本和元数据
	// uri 仅用于日志与元数据标注
	ExtractFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error)
}
