package processor

import (
	"io"
	"log"
)

// ParserOption 简历解析器的配置选项
type ParserOption func(*ResumeParser)

// WithPDFExtractor 设置PDF文本提取器组件
func WithPDFExtractor(extractor DocumentTextExtractor) ParserOption {
	return func(p *ResumeParser) {
		p.pdfExtractor = extractor
	}
}

// WithDocxExtractor 设置Word文档文本提取器组件
func WithDocxExtractor(extractor DocumentTextExtractor) ParserOption {
	return func(p *ResumeParser) {
		p.docxExtractor = extractor
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *log.Logger) ParserOption {
	return func(p *ResumeParser) {
		if logger != nil {
			p.logger = logger
		} else {
			p.logger = log.New(io.Discard, "", 0)
		}
	}
}

// WithCurrentYear 设置开放式日期区间使用的当前年份
// 默认取解析器构造时的系统时钟年份
func WithCurrentYear(year int) ParserOption {
	return func(p *ResumeParser) {
		if year > 0 {
			p.currentYear = year
		}
	}
}

// WithMinTextLength 设置空内容判定的最短文本长度
func WithMinTextLength(length int) ParserOption {
	return func(p *ResumeParser) {
		if length > 0 {
			p.minTextLength = length
		}
	}
}
