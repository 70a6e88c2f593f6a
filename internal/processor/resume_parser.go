package processor

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/extractor"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/parser"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/types"
)

// ResumeParser 简历解析流水线
// 流程单向：文档读取 → 文本归一化 → 各维度提取 → 画像组装
// 解析器本身无共享可变状态，可在多份文档上并发调用
type ResumeParser struct {
	pdfExtractor  DocumentTextExtractor
	docxExtractor DocumentTextExtractor

	currentYear   int
	minTextLength int
	logger        *log.Logger
}

// NewResumeParser 创建简历解析器
// 未显式注入的组件使用默认实现（Eino PDF提取器、内置DOCX提取器）
func NewResumeParser(ctx context.Context, options ...ParserOption) (*ResumeParser, error) {
	p := &ResumeParser{
		currentYear:   time.Now().Year(),
		minTextLength: constants.MinResumeTextLength,
		logger:        log.New(os.Stderr, "[简历解析器] ", log.LstdFlags),
	}

	for _, option := range options {
		option(p)
	}

	if p.pdfExtractor == nil {
		pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx, parser.WithEinoLogger(p.logger))
		if err != nil {
			return nil, fmt.Errorf("创建默认PDF提取器失败: %w", err)
		}
		p.pdfExtractor = pdfExtractor
	}

	if p.docxExtractor == nil {
		p.docxExtractor = parser.NewDocxTextExtractor(parser.WithDocxLogger(p.logger))
	}

	return p, nil
}

// ParseFile 解析指定路径的简历文件，返回结构化画像
// 失败只发生在读取/校验边界：ErrUnsupportedFormat、ErrExtractionFailed、ErrEmptyContent
func (p *ResumeParser) ParseFile(ctx context.Context, filePath string) (*types.ResumeProfile, error) {
	rawText, err := p.extractText(ctx, filePath, func(e DocumentTextExtractor) (string, map[string]interface{}, error) {
		return e.ExtractFromFile(ctx, filePath)
	})
	if err != nil {
		return nil, err
	}
	return p.assembleProfile(filePath, rawText), nil
}

// ParseBytes 解析内存中的简历文件内容
// filename 用于格式分发和日志标注，不要求文件真实存在
func (p *ResumeParser) ParseBytes(ctx context.Context, data []byte, filename string) (*types.ResumeProfile, error) {
	rawText, err := p.extractText(ctx, filename, func(e DocumentTextExtractor) (string, map[string]interface{}, error) {
		return e.ExtractFromBytes(ctx, data, filename)
	})
	if err != nil {
		return nil, err
	}
	return p.assembleProfile(filename, rawText), nil
}

// extractText 按扩展名分发到对应提取器，并做空内容校验
// 扩展名不识别时在任何解码器运行之前直接失败
func (p *ResumeParser) extractText(ctx context.Context, source string, run func(DocumentTextExtractor) (string, map[string]interface{}, error)) (string, error) {
	var docExtractor DocumentTextExtractor

	ext := strings.ToLower(filepath.Ext(source))
	switch ext {
	case constants.ExtPDF:
		docExtractor = p.pdfExtractor
	case constants.ExtDocx, constants.ExtDoc:
		// .doc 与 .docx 走同一提取器；真正的老式二进制.doc会在解码阶段失败
		docExtractor = p.docxExtractor
	default:
		p.logger.Printf("拒绝不支持的文件格式: %s (%s)", ext, source)
		return "", NewUnsupportedFormatError(source, fmt.Sprintf("扩展名 %q 不在支持范围内", ext))
	}

	rawText, _, err := run(docExtractor)
	if err != nil {
		return "", NewExtractionError(source, err.Error())
	}

	trimmed := strings.TrimSpace(rawText)
	if length := utf8.RuneCountInString(trimmed); length < p.minTextLength {
		p.logger.Printf("文档文本过短: %d 个字符 (%s)", length, source)
		return "", NewEmptyContentError(source, fmt.Sprintf("提取文本仅 %d 个字符, 低于下限 %d", length, p.minTextLength))
	}

	return rawText, nil
}

// assembleProfile 运行全部维度提取器并组装画像
// 各提取器相互独立，无信号时返回各自的零值，组装阶段不会失败
func (p *ResumeParser) assembleProfile(source, rawText string) *types.ResumeProfile {
	normalized := parser.CleanText(rawText)

	// 行结构是列表型维度（项目/证书/荣誉）的格式信号，单独保留
	lines := strings.Split(rawText, "\n")

	profile := &types.ResumeProfile{
		Text:           normalized,
		WordCount:      len(strings.Fields(normalized)),
		Skills:         extractor.ExtractSkills(normalized),
		Experience:     extractor.ExtractExperienceYears(normalized, p.currentYear),
		Education:      extractor.ExtractEducation(normalized),
		Projects:       extractor.ExtractProjects(lines),
		Certifications: extractor.ExtractCertifications(rawText),
		ContactInfo:    extractor.ExtractContactInfo(normalized),
		Languages:      extractor.ExtractLanguages(normalized),
		Achievements:   extractor.ExtractAchievements(lines),
	}

	p.logger.Printf("简历解析完成: %d 个词, %d 项技能, %.1f 年经验 (%s)",
		profile.WordCount, len(profile.Skills), profile.Experience, source)
	return profile
}
