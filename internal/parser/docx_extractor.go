package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// DocxTextExtractor 从OOXML格式的Word文档中提取文本
// 直接读取压缩包内的 word/document.xml，正文段落按文档顺序在前，
// 表格单元格文本（按行、按列顺序）整体追加在所有段落之后
type DocxTextExtractor struct {
	logger *log.Logger
}

// DocxOption DOCX提取器的配置选项
type DocxOption func(*DocxTextExtractor)

// WithDocxLogger 配置自定义日志记录器
func WithDocxLogger(logger *log.Logger) DocxOption {
	return func(e *DocxTextExtractor) {
		e.logger = logger
	}
}

// NewDocxTextExtractor 初始化DOCX文本提取器
func NewDocxTextExtractor(options ...DocxOption) *DocxTextExtractor {
	extractor := &DocxTextExtractor{
		logger: log.New(os.Stderr, "[DOCX解析器] ", log.LstdFlags),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

// ExtractFromFile 从DOCX文件中提取全文和元数据
func (e *DocxTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read DOCX file %s: %w", filePath, err)
	}
	return e.ExtractFromBytes(ctx, data, filePath)
}

// ExtractFromBytes 从字节数组中提取全文和元数据
func (e *DocxTextExtractor) ExtractFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Printf("DOCX不是合法的zip包 (URI: %s): %s", uri, err)
		return "", nil, fmt.Errorf("failed to open DOCX archive %s: %w", uri, err)
	}

	var documentXML *zip.File
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			documentXML = f
			break
		}
	}
	if documentXML == nil {
		return "", nil, fmt.Errorf("no word/document.xml found in DOCX %s", uri)
	}

	rc, err := documentXML.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open word/document.xml in %s: %w", uri, err)
	}
	defer rc.Close()

	paragraphs, cells, err := walkDocumentXML(rc)
	if err != nil {
		e.logger.Printf("解析document.xml失败 (URI: %s): %s", uri, err)
		return "", nil, fmt.Errorf("failed to parse word/document.xml in %s: %w", uri, err)
	}

	// 段落在前，表格单元格在后：正文与表格的相对顺序对提取结果没有语义影响
	parts := make([]string, 0, len(paragraphs)+len(cells))
	parts = append(parts, paragraphs...)
	parts = append(parts, cells...)
	fullContent := strings.Join(parts, "\n")

	metadata := map[string]interface{}{
		"source_uri":       uri,
		"paragraph_count":  len(paragraphs),
		"table_cell_count": len(cells),
		"text_length":      len(fullContent),
	}

	e.logger.Printf("DOCX提取完成: %d 个段落, %d 个表格单元格, 共 %d 个字符 (URI: %s)",
		len(paragraphs), len(cells), len(fullContent), uri)
	return fullContent, metadata, nil
}

// walkDocumentXML 遍历 word/document.xml 的标签流
// 返回表格外的段落文本和表格单元格文本（均已去掉空白项）
func walkDocumentXML(r io.Reader) ([]string, []string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs, cells []string
	var parBuf, cellBuf strings.Builder
	inText := false
	tableDepth := 0

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 {
					if s := strings.TrimSpace(parBuf.String()); s != "" {
						paragraphs = append(paragraphs, s)
					}
					parBuf.Reset()
				} else {
					// 单元格内的段落边界
					cellBuf.WriteString("\n")
				}
			case "tc":
				if s := strings.TrimSpace(cellBuf.String()); s != "" {
					cells = append(cells, s)
				}
				cellBuf.Reset()
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth == 0 {
				parBuf.Write(t)
			} else {
				cellBuf.Write(t)
			}
		}
	}

	return paragraphs, cells, nil
}
