package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx 在内存中构造一个最小的DOCX压缩包
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err, "创建zip内文件不应失败")
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err, "写入document.xml不应失败")
	require.NoError(t, zw.Close(), "关闭zip writer不应失败")

	return buf.Bytes()
}

func newTestDocxExtractor() *DocxTextExtractor {
	return NewDocxTextExtractor(WithDocxLogger(log.New(io.Discard, "", 0)))
}

func TestDocxExtractorTableAfterParagraphs(t *testing.T) {
	// 表格在文档中出现于段落之前，但提取结果中表格文本必须排在所有段落之后
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:tbl>
<w:tr>
<w:tc><w:p><w:r><w:t>Cell A1</w:t></w:r></w:p></w:tc>
<w:tc><w:p><w:r><w:t>Cell A2</w:t></w:r></w:p></w:tc>
</w:tr>
<w:tr>
<w:tc><w:p><w:r><w:t>Cell B1</w:t></w:r></w:p></w:tc>
<w:tc><w:p><w:r><w:t>Cell B2</w:t></w:r></w:p></w:tc>
</w:tr>
</w:tbl>
<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
<w:p/>
</w:body>
</w:document>`

	data := buildDocx(t, documentXML)
	extractor := newTestDocxExtractor()

	text, metadata, err := extractor.ExtractFromBytes(context.Background(), data, "test.docx")
	require.NoError(t, err, "DOCX提取不应返回错误")

	expected := "First paragraph\nSecond paragraph\nCell A1\nCell A2\nCell B1\nCell B2"
	assert.Equal(t, expected, text, "段落文本应在前, 表格单元格按行列顺序在后")

	assert.Equal(t, 2, metadata["paragraph_count"], "应识别出2个非空段落")
	assert.Equal(t, 4, metadata["table_cell_count"], "应识别出4个表格单元格")
}

func TestDocxExtractorMultiParagraphCell(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Intro</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc>
<w:p><w:r><w:t>line one</w:t></w:r></w:p>
<w:p><w:r><w:t>line two</w:t></w:r></w:p>
</w:tc></w:tr></w:tbl>
</w:body>
</w:document>`

	data := buildDocx(t, documentXML)
	extractor := newTestDocxExtractor()

	text, _, err := extractor.ExtractFromBytes(context.Background(), data, "test.docx")
	require.NoError(t, err, "DOCX提取不应返回错误")
	assert.Equal(t, "Intro\nline one\nline two", text, "单元格内多段落应以换行分隔")
}

func TestDocxExtractorCorruptedArchive(t *testing.T) {
	extractor := newTestDocxExtractor()

	_, _, err := extractor.ExtractFromBytes(context.Background(), []byte("not a zip archive"), "broken.docx")
	assert.Error(t, err, "损坏的zip包应返回错误")
}

func TestDocxExtractorMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	extractor := newTestDocxExtractor()
	_, _, err = extractor.ExtractFromBytes(context.Background(), buf.Bytes(), "nodoc.docx")
	assert.Error(t, err, "缺少word/document.xml时应返回错误")
	assert.Contains(t, err.Error(), "document.xml", "错误信息应指出缺失的部件")
}

func TestDocxExtractorEmptyBody(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p/><w:p/></w:body>
</w:document>`

	data := buildDocx(t, documentXML)
	extractor := newTestDocxExtractor()

	text, _, err := extractor.ExtractFromBytes(context.Background(), data, "empty.docx")
	require.NoError(t, err, "空文档在提取层不是错误, 由上游的空内容检查兜底")
	assert.Empty(t, text, "没有文本的文档应返回空字符串")
}
