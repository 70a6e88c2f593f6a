package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLanguagesLabels(t *testing.T) {
	languages := ExtractLanguages("Fluent in English and Hindi; writes Python and Go daily")
	assert.Equal(t, []string{
		"Python (Programming)",
		"Go (Programming)",
		"English (Spoken)",
		"Hindi (Spoken)",
	}, languages, "编程语言与自然语言应各自带类别标注")
}

func TestExtractLanguagesWholeWordBoundary(t *testing.T) {
	// "r" 不应在普通单词内部命中
	languages := ExtractLanguages("regular experience with many frameworks")
	assert.Empty(t, languages, "语言词条必须整词命中")
}

func TestExtractLanguagesNoMatch(t *testing.T) {
	assert.Empty(t, ExtractLanguages("writes poetry about mountains"), "没有命中词条时应返回空列表")
}
