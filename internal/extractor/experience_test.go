package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCurrentYear = 2024

func TestExtractExperienceYearsExplicitMax(t *testing.T) {
	// 多处显式表述时采信最大值
	text := "I have 3 years experience in testing and 5+ years of experience in backend development"
	assert.Equal(t, 5.0, ExtractExperienceYears(text, testCurrentYear),
		"应返回显式表述中的最大年限")
}

func TestExtractExperienceYearsDecimal(t *testing.T) {
	text := "2.5 years of experience with distributed caches"
	assert.Equal(t, 2.5, ExtractExperienceYears(text, testCurrentYear), "应支持小数年限")
}

func TestExtractExperienceYearsPhrasings(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"years in", "4 years in cloud infrastructure", 4.0},
		{"yrs working", "6 yrs working with large clusters", 6.0},
		{"experienced for", "experienced for 7 years", 7.0},
		{"professional", "8 years professional background", 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperienceYears(tt.text, testCurrentYear))
		})
	}
}

func TestExtractExperienceYearsInferenceFallback(t *testing.T) {
	// 没有显式表述时按开放式区间推断
	text := "Software Engineer 2019 - Present at Acme Corp"
	assert.Equal(t, 5.0, ExtractExperienceYears(text, testCurrentYear),
		"开放式区间应使用注入的当前年份推断")
}

func TestExtractExperienceYearsClosedRange(t *testing.T) {
	text := "Backend Developer 2020-2023 then took a sabbatical"
	assert.Equal(t, 3.0, ExtractExperienceYears(text, testCurrentYear))
}

func TestExtractExperienceYearsExplicitBeatsInference(t *testing.T) {
	// 显式表述存在时不再做区间推断，即便推断值更大
	text := "1 year of experience. Freelance 2010-2020."
	assert.Equal(t, 1.0, ExtractExperienceYears(text, testCurrentYear),
		"显式表述优先于区间推断")
}

func TestExtractExperienceYearsImplausibleSpanDiscarded(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"跨度超过50年", "Family business 1800-1900"},
		{"结束早于开始", "typo range 2023-2020"},
		{"跨度为零", "oneyear 2020-2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, ExtractExperienceYears(tt.text, testCurrentYear),
				"不可信的区间跨度应被丢弃")
		})
	}
}

func TestExtractExperienceYearsNoSignal(t *testing.T) {
	assert.Equal(t, 0.0, ExtractExperienceYears("fresh graduate, eager to learn", testCurrentYear),
		"没有任何信号时应返回0")
}
