package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "折叠空白段",
			input:    "Hello   World\n\tFoo\r\nBar",
			expected: "Hello World Foo Bar",
		},
		{
			name:     "剔除允许集之外的字符",
			input:    "C# & Java!",
			expected: "C Java",
		},
		{
			name:     "保留基本标点",
			input:    "a-b.c@d+e(f)/g,h;i",
			expected: "a-b.c@d+e(f)/g,h;i",
		},
		{
			name:     "去掉首尾空格",
			input:    "   padded text   ",
			expected: "padded text",
		},
		{
			name:     "剔除字符后重新折叠空格",
			input:    "one ** two",
			expected: "one two",
		},
		{
			name:     "空输入",
			input:    "",
			expected: "",
		},
		{
			name:     "内容全部被剔除",
			input:    "!!! ???",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input), "归一化结果不符合预期")
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	input := "  Senior\tEngineer,  5+ years!  (backend)  "
	once := CleanText(input)
	twice := CleanText(once)
	assert.Equal(t, once, twice, "对已归一化文本再归一化应保持不变")
}

func TestCleanTextNoDoubleSpaces(t *testing.T) {
	out := CleanText("a ! b # c $ d")
	assert.NotContains(t, out, "  ", "归一化结果不应包含连续空格")
}
