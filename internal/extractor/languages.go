package extractor

import (
	"strings"
)

// ExtractLanguages 从简历文本中提取编程语言与自然语言能力
// 每个命中词条带类别标注，形如 "Python (Programming)"、"English (Spoken)"
func ExtractLanguages(text string) []string {
	lower := strings.ToLower(text)
	languages := make([]string, 0)

	for _, entry := range programmingEntries {
		if entry.pattern.MatchString(lower) {
			languages = append(languages, entry.label+" (Programming)")
		}
	}

	for _, entry := range spokenEntries {
		if entry.pattern.MatchString(lower) {
			languages = append(languages, entry.label+" (Spoken)")
		}
	}

	return languages
}
