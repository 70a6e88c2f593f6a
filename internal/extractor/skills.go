package extractor

import (
	"sort"
	"strings"
)

// ExtractSkills 从简历文本中提取技术技能与软技能
// 匹配按整词进行（"java" 不会命中 "javascript"），按规范化标签去重
// 输出顺序是对外契约：技术技能按字母序在前，软技能按字母序在后
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	technical := make([]string, 0)
	soft := make([]string, 0)

	for _, entry := range technicalSkillEntries {
		if !entry.pattern.MatchString(lower) {
			continue
		}
		if _, ok := seen[entry.label]; ok {
			continue
		}
		seen[entry.label] = struct{}{}
		technical = append(technical, entry.label)
	}

	for _, entry := range softSkillEntries {
		if !entry.pattern.MatchString(lower) {
			continue
		}
		if _, ok := seen[entry.label]; ok {
			continue
		}
		seen[entry.label] = struct{}{}
		soft = append(soft, entry.label)
	}

	sort.Strings(technical)
	sort.Strings(soft)

	return append(technical, soft...)
}
