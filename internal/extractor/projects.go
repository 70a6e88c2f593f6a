package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
)

// 项目区块的标题关键词
var projectSectionKeywords = []string{"project", "projects:", "key projects", "major projects", "notable projects"}

// 区块外独立项目行的动作动词
var projectActionVerbs = []string{"developed", "built", "created", "designed", "implemented"}

// 项目区块内离开判定所用的关键词
var projectSectionStayKeywords = []string{"project", "work", "experience"}

var (
	// 列表项起始标记：连字符、圆点、星号、编号
	bulletMarkerPattern = regexp.MustCompile(`^[-•*\d.]`)
	bulletPrefixPattern = regexp.MustCompile(`^[-•*\d.]+\s*`)
	projectSpacePattern = regexp.MustCompile(`\s+`)
)

// ExtractProjects 从按行切分的原始文本中提取项目经历
// 两种来源：项目区块内的列表项（非标记行并入当前条目），
// 以及全篇范围内含有动作动词的合理长度的行。结果去重后最多保留6条
func ExtractProjects(lines []string) []string {
	var candidates []string
	inSection := false
	current := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		// 进入项目区块
		if containsAny(lower, projectSectionKeywords) {
			inSection = true
			continue
		}

		// 离开项目区块：出现首字母大写且带冒号的新区块标题
		if inSection && line != "" && startsUpper(line) && strings.Contains(line, ":") {
			if !containsAny(lower, projectSectionStayKeywords) {
				inSection = false
				continue
			}
		}

		if inSection && line != "" {
			if bulletMarkerPattern.MatchString(line) {
				// 新条目开始，收束上一个条目
				if current != "" {
					candidates = append(candidates, strings.TrimSpace(current))
				}
				current = bulletPrefixPattern.ReplaceAllString(line, "")
			} else {
				// 非标记行视为当前条目的续行
				current += " " + line
			}
		} else if containsAny(lower, projectActionVerbs) {
			if len(line) > 20 && len(line) < 200 {
				candidates = append(candidates, line)
			}
		}
	}

	if current != "" {
		candidates = append(candidates, strings.TrimSpace(current))
	}

	// 清洗并按完整文本去重
	projects := make([]string, 0, len(candidates))
	seen := make(map[string]struct{})
	for _, c := range candidates {
		p := strings.TrimSpace(projectSpacePattern.ReplaceAllString(c, " "))
		if len(p) <= 20 {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		projects = append(projects, p)
	}

	if len(projects) > constants.MaxProjects {
		projects = projects[:constants.MaxProjects]
	}
	return projects
}

// startsUpper 判断行首字符是否为大写字母
func startsUpper(line string) bool {
	for _, r := range line {
		return unicode.IsUpper(r)
	}
	return false
}
