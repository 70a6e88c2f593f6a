package extractor

import (
	"strings"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
)

// 获奖与荣誉关键词
var achievementKeywords = []string{
	"achievement", "award", "recognition", "honor", "accomplishment",
	"winner", "first place", "second place", "third place", "medal",
	"scholarship", "dean's list", "magna cum laude", "summa cum laude",
}

// ExtractAchievements 从按行切分的原始文本中提取获奖与荣誉
// 保留含关键词且长度在10到150个字符之间的行，最多5条
func ExtractAchievements(lines []string) []string {
	achievements := make([]string, 0)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !containsAny(strings.ToLower(line), achievementKeywords) {
			continue
		}
		if len(line) > 10 && len(line) < 150 {
			achievements = append(achievements, line)
		}
	}

	if len(achievements) > constants.MaxAchievements {
		achievements = achievements[:constants.MaxAchievements]
	}
	return achievements
}
