package extractor

import (
	"regexp"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/types"
)

// 联系方式的固定匹配模式
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// 三种电话号码形态：通用国际格式、加号前缀格式、美式括号格式
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`[+]?[1-9]?\d{1,4}?[-.\s]?\(?\d{1,3}?\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{4,10}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)([A-Za-z0-9\-_]+)`)
	githubPattern   = regexp.MustCompile(`(?i)(?:github\.com/)([A-Za-z0-9\-_]+)`)

	// 作品集/个人网站：通用URL形态，以及带标签的显式声明
	portfolioURLPattern      = regexp.MustCompile(`https?://(?:www\.)?[A-Za-z0-9\-_]+\.(?:com|net|org|io|dev|me)/[A-Za-z0-9\-_/]*`)
	portfolioLabeledPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:portfolio|website):\s*(https?://\S+)`),
		regexp.MustCompile(`(?i)(?:personal website|blog):\s*(https?://\S+)`),
	}
)

// ExtractContactInfo 从简历文本中提取联系方式
// 每个字段独立取首个匹配，未匹配到保持为空；字段之间不做交叉校验
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email:     emailPattern.FindString(text),
		Portfolio: extractPortfolioURL(text),
	}

	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			info.Phone = m
			break
		}
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		info.LinkedIn = m[1]
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		info.GitHub = m[1]
	}

	return info
}

// extractPortfolioURL 提取作品集/个人网站地址
func extractPortfolioURL(text string) string {
	if m := portfolioURLPattern.FindString(text); m != "" {
		return m
	}
	for _, pattern := range portfolioLabeledPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
