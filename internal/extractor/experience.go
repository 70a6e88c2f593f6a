package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
)

// 显式年限表述的匹配模式，如 "5 years of experience"、"3+ yrs in" 等
var explicitExperiencePatterns = []*regexp.Regexp{
	// "5 years of experience"、"3+ years experience"
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[+\-]?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`),
	// "5+ years in"、"3 years working/as/with"
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[+\-]?\s*(?:years?|yrs?)\s+(?:in|working|as|with)`),
	// "experienced for 5 years"
	regexp.MustCompile(`experienced\s+for\s+(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`),
	// "5 years professional experience"
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\s+professional`),
}

// 工作时间区间的匹配模式（连字符或短横线分隔）
var dateRangePatterns = []*regexp.Regexp{
	// 2020-2023
	regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`),
	// 2020-Present / 2020 - current
	regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(?:present|current)`),
}

// ExtractExperienceYears 从简历文本中提取工作年限
// 两级策略：优先采信显式年限表述，取所有命中的最大值；
// 没有显式表述时退化为按工作时间区间推断。两者都没有时返回0
func ExtractExperienceYears(text string, currentYear int) float64 {
	lower := strings.ToLower(text)

	var years []float64
	for _, pattern := range explicitExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			years = append(years, v)
		}
	}

	if len(years) == 0 {
		years = inferExperienceFromDates(text, currentYear)
	}

	maxYears := 0.0
	for _, y := range years {
		if y > maxYears {
			maxYears = y
		}
	}
	return maxYears
}

// inferExperienceFromDates 按工作时间区间推断年限
// 开放式区间（present/current）以 currentYear 作为结束年份；
// 超出 (0, 50] 的跨度视为不可信并丢弃
func inferExperienceFromDates(text string, currentYear int) []float64 {
	var years []float64

	for _, pattern := range dateRangePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			startYear, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}

			endYear := currentYear
			if len(m) > 2 {
				endYear, err = strconv.Atoi(m[2])
				if err != nil {
					continue
				}
			}

			span := endYear - startYear
			if span > 0 && span <= constants.MaxPlausibleSpanYears {
				years = append(years, float64(span))
			}
		}
	}

	return years
}
