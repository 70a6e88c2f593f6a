package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/types"
)

// 学位匹配模式：学士、硕士、博士、其他资历四族，覆盖缩写与全称
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:bachelor|b\.?\s*(?:tech|sc|com|a|e|s)|b\.?tech|b\.?sc|b\.?com|b\.?a|b\.?e|b\.?s)`),
	regexp.MustCompile(`(?:master|m\.?\s*(?:tech|sc|com|a|e|s)|m\.?tech|m\.?sc|m\.?com|m\.?a|m\.?e|m\.?s|mba|ms)`),
	regexp.MustCompile(`(?:doctor|ph\.?d|phd|doctorate)`),
	regexp.MustCompile(`(?:diploma|certificate|associate)`),
}

// 院校匹配的启发式模式
var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:university|college|institute|school)\s+of\s+[\w\s]+`),
	regexp.MustCompile(`(?i)[\w\s]+\s+(?:university|college|institute)`),
	regexp.MustCompile(`(?i)(?:iit|nit|bits|iiit|isi)\s*[\w\s]*`),
}

// 毕业年份：以19或20开头的4位数字
var graduationYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// degreeRank 学历等级表项
type degreeRank struct {
	keyword string
	level   int
}

// degreeHierarchy 学历等级表，等级越高学历越高
var degreeHierarchy = []degreeRank{
	{"phd", 5}, {"doctorate", 5}, {"doctor", 5},
	{"master", 4}, {"mba", 4}, {"ms", 4}, {"m.tech", 4}, {"m.sc", 4},
	{"bachelor", 3}, {"b.tech", 3}, {"b.sc", 3}, {"b.com", 3},
	{"diploma", 2},
	{"certificate", 1},
}

// ExtractEducation 从简历文本中提取教育背景
func ExtractEducation(text string) types.Education {
	lower := strings.ToLower(text)

	// 原始学位匹配（保留出现顺序，供最高学历判定使用）
	var rawDegrees []string
	for _, pattern := range degreePatterns {
		rawDegrees = append(rawDegrees, pattern.FindAllString(lower, -1)...)
	}

	// 展示用学位标签：规范化后按首次出现去重
	degrees := make([]string, 0, len(rawDegrees))
	seenDegrees := make(map[string]struct{})
	for _, d := range rawDegrees {
		label := titleCase(strings.TrimSpace(d))
		if _, ok := seenDegrees[label]; ok {
			continue
		}
		seenDegrees[label] = struct{}{}
		degrees = append(degrees, label)
	}
	if len(degrees) > constants.MaxDegrees {
		degrees = degrees[:constants.MaxDegrees]
	}

	// 院校
	institutions := make([]string, 0)
	seenInstitutions := make(map[string]struct{})
	for _, pattern := range institutionPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			inst := strings.TrimSpace(m)
			if inst == "" {
				continue
			}
			if _, ok := seenInstitutions[inst]; ok {
				continue
			}
			seenInstitutions[inst] = struct{}{}
			institutions = append(institutions, inst)
		}
	}
	if len(institutions) > constants.MaxInstitutions {
		institutions = institutions[:constants.MaxInstitutions]
	}

	// 毕业年份：限定在合理区间，去重后降序（最近的在前）
	years := make([]int, 0)
	seenYears := make(map[int]struct{})
	for _, m := range graduationYearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year < constants.MinGraduationYear || year > constants.MaxGraduationYear {
			continue
		}
		if _, ok := seenYears[year]; ok {
			continue
		}
		seenYears[year] = struct{}{}
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	if len(years) > constants.MaxGraduationYears {
		years = years[:constants.MaxGraduationYears]
	}

	return types.Education{
		Degrees:         degrees,
		Institutions:    institutions,
		GraduationYears: years,
		HighestDegree:   highestDegree(rawDegrees),
	}
}

// highestDegree 按等级表从原始学位匹配中判定最高学历
// 等级相同时保留先出现的匹配；没有任何匹配时返回 "Unknown"
func highestDegree(rawDegrees []string) string {
	highestLevel := 0
	highest := "Unknown"

	for _, degree := range rawDegrees {
		degreeLower := strings.ToLower(strings.TrimSpace(degree))
		for _, rank := range degreeHierarchy {
			if strings.Contains(degreeLower, rank.keyword) && rank.level > highestLevel {
				highestLevel = rank.level
				highest = titleCase(strings.TrimSpace(degree))
			}
		}
	}

	return highest
}
