package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

// 固定词表，进程启动时编译为只读查找结构，运行期不再变更

// technicalSkills 技术技能词表（规范化小写形式）
var technicalSkills = []string{
	// 编程语言
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
	"swift", "kotlin", "scala", "r", "matlab", "sql", "nosql", "html", "css", "scss", "sass",

	// 框架与库
	"react", "angular", "vue.js", "vue", "node.js", "nodejs", "express.js", "express", "django",
	"flask", "fastapi", "spring", "spring boot", "laravel", "symfony", "rails", "ember.js",
	"backbone.js", "jquery", "bootstrap", "tailwind", "material-ui", "antd",

	// 数据库
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb",
	"sqlite", "oracle", "sql server", "mariadb", "couchdb",

	// 云与DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "ci/cd",
	"terraform", "ansible", "puppet", "chef", "vagrant", "heroku", "vercel", "netlify",

	// 数据科学与AI/ML
	"machine learning", "deep learning", "ai", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "matplotlib", "seaborn", "plotly", "jupyter", "r studio", "tableau",
	"power bi", "spark", "hadoop", "kafka",

	// 移动开发
	"react native", "flutter", "ios", "android", "xamarin", "cordova",

	// 工具与其他
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "trello",
	"postman", "swagger", "figma", "sketch", "adobe creative suite", "photoshop",
}

// softSkills 软技能词表
var softSkills = []string{
	"leadership", "teamwork", "communication", "problem solving", "analytical thinking",
	"project management", "time management", "adaptability", "creativity", "collaboration",
	"critical thinking", "decision making", "negotiation", "presentation", "mentoring",
}

// programmingLanguages 编程语言词表（语言能力维度）
var programmingLanguages = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "sql",
}

// spokenLanguages 自然语言词表
var spokenLanguages = []string{
	"english", "spanish", "french", "german", "chinese", "japanese", "korean",
	"hindi", "arabic", "portuguese", "russian", "italian", "dutch",
}

// vocabEntry 词表项：规范化展示标签 + 整词匹配模式
type vocabEntry struct {
	label   string
	pattern *regexp.Regexp
}

// 词表编译结果
var (
	technicalSkillEntries = compileVocabulary(technicalSkills)
	softSkillEntries      = compileVocabulary(softSkills)
	programmingEntries    = compileVocabulary(programmingLanguages)
	spokenEntries         = compileVocabulary(spokenLanguages)
)

// compileVocabulary 将词表编译为整词匹配模式，按首次出现去重
func compileVocabulary(words []string) []vocabEntry {
	entries := make([]vocabEntry, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		entries = append(entries, vocabEntry{
			label:   titleCase(w),
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`),
		})
	}
	return entries
}

// titleCase 把词条转为规范化展示形式：每段连续字母的首字母大写
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// containsAny 判断 s 中是否包含任意一个关键词
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
