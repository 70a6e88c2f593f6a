package constants

const (
	// Application-level constants
	DefaultParserVer = "1.0"

	// MinResumeTextLength 解析文本的最短长度（按字符计）
	// 低于该长度的文档视为空内容，不可能是一份真实简历
	MinResumeTextLength = 50

	// DefaultCurrentYear 开放式日期区间（如 "2020 - Present"）的兜底年份
	// 仅在调用方未显式指定当前年份时使用
	DefaultCurrentYear = 2024

	// 各维度提取结果的上限
	MaxDegrees         = 5
	MaxInstitutions    = 3
	MaxGraduationYears = 3
	MaxProjects        = 6
	MaxCertifications  = 8
	MaxAchievements    = 5

	// 毕业年份的合理区间
	MinGraduationYear = 1990
	MaxGraduationYear = 2030

	// MaxPlausibleSpanYears 由日期区间推断的工作年限上限，超出视为不可信
	MaxPlausibleSpanYears = 50
)

// 支持的简历文件扩展名
const (
	ExtPDF  = ".pdf"
	ExtDocx = ".docx"
	ExtDoc  = ".doc"
)
