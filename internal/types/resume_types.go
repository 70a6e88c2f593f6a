package types

// Education 教育背景信息
type Education struct {
	// 识别到的学位名称（去重后，最多保留5个）
	Degrees []string `json:"degrees"`

	// 识别到的院校名称（去重后，最多保留3个）
	Institutions []string `json:"institutions"`

	// 可能的毕业年份，降序排列（最多保留3个）
	GraduationYears []int `json:"graduation_years"`

	// 最高学历，按固定等级表判定；未识别时为 "Unknown"
	HighestDegree string `json:"highest_degree"`
}

// ContactInfo 联系方式信息
// 每个字段只保留首个匹配结果，未匹配到时为空字符串
type ContactInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// ResumeProfile 简历解析后的结构化画像
// 字段形状与下游候选人服务消费的JSON保持一致
type ResumeProfile struct {
	// 归一化后的简历全文
	Text string `json:"text"`

	// 全文词数（按空白切分）
	WordCount int `json:"word_count"`

	// 技能列表：技术技能按字母序在前，软技能按字母序在后
	Skills []string `json:"skills"`

	// 工作年限（年），未识别到任何信号时为0
	Experience float64 `json:"experience"`

	// 教育背景
	Education Education `json:"education"`

	// 项目经历（最多6条）
	Projects []string `json:"projects"`

	// 证书资质（最多8条）
	Certifications []string `json:"certifications"`

	// 联系方式
	ContactInfo ContactInfo `json:"contact_info"`

	// 语言能力，形如 "Python (Programming)" 或 "English (Spoken)"
	Languages []string `json:"languages"`

	// 获奖与荣誉（最多5条）
	Achievements []string `json:"achievements"`
}
